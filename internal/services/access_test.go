package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nitpydev/gyanith24-cms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeAccessListRepo implements domain.AccessListRepository for tests.
type fakeAccessListRepo struct {
	list    *domain.AccessList
	err     error
	fetches int
}

func (f *fakeAccessListRepo) Get(ctx context.Context) (*domain.AccessList, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func TestAccessService_Authorize(t *testing.T) {
	ctx := context.Background()
	admin := &domain.Identity{ID: "uid-1", Email: "admin@fest.org", Name: "Admin"}

	tests := []struct {
		name        string
		list        *domain.AccessList
		fetchErr    error
		identity    *domain.Identity
		wantAllowed bool
		wantErr     bool
	}{
		{
			name:        "email on the list",
			list:        &domain.AccessList{Full: []string{"other@fest.org", "admin@fest.org"}},
			identity:    admin,
			wantAllowed: true,
		},
		{
			name:        "email not on the list",
			list:        &domain.AccessList{Full: []string{"other@fest.org"}},
			identity:    admin,
			wantAllowed: false,
		},
		{
			name:        "empty list denies everyone",
			list:        &domain.AccessList{},
			identity:    admin,
			wantAllowed: false,
		},
		{
			name:        "match is case-sensitive",
			list:        &domain.AccessList{Full: []string{"Admin@fest.org"}},
			identity:    admin,
			wantAllowed: false,
		},
		{
			name:        "no identity",
			list:        &domain.AccessList{Full: []string{"admin@fest.org"}},
			identity:    nil,
			wantAllowed: false,
		},
		{
			name:        "fetch failure denies",
			fetchErr:    errors.New("network unreachable"),
			identity:    admin,
			wantAllowed: false,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAccessListRepo{list: tt.list, err: tt.fetchErr}
			svc := NewAccessService(repo, testLogger, time.Second)

			allowed, err := svc.Authorize(ctx, tt.identity)
			assert.Equal(t, tt.wantAllowed, allowed)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAccessService_Authorize_FetchesFreshEveryCall(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAccessListRepo{list: &domain.AccessList{Full: []string{"admin@fest.org"}}}
	svc := NewAccessService(repo, testLogger, time.Second)
	admin := &domain.Identity{ID: "uid-1", Email: "admin@fest.org"}

	allowed, err := svc.Authorize(ctx, admin)
	require.NoError(t, err)
	require.True(t, allowed)

	// Revoking the email takes effect on the very next login attempt.
	repo.list = &domain.AccessList{}
	allowed, err = svc.Authorize(ctx, admin)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 2, repo.fetches)
}

func TestAccessService_Authorize_NoFetchWithoutIdentity(t *testing.T) {
	repo := &fakeAccessListRepo{list: &domain.AccessList{Full: []string{"admin@fest.org"}}}
	svc := NewAccessService(repo, testLogger, time.Second)

	allowed, err := svc.Authorize(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, repo.fetches)
}
