package services

import (
	"errors"
	"testing"

	"github.com/nitpydev/gyanith24-cms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeContact(t *testing.T) {
	tests := []struct {
		name    string
		display string
		wantURI string
		wantErr bool
	}{
		{
			name:    "http url passes through verbatim",
			display: "http://fest.org/help",
			wantURI: "http://fest.org/help",
		},
		{
			name:    "https url passes through verbatim",
			display: "https://chat.example.com/invite/abc",
			wantURI: "https://chat.example.com/invite/abc",
		},
		{
			name:    "valid indian phone number",
			display: "+91-9876543210",
			wantURI: "tel:+91-9876543210",
		},
		{
			name:    "phone with wrong country code",
			display: "+1-5551234567",
			wantErr: true,
		},
		{
			name:    "phone with too few digits",
			display: "+91-987654321",
			wantErr: true,
		},
		{
			name:    "phone with too many digits",
			display: "+91-98765432100",
			wantErr: true,
		},
		{
			name:    "phone without hyphen",
			display: "+919876543210",
			wantErr: true,
		},
		{
			name:    "email",
			display: "help@fest.org",
			wantURI: "mailto:help@fest.org",
		},
		{
			name:    "email wins only after http and plus checks",
			display: "+91-98765@3210",
			wantErr: true,
		},
		{
			name:    "unrecognized value",
			display: "call the front desk",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.ContactInfo{Label: "Help", Display: tt.display}
			err := normalizeContact(&c)
			if tt.wantErr {
				require.Error(t, err)
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "Help", verr.Label)
				assert.Equal(t, tt.display, verr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURI, c.URI)
		})
	}
}

func TestNormalizeContact_Idempotent(t *testing.T) {
	c := domain.ContactInfo{Label: "Help", Display: "help@fest.org"}
	require.NoError(t, normalizeContact(&c))
	first := c.URI

	require.NoError(t, normalizeContact(&c))
	assert.Equal(t, first, c.URI)
}

func TestNormalizeEventContacts(t *testing.T) {
	header := "Coordinators"
	e := &domain.Event{
		Contacts: []domain.ContactInfo{
			{Label: "Help", Display: "help@fest.org"},
			{Label: "Site", Display: "https://fest.org"},
		},
		PeopleHeader: &header,
		People: []domain.Person{
			{Name: "A", Contacts: []domain.ContactInfo{{Label: "A phone", Display: "+91-9876543210"}}},
			{Name: "B", Contacts: []domain.ContactInfo{{Label: "B mail", Display: "b@fest.org"}}},
		},
	}

	require.NoError(t, normalizeEventContacts(e))
	assert.Equal(t, "mailto:help@fest.org", e.Contacts[0].URI)
	assert.Equal(t, "https://fest.org", e.Contacts[1].URI)
	assert.Equal(t, "tel:+91-9876543210", e.People[0].Contacts[0].URI)
	assert.Equal(t, "mailto:b@fest.org", e.People[1].Contacts[0].URI)
}

func TestNormalizeEventContacts_FirstFailureWins(t *testing.T) {
	e := &domain.Event{
		Contacts: []domain.ContactInfo{
			{Label: "Good", Display: "help@fest.org"},
			{Label: "Bad one", Display: "+1-5551234567"},
			{Label: "Bad two", Display: "nonsense"},
		},
	}

	err := normalizeEventContacts(e)
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Bad one", verr.Label)
	assert.Equal(t, "+1-5551234567", verr.Value)
}
