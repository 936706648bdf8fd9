package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

type accessListRepository struct {
	DB *sql.DB
}

// NewAccessListRepository returns an AccessListRepository reading the
// allow-list document from the cms_documents table. Every Get is a plain
// SELECT against the database, so revocations take effect on the next
// login attempt with no cache to invalidate.
func NewAccessListRepository(db *sql.DB) domain.AccessListRepository {
	return &accessListRepository{
		DB: db,
	}
}

func (r *accessListRepository) Get(ctx context.Context) (*domain.AccessList, error) {
	query := `SELECT body FROM cms_documents WHERE path = $1`
	var body []byte
	err := r.DB.QueryRowContext(ctx, query, domain.AccessDocPath).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A missing document means nobody has been allowed yet.
			return &domain.AccessList{Full: []string{}}, nil
		}
		return nil, err
	}
	list := &domain.AccessList{}
	if err := json.Unmarshal(body, list); err != nil {
		return nil, fmt.Errorf("decode access document: %w", err)
	}
	if list.Full == nil {
		list.Full = []string{}
	}
	return list, nil
}
