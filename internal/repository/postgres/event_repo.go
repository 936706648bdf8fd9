package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by Postgres. People
// and contacts are stored as jsonb, cover images as a text array.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	people, contacts, err := marshalNested(e)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (slug, name, type, imgs, about, md_content, rules, status, team, people_header, people, fee, contacts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.DB.ExecContext(ctx, query,
		e.Slug, e.Name, e.Type, pq.Array(e.Imgs), e.About, e.MDContent, e.Rules,
		e.Status, e.Team, e.PeopleHeader, people, e.Fee, contacts, e.CreatedAt, e.UpdatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrSlugTaken
	}
	return err
}

const eventColumns = `slug, name, type, imgs, about, md_content, rules, status, team, people_header, people, fee, contacts, created_at, updated_at`

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	people, contacts, err := marshalNested(e)
	if err != nil {
		return err
	}
	query := `
		UPDATE events
		SET name = $2, type = $3, imgs = $4, about = $5, md_content = $6, rules = $7,
		    status = $8, team = $9, people_header = $10, people = $11, fee = $12,
		    contacts = $13, updated_at = $14
		WHERE slug = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		e.Slug, e.Name, e.Type, pq.Array(e.Imgs), e.About, e.MDContent, e.Rules,
		e.Status, e.Team, e.PeopleHeader, people, e.Fee, contacts, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// marshalNested encodes the people and contacts lists as jsonb values.
// Empty lists are stored as SQL NULL rather than empty JSON arrays.
func marshalNested(e *domain.Event) (people, contacts []byte, err error) {
	if len(e.People) > 0 {
		people, err = json.Marshal(e.People)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal people: %w", err)
		}
	}
	if len(e.Contacts) > 0 {
		contacts, err = json.Marshal(e.Contacts)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal contacts: %w", err)
		}
	}
	return people, contacts, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var mdNull, rulesNull, headerNull sql.NullString
	var feeNull sql.NullFloat64
	var peopleRaw, contactsRaw []byte
	err := row.Scan(
		&e.Slug, &e.Name, &e.Type, pq.Array(&e.Imgs), &e.About, &mdNull, &rulesNull,
		&e.Status, &e.Team, &headerNull, &peopleRaw, &feeNull, &contactsRaw,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mdNull.Valid {
		e.MDContent = &mdNull.String
	}
	if rulesNull.Valid {
		e.Rules = &rulesNull.String
	}
	if headerNull.Valid {
		e.PeopleHeader = &headerNull.String
	}
	if feeNull.Valid {
		e.Fee = &feeNull.Float64
	}
	if len(peopleRaw) > 0 {
		if err := json.Unmarshal(peopleRaw, &e.People); err != nil {
			return nil, fmt.Errorf("unmarshal people: %w", err)
		}
	}
	if len(contactsRaw) > 0 {
		if err := json.Unmarshal(contactsRaw, &e.Contacts); err != nil {
			return nil, fmt.Errorf("unmarshal contacts: %w", err)
		}
	}
	return e, nil
}
