package services

import (
	"context"
	"time"

	"github.com/nitpydev/gyanith24-cms/internal/domain"
	"github.com/nitpydev/gyanith24-cms/internal/schema"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService returns the event business logic backed by the given
// repository. All operations are bounded by the given timeout.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// CreateEvent validates the record, assigns its slug from the name, runs
// the contact normalization pass, and persists it. The slug is derived here
// and only here; later renames never change it.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if problems := schema.Validate(event); len(problems) > 0 {
		return &domain.SchemaError{Problems: problems}
	}
	event.Slug = deriveSlug(event.Name)
	if err := normalizeEventContacts(event); err != nil {
		return err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.GetBySlug(ctx, slug)
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.List(ctx)
}

// UpdateEvent validates and re-normalizes the record, then persists it
// under its existing slug. The name may have changed; the slug has not.
func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.Slug == "" {
		return domain.ErrNotFound
	}
	if problems := schema.Validate(event); len(problems) > 0 {
		return &domain.SchemaError{Problems: problems}
	}
	if err := normalizeEventContacts(event); err != nil {
		return err
	}
	event.UpdatedAt = time.Now()

	return s.eventRepo.Update(ctx, event)
}

func (s *eventService) DeleteEvent(ctx context.Context, slug string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.Delete(ctx, slug)
}
