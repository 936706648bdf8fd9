package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for event operations.
var (
	ErrNotFound  = errors.New("event not found")
	ErrSlugTaken = errors.New("slug already in use")
)

// Event types selectable in the admin panel.
const (
	TypeWorkshop  = "workshop"
	TypeTech      = "tech"
	TypeNonTech   = "non-tech"
	TypeGuestTalk = "guest-talk"
	TypeProShow   = "pro-show"
	TypeExpo      = "expo"
)

// EventTypes lists every valid value for Event.Type.
var EventTypes = []string{TypeWorkshop, TypeTech, TypeNonTech, TypeGuestTalk, TypeProShow, TypeExpo}

// StatusActive is currently the only event status.
const StatusActive = "active"

// EventStatuses lists every valid value for Event.Status.
var EventStatuses = []string{StatusActive}

// MaxFee is the upper bound for the registration fee.
const MaxFee = 5000

// Event represents a tech-fest event managed through the admin panel.
// Slug is the primary identifier, derived from Name once at creation
// and never recomputed afterwards.
// swagger:model Event
type Event struct {
	Slug         string        `json:"slug"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Imgs         []string      `json:"imgs"`
	About        string        `json:"about"`
	MDContent    *string       `json:"mdContent,omitempty"`
	Rules        *string       `json:"rules,omitempty"`
	Status       string        `json:"status"`
	Team         bool          `json:"team"`
	PeopleHeader *string       `json:"peopleHeader,omitempty"`
	People       []Person      `json:"people,omitempty"`
	Fee          *float64      `json:"fee,omitempty"`
	Contacts     []ContactInfo `json:"contacts,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Person is a speaker, organizer, or coordinator attached to an event.
type Person struct {
	Name     string        `json:"name"`
	Img      *string       `json:"img,omitempty"`
	Contacts []ContactInfo `json:"contacts,omitempty"`
}

// ContactInfo is a single contact entry. Display holds the raw value the
// admin typed (phone, email, or URL); URI is the canonical tel:/mailto:/http
// form and is always recomputed from Display before a save.
type ContactInfo struct {
	Label   string `json:"label"`
	Display string `json:"display"`
	URI     string `json:"uri,omitempty"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, slug string) error
}

// EventService defines the business logic for managing events.
// CreateEvent and UpdateEvent run the full pre-save pass: whole-record
// schema validation followed by contact normalization. A failure in either
// aborts the save with nothing persisted.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, slug string) error
}
