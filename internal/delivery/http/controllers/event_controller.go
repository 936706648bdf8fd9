package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/helpers"
	"github.com/nitpydev/gyanith24-cms/internal/delivery/http/middleware"
	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// EventRequest is the request body for creating or updating an event.
// The slug and contact uri fields are server-derived and not accepted.
type EventRequest struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	Imgs         []string             `json:"imgs"`
	About        string               `json:"about"`
	MDContent    *string              `json:"mdContent"`
	Rules        *string              `json:"rules"`
	Status       string               `json:"status"`
	Team         bool                 `json:"team"`
	PeopleHeader *string              `json:"peopleHeader"`
	People       []PersonRequest      `json:"people"`
	Fee          *float64             `json:"fee"`
	Contacts     []ContactInfoRequest `json:"contacts"`
}

// PersonRequest is a person entry in an event request body.
type PersonRequest struct {
	Name     string               `json:"name"`
	Img      *string              `json:"img"`
	Contacts []ContactInfoRequest `json:"contacts"`
}

// ContactInfoRequest is a contact entry in an event request body. Only the
// label and display values are accepted; the uri is derived on save.
type ContactInfoRequest struct {
	Label   string `json:"label"`
	Display string `json:"display"`
}

// Validate implements Validator. Whole-record schema validation happens in
// the service; this only rejects obviously empty requests early.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// ToDomain converts the request body into a domain event.
func (e EventRequest) ToDomain() *domain.Event {
	event := &domain.Event{
		Name:         e.Name,
		Type:         e.Type,
		Imgs:         e.Imgs,
		About:        e.About,
		MDContent:    e.MDContent,
		Rules:        e.Rules,
		Status:       e.Status,
		Team:         e.Team,
		PeopleHeader: e.PeopleHeader,
		Fee:          e.Fee,
		Contacts:     toDomainContacts(e.Contacts),
	}
	for _, p := range e.People {
		event.People = append(event.People, domain.Person{
			Name:     p.Name,
			Img:      p.Img,
			Contacts: toDomainContacts(p.Contacts),
		})
	}
	return event
}

func toDomainContacts(in []ContactInfoRequest) []domain.ContactInfo {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.ContactInfo, len(in))
	for i, c := range in {
		out[i] = domain.ContactInfo{Label: c.Label, Display: c.Display}
	}
	return out
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope carrying all events.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a tech-fest event. The slug is derived from the name at creation and never changes; contact uri fields are computed from their display values before the record is written.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, ok := middleware.IdentityFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event := req.ToDomain()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.writeSaveError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse "data contains all events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	if _, ok := middleware.IdentityFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replace the event's fields and re-run the pre-save pass. The slug is never re-derived, even if the name changed.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, ok := middleware.IdentityFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event := req.ToDomain()
	event.Slug = slug
	if err := c.Service.UpdateEvent(r.Context(), event); err != nil {
		c.writeSaveError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	if _, ok := middleware.IdentityFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": slug})
}

// writeSaveError maps pre-save failures to response codes: contact format
// problems and schema violations are the caller's to fix (422), a taken
// slug is a conflict, anything else is a server error.
func (c *EventController) writeSaveError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, verr.Error())
		return
	}
	var serr *domain.SchemaError
	if errors.As(err, &serr) {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, strings.Join(serr.Problems, "; "))
		return
	}
	if errors.Is(err, domain.ErrSlugTaken) {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
