// Package schema declares the admin-panel form configuration for event
// records: per-field rendering and validation rules, enumerations, storage
// bindings for image fields, and the whole-record validation predicate.
// The tables are plain data consumed by the admin UI via GET /schema; the
// only behavior lives in Validate.
package schema

import "github.com/nitpydev/gyanith24-cms/internal/domain"

// Field kinds understood by the admin UI renderer.
const (
	KindString   = "string"
	KindText     = "text"
	KindMarkdown = "markdown"
	KindBoolean  = "boolean"
	KindNumber   = "number"
	KindImage    = "image"
	KindArray    = "array"
	KindObject   = "object"
)

// Field describes one form field: how to render it and which static rules
// the renderer enforces before a record ever reaches the backend. The
// backend re-checks everything in Validate, so a bypassed UI cannot save
// an invalid record.
type Field struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Required bool   `json:"required,omitempty"`
	Trim     bool   `json:"trim,omitempty"`

	// ReadOnly fields are never directly editable; ReadOnlyNote is shown
	// in place of an input.
	ReadOnly     bool   `json:"readOnly,omitempty"`
	ReadOnlyNote string `json:"readOnlyNote,omitempty"`

	// Options restricts the value to a fixed set (enum fields).
	Options []string `json:"options,omitempty"`

	// Max bounds numeric fields; MinItems bounds array fields.
	Max      *float64 `json:"max,omitempty"`
	MinItems int      `json:"minItems,omitempty"`

	// Image fields: key prefix in the object store and accepted MIME types.
	StoragePrefix string   `json:"storagePrefix,omitempty"`
	AcceptTypes   []string `json:"acceptTypes,omitempty"`

	// Of describes element fields for array-of-object fields.
	Of []Field `json:"of,omitempty"`
}

var maxFee = float64(domain.MaxFee)

// ContactSchema describes a single contact entry. The uri field is derived
// by the pre-save normalization pass and is never user-editable.
var ContactSchema = []Field{
	{Name: "label", Title: "Label", Kind: KindString, Required: true, Trim: true},
	{Name: "display", Title: "Display", Kind: KindString, Required: true, Trim: true},
	{
		Name: "uri", Title: "URI", Kind: KindString, ReadOnly: true,
		ReadOnlyNote: "Generated from the display value on save. Use +91-XXXXXXXXXX for phone numbers, a full http(s) URL, or an email address.",
	},
}

// PersonSchema describes a speaker/coordinator entry.
var PersonSchema = []Field{
	{Name: "name", Title: "Name", Kind: KindString, Required: true, Trim: true},
	{
		Name: "img", Title: "Photo", Kind: KindImage,
		StoragePrefix: domain.AreaPeopleImgs + "/",
		AcceptTypes:   []string{"image/png", "image/jpeg"},
	},
	{Name: "contacts", Title: "Contacts", Kind: KindArray, Of: ContactSchema},
}

// EventSchema describes the event record itself. peopleHeader and people
// carry no static required flag: their requiredness depends on each other
// and is enforced by Validate on every edit.
var EventSchema = []Field{
	{Name: "name", Title: "Name", Kind: KindString, Required: true, Trim: true},
	{Name: "type", Title: "Type", Kind: KindString, Required: true, Options: domain.EventTypes},
	{
		Name: "imgs", Title: "Cover images", Kind: KindArray, Required: true, MinItems: 1,
		StoragePrefix: domain.AreaEventImgs + "/",
		AcceptTypes:   []string{"image/png", "image/jpeg"},
		Of:            []Field{{Name: "img", Title: "Image", Kind: KindImage}},
	},
	{Name: "about", Title: "About", Kind: KindText, Required: true},
	{Name: "mdContent", Title: "Details (markdown)", Kind: KindMarkdown},
	{Name: "rules", Title: "Rules", Kind: KindText},
	{Name: "status", Title: "Status", Kind: KindString, Required: true, Options: domain.EventStatuses},
	{Name: "team", Title: "Team event", Kind: KindBoolean, Required: true},
	{Name: "peopleHeader", Title: "People section header", Kind: KindString, Trim: true},
	{Name: "people", Title: "People", Kind: KindArray, Of: PersonSchema},
	{Name: "fee", Title: "Registration fee", Kind: KindNumber, Max: &maxFee},
	{Name: "contacts", Title: "Contacts", Kind: KindArray, Of: ContactSchema},
}

// Document bundles every table the admin UI needs to render the event form.
type Document struct {
	Event   []Field `json:"event"`
	Person  []Field `json:"person"`
	Contact []Field `json:"contact"`
}

// Describe returns the full schema document.
func Describe() Document {
	return Document{Event: EventSchema, Person: PersonSchema, Contact: ContactSchema}
}
