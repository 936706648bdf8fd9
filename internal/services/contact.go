package services

import (
	"regexp"
	"strings"

	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// phoneRegex matches the only accepted phone format: +91- followed by
// exactly 10 digits.
var phoneRegex = regexp.MustCompile(`^\+91-\d{10}$`)

// normalizeContact computes the canonical URI for a single contact from its
// display value. Rules, in order: an http(s) URL passes through verbatim; a
// value starting with "+" must be a +91- phone number and becomes a tel:
// URI; a value containing "@" becomes a mailto: URI; anything else is
// rejected. The URI is a pure function of Display, so re-normalizing an
// already-normalized contact is a no-op.
func normalizeContact(c *domain.ContactInfo) error {
	switch {
	case strings.HasPrefix(c.Display, "http"):
		c.URI = c.Display
	case strings.HasPrefix(c.Display, "+"):
		if !phoneRegex.MatchString(c.Display) {
			return &domain.ValidationError{
				Label:  c.Label,
				Value:  c.Display,
				Reason: "phone numbers must be of the form +91-XXXXXXXXXX",
			}
		}
		c.URI = "tel:" + c.Display
	case strings.Contains(c.Display, "@"):
		c.URI = "mailto:" + c.Display
	default:
		return &domain.ValidationError{
			Label:  c.Label,
			Value:  c.Display,
			Reason: "not a recognized URL (http), phone (+91-), or email (@) value",
		}
	}
	return nil
}

// normalizeEventContacts runs the pre-save normalization pass over every
// contact on the event: the top-level list first, then each person's list
// in order. The first invalid contact aborts the pass; the event must not
// be persisted when an error is returned.
func normalizeEventContacts(e *domain.Event) error {
	for i := range e.Contacts {
		if err := normalizeContact(&e.Contacts[i]); err != nil {
			return err
		}
	}
	for i := range e.People {
		for j := range e.People[i].Contacts {
			if err := normalizeContact(&e.People[i].Contacts[j]); err != nil {
				return err
			}
		}
	}
	return nil
}
