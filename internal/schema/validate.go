package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// Validate checks a whole event record against the schema: required fields,
// enum membership, the fee ceiling, the minimum image count, and the
// cross-field rule that peopleHeader and people require each other. It
// returns every problem found; nil means the record is valid.
//
// Cross-field requiredness cannot be expressed as a static per-field rule,
// so callers must re-run Validate on the full record for every save attempt
// rather than caching per-field results.
func Validate(e *domain.Event) []string {
	var problems []string

	if strings.TrimSpace(e.Name) == "" {
		problems = append(problems, "name is required")
	}
	if e.Type == "" {
		problems = append(problems, "type is required")
	} else if !slices.Contains(domain.EventTypes, e.Type) {
		problems = append(problems, fmt.Sprintf("type %q is not one of %s", e.Type, strings.Join(domain.EventTypes, ", ")))
	}
	if len(e.Imgs) < 1 {
		problems = append(problems, "at least one cover image is required")
	}
	if strings.TrimSpace(e.About) == "" {
		problems = append(problems, "about is required")
	}
	if e.Status == "" {
		problems = append(problems, "status is required")
	} else if !slices.Contains(domain.EventStatuses, e.Status) {
		problems = append(problems, fmt.Sprintf("status %q is not one of %s", e.Status, strings.Join(domain.EventStatuses, ", ")))
	}
	if e.Fee != nil && *e.Fee > domain.MaxFee {
		problems = append(problems, fmt.Sprintf("fee must be at most %d", domain.MaxFee))
	}

	// peopleHeader and people entail each other.
	hasHeader := e.PeopleHeader != nil && strings.TrimSpace(*e.PeopleHeader) != ""
	hasPeople := len(e.People) > 0
	if hasPeople && !hasHeader {
		problems = append(problems, "peopleHeader is required when people is set")
	}
	if hasHeader && !hasPeople {
		problems = append(problems, "people is required when peopleHeader is set")
	}

	for i, p := range e.People {
		if strings.TrimSpace(p.Name) == "" {
			problems = append(problems, fmt.Sprintf("people[%d]: name is required", i))
		}
		problems = append(problems, validateContacts(fmt.Sprintf("people[%d].contacts", i), p.Contacts)...)
	}
	problems = append(problems, validateContacts("contacts", e.Contacts)...)

	return problems
}

func validateContacts(prefix string, contacts []domain.ContactInfo) []string {
	var problems []string
	for i, c := range contacts {
		if strings.TrimSpace(c.Label) == "" {
			problems = append(problems, fmt.Sprintf("%s[%d]: label is required", prefix, i))
		}
		if strings.TrimSpace(c.Display) == "" {
			problems = append(problems, fmt.Sprintf("%s[%d]: display is required", prefix, i))
		}
	}
	return problems
}
