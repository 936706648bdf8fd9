package schema

import (
	"strings"
	"testing"

	"github.com/nitpydev/gyanith24-cms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *domain.Event {
	return &domain.Event{
		Name:   "Robotics Workshop",
		Type:   domain.TypeWorkshop,
		Imgs:   []string{"https://img.example.com/event-imgs/robotics.png"},
		About:  "Build and program a line follower.",
		Status: domain.StatusActive,
		Team:   true,
	}
}

func strPtr(s string) *string { return &s }

func TestValidate(t *testing.T) {
	fee := float64(250)
	overFee := float64(5001)

	tests := []struct {
		name        string
		mutate      func(e *domain.Event)
		wantProblem string // empty means the record must be valid
	}{
		{
			name:   "valid minimal record",
			mutate: func(e *domain.Event) {},
		},
		{
			name:        "missing name",
			mutate:      func(e *domain.Event) { e.Name = "  " },
			wantProblem: "name is required",
		},
		{
			name:        "missing type",
			mutate:      func(e *domain.Event) { e.Type = "" },
			wantProblem: "type is required",
		},
		{
			name:        "type outside enum",
			mutate:      func(e *domain.Event) { e.Type = "hackathon" },
			wantProblem: `type "hackathon" is not one of`,
		},
		{
			name:        "no cover images",
			mutate:      func(e *domain.Event) { e.Imgs = nil },
			wantProblem: "at least one cover image is required",
		},
		{
			name:        "missing about",
			mutate:      func(e *domain.Event) { e.About = "" },
			wantProblem: "about is required",
		},
		{
			name:        "status outside enum",
			mutate:      func(e *domain.Event) { e.Status = "archived" },
			wantProblem: `status "archived" is not one of`,
		},
		{
			name:   "fee within bound",
			mutate: func(e *domain.Event) { e.Fee = &fee },
		},
		{
			name:        "fee above bound",
			mutate:      func(e *domain.Event) { e.Fee = &overFee },
			wantProblem: "fee must be at most 5000",
		},
		{
			name:        "people without header",
			mutate:      func(e *domain.Event) { e.People = []domain.Person{{Name: "A. Mentor"}} },
			wantProblem: "peopleHeader is required when people is set",
		},
		{
			name:        "header without people",
			mutate:      func(e *domain.Event) { e.PeopleHeader = strPtr("Mentors") },
			wantProblem: "people is required when peopleHeader is set",
		},
		{
			name: "header and people together",
			mutate: func(e *domain.Event) {
				e.PeopleHeader = strPtr("Mentors")
				e.People = []domain.Person{{Name: "A. Mentor"}}
			},
		},
		{
			name:        "blank header does not satisfy people",
			mutate:      func(e *domain.Event) { e.PeopleHeader = strPtr("   "); e.People = []domain.Person{{Name: "A"}} },
			wantProblem: "peopleHeader is required when people is set",
		},
		{
			name: "person missing name",
			mutate: func(e *domain.Event) {
				e.PeopleHeader = strPtr("Mentors")
				e.People = []domain.Person{{}}
			},
			wantProblem: "people[0]: name is required",
		},
		{
			name: "contact missing display",
			mutate: func(e *domain.Event) {
				e.Contacts = []domain.ContactInfo{{Label: "Help"}}
			},
			wantProblem: "contacts[0]: display is required",
		},
		{
			name: "person contact missing label",
			mutate: func(e *domain.Event) {
				e.PeopleHeader = strPtr("Mentors")
				e.People = []domain.Person{{Name: "A", Contacts: []domain.ContactInfo{{Display: "a@fest.org"}}}}
			},
			wantProblem: "people[0].contacts[0]: label is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)
			problems := Validate(e)
			if tt.wantProblem == "" {
				assert.Empty(t, problems)
				return
			}
			require.NotEmpty(t, problems)
			found := false
			for _, p := range problems {
				if strings.Contains(p, tt.wantProblem) {
					found = true
				}
			}
			assert.True(t, found, "expected a problem containing %q, got %v", tt.wantProblem, problems)
		})
	}
}

func TestDescribe(t *testing.T) {
	doc := Describe()
	require.NotEmpty(t, doc.Event)
	require.NotEmpty(t, doc.Person)
	require.NotEmpty(t, doc.Contact)

	byName := map[string]Field{}
	for _, f := range doc.Event {
		byName[f.Name] = f
	}

	assert.Equal(t, domain.EventTypes, byName["type"].Options)
	assert.Equal(t, 1, byName["imgs"].MinItems)
	assert.Equal(t, domain.AreaEventImgs+"/", byName["imgs"].StoragePrefix)
	require.NotNil(t, byName["fee"].Max)
	assert.Equal(t, float64(domain.MaxFee), *byName["fee"].Max)

	// peopleHeader and people carry no static required flag; their
	// requiredness is decided by Validate.
	assert.False(t, byName["peopleHeader"].Required)
	assert.False(t, byName["people"].Required)

	var uri Field
	for _, f := range doc.Contact {
		if f.Name == "uri" {
			uri = f
		}
	}
	assert.True(t, uri.ReadOnly)
	assert.NotEmpty(t, uri.ReadOnlyNote)

	for _, f := range doc.Person {
		if f.Name == "img" {
			assert.Equal(t, domain.AreaPeopleImgs+"/", f.StoragePrefix)
			assert.Equal(t, []string{"image/png", "image/jpeg"}, f.AcceptTypes)
		}
	}
}
