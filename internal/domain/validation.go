package domain

import "fmt"

// ValidationError reports a contact value that could not be normalized.
// It carries the offending label and value so the admin UI can point at
// the exact entry that broke the save.
type ValidationError struct {
	Label  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact %q: %s: %q", e.Label, e.Reason, e.Value)
}

// SchemaError reports whole-record schema violations found before a save.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0]
	}
	return fmt.Sprintf("%d schema violations (first: %s)", len(e.Problems), e.Problems[0])
}
