package typedpayload

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors represents a validation failure keyed by field name, with one
// or more human-readable messages per field. It is returned by the Validate*
// methods and never recovered locally; callers translate it into a
// client-visible response.
type FieldErrors struct {
	Fields map[string][]string `json:"fields"`
}

// NewFieldErrors creates an empty FieldErrors.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{
		Fields: make(map[string][]string),
	}
}

// Add appends a message to the named field.
func (e *FieldErrors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Has reports whether the named field carries at least one message.
func (e *FieldErrors) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// Messages returns the messages attached to the named field, nil if none.
func (e *FieldErrors) Messages(field string) []string {
	return e.Fields[field]
}

// Empty reports whether no field carries a message.
func (e *FieldErrors) Empty() bool {
	return len(e.Fields) == 0
}

func (e *FieldErrors) Error() string {
	if e.Empty() {
		return "validation failed"
	}

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}
