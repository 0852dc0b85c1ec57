package formkit

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors collects externally-sourced error messages by field name,
// typically extracted from a rejected submission response. It implements
// the error interface so network layers can return it directly.
type FieldErrors map[string][]string

// NewFieldErrors creates an empty collection.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Error implements the error interface with a stable, human-readable
// summary.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		if len(e[field]) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, e[field][0]))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an error message for a field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Get returns the first error message for a field, or "".
func (e FieldErrors) Get(field string) string {
	if messages := e[field]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// Has reports whether a field has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether the collection carries no errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// ApplyErrors injects the first message of every matching field as a
// manual override, exactly as per-field SetError calls would. Messages for
// undeclared fields are ignored.
func (f *Form) ApplyErrors(errs FieldErrors) {
	for field, messages := range errs {
		if len(messages) == 0 {
			continue
		}
		f.SetError(field, messages[0])
	}
}
