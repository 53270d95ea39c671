package validation

import (
	"errors"
	"sort"
	"strings"
)

// Error carries field-level validation messages, decoded once at the
// transport boundary and surfaced next to the offending input.
type Error struct {
	Fields map[string][]string
}

// New creates an empty validation error
func New() *Error {
	return &Error{Fields: make(map[string][]string)}
}

// Add appends a message for a field
func (e *Error) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Err returns the error if any field failed, nil otherwise
func (e *Error) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f + ": " + strings.Join(e.Fields[f], ", "))
	}
	return b.String()
}

// AsError extracts a validation error from an error chain
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
