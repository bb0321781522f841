// Package validation provides request validation for the API layer.
// Validation failures are collected per field so the client can surface
// every problem at once.
package validation

import (
	"fmt"
	"strings"
)

// Error is a validation failure keyed by field name.
type Error struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newError builds a validation error, returning nil when no fields failed.
func newError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}
