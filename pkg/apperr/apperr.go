// Package apperr defines the error taxonomy shared by services,
// repositories and controllers. Controllers translate these types into
// HTTP status codes; anything else is treated as an internal error.
package apperr

import (
	"fmt"
	"strings"
)

// FieldDetail localizes a single validation failure.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports a malformed or incomplete submission. Details
// always carry at least one entry so the caller can point at the
// offending field.
type ValidationError struct {
	Details []FieldDetail
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", d.Field, d.Message))
	}
	return "dados inválidos: " + strings.Join(parts, "; ")
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Details: []FieldDetail{{Field: field, Message: message}}}
}

// NotFoundError reports a missing record. Malformed and absent ids
// collapse into the same error on purpose.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " não encontrado"
}

// NotFound builds a NotFoundError for the named resource.
func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ForbiddenError reports an operation blocked by the record's current
// state, e.g. editing a plan whose status is terminal.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// Forbidden builds a ForbiddenError with the given message.
func Forbidden(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}
