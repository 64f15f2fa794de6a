// Package apperrors defines the error kinds services return and handlers
// translate into HTTP responses: validation (400), authentication (401),
// not-found (404) and integrity (500).
package apperrors

import "fmt"

// Fields maps a field name to its validation messages, mirroring the
// serializer-style error detail clients already parse.
type Fields map[string][]string

type ValidationError struct {
	Message string
	Fields  Fields
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: Fields{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasFields() bool { return len(e.Fields) > 0 }

type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string { return e.Message }
func (e *AuthenticationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// IntegrityError marks a persistence-layer failure. It is never reported as a
// validation problem.
type IntegrityError struct {
	Message string
	Err     error
}

func (e *IntegrityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *IntegrityError) Unwrap() error { return e.Err }
