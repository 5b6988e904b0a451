// Package errs defines the domain error taxonomy. The service raises
// these; the HTTP boundary maps them to status codes with errors.As.
// Repository-level technical failures are propagated untouched and fall
// through to a generic internal error at the boundary.
package errs

import "fmt"

// NotFoundError signals that no record exists for the requested id.
type NotFoundError struct {
	Entity string
	ID     int64
}

func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// AlreadyExistsError signals that a create would violate a uniqueness
// invariant. Identifier carries the colliding value (email or username)
// so the caller can tell which check failed.
type AlreadyExistsError struct {
	Entity     string
	Identifier string
}

func NewAlreadyExists(entity, identifier string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity, Identifier: identifier}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with identifier %s already exists", e.Entity, e.Identifier)
}

// ValidationError signals input that fails structural or length
// constraints. Never retried.
type ValidationError struct {
	Message string
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
