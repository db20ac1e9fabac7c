// Package apperr defines the error taxonomy shared by the record stores and
// the HTTP layer. Each concrete type matches its sentinel through errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrStore        = errors.New("store failure")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a required field that is missing or a value outside
// its vocabulary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Required is shorthand for a missing-field ValidationError.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// Invalid is shorthand for a ValidationError with a reason.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StoreError wraps a persistence failure. Its message carries the operation
// only; the underlying error is reachable through Unwrap for logging.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s failed", e.Op)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

func Store(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
