package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ValidationError reports malformed input rejected before any persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConflictError reports an operation that contradicts current state,
// e.g. completing an already completed session.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// StorageError wraps a failed read or write against the backing store.
type StorageError struct {
	Op      string
	Wrapped error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Wrapped)
}

func (e *StorageError) Unwrap() error { return e.Wrapped }

// GenerationError reports a failed or unparsable AI generation call.
// An empty generated set must surface as this error, never as a silent nil.
type GenerationError struct {
	Reason  string
	Wrapped error
}

func (e *GenerationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation: %s: %v", e.Reason, e.Wrapped)
	}
	return "generation: " + e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Wrapped }

// Constructors keep call sites short.

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Wrapped: err}
}

func Generation(reason string, err error) error {
	return &GenerationError{Reason: reason, Wrapped: err}
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsStorage(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}

func IsGeneration(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}
