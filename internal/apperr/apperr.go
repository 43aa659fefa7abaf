// Package apperr defines the error taxonomy shared by the storage, service and
// handler layers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalid is matched by every ValidationError.
	ErrInvalid = errors.New("invalid input")

	// ErrConstraint is matched by every ConstraintError.
	ErrConstraint = errors.New("constraint violated")
)

// NotFoundError reports a missing row, either the one addressed by a request
// or one referenced by it.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound returns a NotFoundError for the given entity and id.
func NotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError names the input field that was rejected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Invalid returns a ValidationError for field with a formatted message.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConstraintKind classifies integrity violations reported by the database.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintNotNull    ConstraintKind = "not_null"
)

// ConstraintError is a rejected write. Constraint is the database constraint
// name and Field the column it guards, when known.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Field      string
	Err        error
}

func (e *ConstraintError) Error() string {
	msg := fmt.Sprintf("%s constraint %q violated", e.Kind, e.Constraint)
	if e.Field != "" {
		msg += " on " + e.Field
	}
	return msg
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraint
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ConfigError is raised at startup only. It is never produced while serving a
// request and the process is expected to exit on it.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
