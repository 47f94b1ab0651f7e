package model

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrElementNotFound      = errors.New("element not found")
	ErrRelationshipNotFound = errors.New("relationship not found")
	ErrIDCollision          = errors.New("identifier already in use")
)

// ModelError provides structured error information for model operations
// that fail for reasons other than argument validation.
type ModelError struct {
	Op     string // Operation that failed (e.g. "AddContainer", "GetElement")
	Entity string // "element" or "relationship"
	ID     string
	Cause  error
}

// Error implements the error interface.
func (e *ModelError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ModelError) Unwrap() error {
	return e.Cause
}

func elementError(op, id string, cause error) error {
	return &ModelError{Op: op, Entity: "element", ID: id, Cause: cause}
}

func relationshipError(op, id string, cause error) error {
	return &ModelError{Op: op, Entity: "relationship", ID: id, Cause: cause}
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrElementNotFound) || errors.Is(err, ErrRelationshipNotFound)
}
