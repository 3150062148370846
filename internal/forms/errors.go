package forms

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("form not found")
	// ErrStorage wraps every failure of the durable layer other than a collection
	// that was never written.
	ErrStorage = errors.New("storage failure")
)

type ValidationError struct {
	FieldID string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
