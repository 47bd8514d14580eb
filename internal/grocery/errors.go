package grocery

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers of the Service.
var (
	// ErrConflict reports a duplicate manual entry on explicit add.
	ErrConflict = errors.New("entry with this name already exists")

	// ErrNotFound reports a keyed mutation against a missing entry.
	ErrNotFound = errors.New("entry not found")

	// ErrEmptyName reports a manual add or rename with a blank name.
	ErrEmptyName = errors.New("entry name is empty")
)

// StoreError wraps a transient store I/O failure with the operation that
// hit it. The engine logs these and moves on; the Service surfaces them.
type StoreError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("grocery store %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the failing operation name.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// IsUnavailable reports whether err is a transient store failure.
// Uses errors.As to handle wrapped errors.
func IsUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
