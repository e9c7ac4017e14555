// Package errors provides the error types shared across the todo
// application. Storage failures carry enough context to be diagnosed from
// the operational log alone, since they are never surfaced to the user.
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrStorage indicates a persistence backend failure.
	ErrStorage = errors.New("storage error")
	// ErrIndexOutOfRange indicates a display index outside the current list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInput indicates user input that could not be understood.
	ErrInput = errors.New("invalid input")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
)

// StorageError describes a failed persistence operation.
// It wraps the underlying cause and matches ErrStorage with errors.Is.
type StorageError struct {
	// Op is the operation that failed ("save", "load", "resolve").
	Op string
	// Path is the file path involved, if one was resolved.
	Path string
	// Err is the underlying cause.
	Err error
}

// NewStorageError creates a StorageError for the given operation.
func NewStorageError(op, path string, err error) *StorageError {
	return &StorageError{Op: op, Path: path, Err: err}
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches this error's kind.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// IndexError creates an error for a display index outside the list bounds.
// It matches ErrIndexOutOfRange with errors.Is.
func IndexError(index, count int) error {
	return fmt.Errorf("%w: %d (list has %d todos)", ErrIndexOutOfRange, index, count)
}
