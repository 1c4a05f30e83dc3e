package error

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned when the storage backend cannot be reached.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageError describes a failed storage gateway operation on a collection key.
type StorageError struct {
	Op  string // "get", "set" or "remove"
	Key string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a failed storage operation.
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}
