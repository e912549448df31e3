package expense

import (
	"errors"
	"fmt"
)

// Validation errors, matched with errors.Is.
var (
	ErrInvalidAmount     = errors.New("amount must be a number greater than 0")
	ErrInvalidID         = errors.New("invalid expense ID")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrInvalidYear       = errors.New("invalid year")
	ErrNotFound          = errors.New("not found")
	ErrMissingArguments  = errors.New("provide at least a description or an amount to update")
	ErrEmptyDescription  = errors.New("description must not be empty")
	ErrDuplicateID       = errors.New("duplicate expense ID")
	ErrNonPositiveAmount = errors.New("amount is not greater than 0")
)

// StorageReadError reports a failure to read or decode the expenses file.
type StorageReadError struct {
	Path string
	Err  error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("error reading expenses from %q: %v", e.Path, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError reports a failure to encode or write the expenses file.
type StorageWriteError struct {
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("error saving expenses to %q: %v", e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }
