package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific record field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// PersistenceError indicates that the primary (local) write failed.
// It is the only side-channel-free failure: the request must be aborted.
type PersistenceError struct {
	Collection string
	Err        error
}

func NewPersistenceError(collection string, err error) error {
	return &PersistenceError{Collection: collection, Err: err}
}

func (err PersistenceError) Error() string {
	return "failed to save " + err.Collection
}

func (err PersistenceError) Unwrap() error { return err.Err }

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
