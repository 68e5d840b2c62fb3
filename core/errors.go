package core

import "github.com/pkg/errors"

// FieldError reports a validation failure on one input field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries field-level failures that the HTTP layer renders
// as a 400 with a {field: message} map.
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

// shutdown marks an error the server cannot recover from; catching one
// triggers a graceful shutdown.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err (at its cause) is a shutdown error.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
