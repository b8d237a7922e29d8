// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Fatal document-level errors. Row-local parse failures are never
// surfaced as errors; they are absorbed into drop counts and reported
// as warnings.
var (
	// ErrDocumentOpen means the source file could not be opened or
	// decoded at all (corrupt PDF, unreadable CSV). Fatal, no retry.
	ErrDocumentOpen = errors.New("could not open document")

	// ErrMissingColumn means required canonical fields were absent
	// after header normalization. Fatal for the document.
	ErrMissingColumn = errors.New("missing required columns")

	// ErrNoValidRows means neither extraction strategy produced a row
	// with a structurally valid date.
	ErrNoValidRows = errors.New("no valid transactions extracted")

	// ErrUnsupportedFormat means the file extension is not one of the
	// known statement formats.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// UserError represents an error whose message is meant for an end user.
// The pipeline returns these instead of raising internal detail past
// its boundary, so a caller can render Error() directly.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
