package model

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Error codes are stable identifiers for support reference; the user-facing
// message is a templated, non-technical string keyed by code. Technical
// detail stays in logs, never in UserMessage.
const (
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeTransport         = "TRANSPORT"
	CodeRateLimited       = "RATE_LIMITED"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeRoomDeleted       = "ROOM_DELETED"
)

var userMessages = map[string]string{
	CodeValidationFailed:  "Please check the highlighted fields and try again.",
	CodeNotFound:          "We couldn't find what you were looking for.",
	CodeConflict:          "That name is already taken.",
	CodePermissionDenied:  "You don't have permission to do that.",
	CodeTransport:         "Something went wrong talking to the server. Please try again.",
	CodeRateLimited:       "Too many requests. Please wait a moment.",
	CodeUnsupportedFormat: "Only image and video files can be attached.",
	CodeRoomDeleted:       "This room no longer exists.",
}

type AppError struct {
	Code  string
	Field string
	Err   error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage returns the templated string shown to the user for this code.
func (e *AppError) UserMessage() string {
	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}
	return userMessages[CodeTransport]
}

func NewAppError(code string, err error) *AppError {
	return &AppError{Code: code, Err: err}
}

// NewValidationError carries the offending field so the UI can render the
// message inline next to it.
func NewValidationError(field string, err error) *AppError {
	return &AppError{Code: CodeValidationFailed, Field: field, Err: err}
}

// AsAppError extracts an AppError from err's chain, defaulting unclassified
// failures to the transport code.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: CodeTransport, Err: err}
}

const pqForeignKeyViolation = "23503"

// IsRoomDeleted reports whether err is the foreign-key violation signature
// produced by inserting a message into a room deleted mid-action.
func IsRoomDeleted(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeRoomDeleted
}
