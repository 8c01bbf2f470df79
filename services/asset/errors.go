package asset

import "fmt"

// ConflictError means a candidate interval overlaps an existing active
// booking or maintenance window, or the asset is administratively blocked.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "bookingConflict",
		Message: msg,
	}
}

// NotFoundError means no matching asset or booking exists for the request.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{
		Code:    "notFound",
		Message: msg,
	}
}

// InvalidStatusError means an unrecognized asset status string was supplied.
type InvalidStatusError struct {
	Code    string
	Message string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidStatusError(msg string) error {
	return &InvalidStatusError{
		Code:    "invalidStatus",
		Message: msg,
	}
}
