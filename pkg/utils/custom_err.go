package utils

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("event not found")
	ErrEventUnavailable = errors.New("event not found or inactive")
	ErrTooLarge         = errors.New("file too large")
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrDecode           = errors.New("file is not a valid image")
	ErrBlobNotFound     = errors.New("file not found")
	ErrStorage          = errors.New("storage error")
	ErrPersistence      = errors.New("persistence error")
	ErrDatabaseError    = errors.New("database error")
	ErrUnauthorized     = errors.New("unauthorized")
)

// ValidationError names the first invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
