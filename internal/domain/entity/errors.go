package entity

import "errors"

var (
	// Task errors
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("invalid task ID")

	// Validation errors
	ErrRequiredField = errors.New("required field is missing")

	// Store errors
	ErrStoreRejected    = errors.New("request rejected by task store")
	ErrStoreUnavailable = errors.New("task store unavailable")
	ErrMalformedReply   = errors.New("malformed reply from task store")

	// Session errors
	ErrNotAuthenticated = errors.New("not logged in")
	ErrInvalidEmail     = errors.New("email cannot be empty")
	ErrInvalidPassword  = errors.New("password cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
)
