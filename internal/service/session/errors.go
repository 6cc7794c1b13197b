package session

import "errors"

var (
	ErrNotFound          = errors.New("session not found")
	ErrInvalidTime       = errors.New("session time must be in the future")
	ErrInvalidTimezone   = errors.New("unknown timezone")
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")
	ErrAlreadyFinal      = errors.New("session is already completed or cancelled")
	ErrTokenNotFound     = errors.New("confirmation link is invalid or expired")
)
