package contact

import "errors"

var (
	ErrNotFound     = errors.New("message not found")
	ErrMissingField = errors.New("name, email and body are required")
	ErrInvalidEmail = errors.New("invalid email address")
)
