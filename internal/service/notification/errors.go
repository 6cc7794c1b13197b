package notification

import "errors"

var (
	ErrNotFound     = errors.New("notification not found")
	ErrUnauthorized = errors.New("notification belongs to another user")
)
