package actionitem

import "errors"

var (
	ErrNotFound   = errors.New("action item not found")
	ErrInvalidDue = errors.New("due date cannot be in the past")
)
