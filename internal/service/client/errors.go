package client

import "errors"

var (
	ErrNotFound    = errors.New("client not found")
	ErrEmailTaken  = errors.New("email is already registered")
	ErrInvalidZone = errors.New("unknown timezone")
)
