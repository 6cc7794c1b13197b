package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("account is deactivated")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrCodeMismatch       = errors.New("verification code does not match")
	ErrTooManyAttempts    = errors.New("too many attempts, request a new code")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)
