package email

import "errors"

var (
	// ErrDisabled is returned by Send when email delivery is turned off in
	// config. Callers treat it as a soft failure and log it.
	ErrDisabled = errors.New("email delivery is disabled")

	ErrNoRecipient = errors.New("message has no recipient")
	ErrNoSubject   = errors.New("message has no subject")
	ErrNoBody      = errors.New("message has no body")
	ErrNoSender    = errors.New("from address is not configured")
)
