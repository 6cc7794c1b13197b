package billing

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvoiceNotOpen  = errors.New("invoice is not payable in its current status")
	ErrAlreadyRecorded = errors.New("payment already recorded")
)
