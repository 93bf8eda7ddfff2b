package finance

import "errors"

var (
	ErrRecordNotFound = errors.New("financial record not found")
	ErrInvalidKind    = errors.New("invalid record kind")
	ErrInvalidAmount  = errors.New("amount must be a positive number")
)
