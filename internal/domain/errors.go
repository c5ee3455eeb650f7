package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidDateRange   = errors.New("period end before period start")
	ErrSourceUnavailable  = errors.New("document source unavailable")
	ErrInvariantViolation = errors.New("statement balance invariant violated")
	ErrCurrencyMismatch   = errors.New("currency mismatch")
	ErrInvalidCurrency    = errors.New("invalid currency")
	ErrInvalidRequest     = errors.New("invalid request")
)
