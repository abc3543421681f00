package gateway

import "errors"

// Service errors
var (
	ErrInvalidPayment     = errors.New("invalid payment details")
	ErrAppendFailed       = errors.New("failed to record transaction")
	ErrHistoryUnavailable = errors.New("failed to load transactions")
)
