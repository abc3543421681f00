package session

import "errors"

// Service errors
var (
	ErrSubmissionInFlight = errors.New("a payment is already processing")
	ErrNotAwaitingAmount  = errors.New("no payment awaiting an amount")
	ErrInvalidDetails     = errors.New("invalid payment details")
	ErrInvalidAmount      = errors.New("invalid amount")
)
