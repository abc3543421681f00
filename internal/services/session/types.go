package session

import "time"

// DefaultConfirmationDelay is how long the success confirmation stays up
// before the session returns to idle and refreshes history.
const DefaultConfirmationDelay = 7 * time.Second

// Config holds session tuning.
type Config struct {
	ConfirmationDelay time.Duration
}
