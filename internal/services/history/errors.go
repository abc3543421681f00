package history

import "errors"

// Service errors
var (
	ErrRefreshFailed = errors.New("failed to load transactions")
	ErrClearFailed   = errors.New("failed to clear transactions")
)

// MsgLoadFailed is shown in place of the list when a refresh fails.
const MsgLoadFailed = "Failed to load transactions. Please try again."
