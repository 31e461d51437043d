package overseerr

import "errors"

// Common errors
var (
	// ErrNoConnection indicates connection failure
	ErrNoConnection = errors.New("failed to connect to overseerr")
)
