package overseerr

import (
	"context"
)

// API defines the interface for Overseerr operations
type API interface {
	// TestConnection verifies the client can connect to Overseerr
	TestConnection(ctx context.Context) error

	// GetRequests retrieves all requests, optionally filtered by status
	GetRequests(ctx context.Context, status RequestStatus) ([]Request, error)

	// RetryRequest asks Overseerr to re-push a request downstream
	RetryRequest(ctx context.Context, requestID int) bool

	// GetMediaTitle fetches the canonical title for a media item
	GetMediaTitle(ctx context.Context, mediaType MediaType, mediaID int64, fallback string) string
}
