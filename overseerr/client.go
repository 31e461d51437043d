package overseerr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/reconcilarr/reconcilarr/httpclient"
)

// defaultPageSize is the take/skip window used when page-walking the request
// collection.
const defaultPageSize = 50

// Client represents an Overseerr API client
type Client struct {
	http     *httpclient.Client
	logger   zerolog.Logger
	pageSize int
}

// NewClient creates a new Overseerr client
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := clientOptions{pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(&options)
	}

	hc, err := httpclient.New(baseURL, apiKey, logger, options.httpOptions...)
	if err != nil {
		return nil, fmt.Errorf("overseerr: %w", err)
	}

	return &Client{
		http:     hc,
		logger:   logger,
		pageSize: options.pageSize,
	}, nil
}

// TestConnection verifies the configured URL and API key against Overseerr.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.http.Get(ctx, "/api/v1/auth/me", nil); err != nil {
		return fmt.Errorf("%w: %v", ErrNoConnection, err)
	}
	return nil
}

// GetRequests retrieves all requests from Overseerr, optionally filtered by
// status. The full collection is page-walked and materialized in page order;
// filtering happens client-side against the authoritative per-item status,
// since the upstream filter parameter is unreliable across broker versions.
//
// Malformed items are skipped with a warning rather than failing the fetch.
func (c *Client) GetRequests(ctx context.Context, status RequestStatus) ([]Request, error) {
	var all []Request
	page := 1

	for {
		params := url.Values{}
		params.Set("take", strconv.Itoa(c.pageSize))
		params.Set("skip", strconv.Itoa((page-1)*c.pageSize))

		var resp requestsPage
		if err := c.http.GetJSON(ctx, "/api/v1/request", params, &resp); err != nil {
			return nil, fmt.Errorf("failed to get requests: %w", err)
		}

		if len(resp.Results) == 0 {
			break
		}

		if page == 1 {
			// Schema drift between broker versions is common enough that the
			// raw shape of the first item is worth having in debug output.
			c.logger.Debug().RawJSON("first_item", resp.Results[0]).Msg("First request payload")
		}

		for _, raw := range resp.Results {
			req, ok := c.parseRequest(raw)
			if !ok {
				continue
			}
			all = append(all, req)
		}

		c.logger.Debug().
			Int("page", page).
			Int("count", len(resp.Results)).
			Int("total", len(all)).
			Msg("Retrieved requests from Overseerr")

		if resp.PageInfo.Pages <= page {
			break
		}
		page++
	}

	if status == RequestStatusUnknown {
		return all, nil
	}

	filtered := make([]Request, 0, len(all))
	for _, req := range all {
		if req.Status == status {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

// parseRequest decodes a single raw request item. Items without a usable id
// are dropped so a single malformed entry cannot abort the whole fetch.
func (c *Client) parseRequest(raw json.RawMessage) (Request, bool) {
	var p requestPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.Warn().Err(err).Msg("Skipping malformed request item")
		return Request{}, false
	}
	if p.ID == 0 {
		c.logger.Warn().RawJSON("item", raw).Msg("Skipping request item without an id")
		return Request{}, false
	}

	mediaType := MediaTypeTV
	if p.Type == string(MediaTypeMovie) {
		mediaType = MediaTypeMovie
	}

	tmdbID, tvdbID := p.TmdbID, p.TvdbID
	if p.Media != nil {
		tmdbID = p.Media.TmdbID
		tvdbID = p.Media.TvdbID
	}

	requestedBy := p.RequestedBy.displayName()
	if requestedBy == "" {
		requestedBy = "Unknown"
	}

	return Request{
		ID:          p.ID,
		MediaType:   mediaType,
		Title:       resolveTitle(&p),
		TmdbID:      tmdbID,
		TvdbID:      tvdbID,
		Status:      RequestStatus(p.Status),
		RequestedBy: requestedBy,
		CreatedAt:   p.CreatedAt,
	}, true
}

// RetryRequest asks Overseerr to re-push a request to its downstream
// integration. The reconcile path submits directly to the downstreams
// instead, which bypasses any stuck broker-side state; this stays available
// for callers that want the broker to do the push.
func (c *Client) RetryRequest(ctx context.Context, requestID int) bool {
	path := fmt.Sprintf("/api/v1/request/%d/retry", requestID)
	if _, err := c.http.Post(ctx, path, struct{}{}); err != nil {
		c.logger.Error().Err(err).Int("request_id", requestID).Msg("Failed to retry request")
		return false
	}
	return true
}

// GetMediaTitle fetches the canonical title for a media item from Overseerr.
// Any failure falls back to the supplied title; this is a display concern and
// must never fail a run.
func (c *Client) GetMediaTitle(ctx context.Context, mediaType MediaType, mediaID int64, fallback string) string {
	path := fmt.Sprintf("/api/v1/%s/%d", mediaType, mediaID)

	var details mediaDetails
	if err := c.http.GetJSON(ctx, path, nil, &details); err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("Media title lookup failed, using fallback")
		return fallback
	}

	if details.Title != "" {
		return details.Title
	}
	if details.Name != "" {
		return details.Name
	}
	return fallback
}
