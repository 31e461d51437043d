package overseerr

import "encoding/json"

// RequestStatus represents the approval status of a media request. The broker
// reports it as a small integer.
type RequestStatus int

const (
	// RequestStatusUnknown represents an unknown request status
	RequestStatusUnknown RequestStatus = iota
	// RequestStatusPending indicates a request awaiting approval
	RequestStatusPending
	// RequestStatusApproved indicates an approved request
	RequestStatusApproved
	// RequestStatusDeclined indicates a declined request
	RequestStatusDeclined
)

// String returns the string representation of a RequestStatus
func (rs RequestStatus) String() string {
	switch rs {
	case RequestStatusPending:
		return "PENDING"
	case RequestStatusApproved:
		return "APPROVED"
	case RequestStatusDeclined:
		return "DECLINED"
	default:
		return "UNKNOWN"
	}
}

// MediaType represents the type of media
type MediaType string

const (
	// MediaTypeMovie represents a movie
	MediaTypeMovie MediaType = "movie"
	// MediaTypeTV represents a TV show
	MediaTypeTV MediaType = "tv"
)

// IsMovie checks if the media type is a movie
func (mt MediaType) IsMovie() bool {
	return mt == MediaTypeMovie
}

// Request is the simplified request model the rest of the tool works with.
// Instances are rebuilt from a full fetch on every run.
type Request struct {
	ID          int
	MediaType   MediaType
	Title       string
	TmdbID      int64
	TvdbID      int64 // 0 when the broker has no TVDB id for the item
	Status      RequestStatus
	RequestedBy string
	CreatedAt   string // ISO-8601 string as returned by the broker
}

// HasTVDBID reports whether the request carries a TVDB id. A series request
// without one cannot be verified against Sonarr.
func (r Request) HasTVDBID() bool {
	return r.TvdbID != 0
}

// RequestedDate returns the date portion of CreatedAt for display.
func (r Request) RequestedDate() string {
	if len(r.CreatedAt) >= 10 {
		return r.CreatedAt[:10]
	}
	return r.CreatedAt
}

// PageInfo contains pagination information
type PageInfo struct {
	Pages    int `json:"pages"`
	PageSize int `json:"pageSize"`
	Results  int `json:"results"`
	Page     int `json:"page"`
}

// requestsPage is the paginated response from the requests endpoint. Results
// are kept raw so one malformed item cannot fail the whole page.
type requestsPage struct {
	PageInfo PageInfo          `json:"pageInfo"`
	Results  []json.RawMessage `json:"results"`
}

// userPayload is the requesting user as the broker returns it.
type userPayload struct {
	DisplayName  string `json:"displayName"`
	Username     string `json:"username"`
	PlexUsername string `json:"plexUsername"`
	Email        string `json:"email"`
}

// displayName returns the best available name for the user.
func (u userPayload) displayName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Username != "" {
		return u.Username
	}
	if u.PlexUsername != "" {
		return u.PlexUsername
	}
	return u.Email
}

// mediaPayload is the nested media object on a request. Which title fields
// are populated varies by media type and broker version.
type mediaPayload struct {
	Title         string `json:"title"`
	Name          string `json:"name"`
	OriginalTitle string `json:"originalTitle"`
	OriginalName  string `json:"originalName"`
	TmdbID        int64  `json:"tmdbId"`
	TvdbID        int64  `json:"tvdbId"`
}

// requestPayload is a single request item as the broker returns it.
type requestPayload struct {
	ID          int           `json:"id"`
	Status      int           `json:"status"`
	Type        string        `json:"type"`
	CreatedAt   string        `json:"createdAt"`
	Title       string        `json:"title"`
	Name        string        `json:"name"`
	TmdbID      int64         `json:"tmdbId"`
	TvdbID      int64         `json:"tvdbId"`
	RequestedBy userPayload   `json:"requestedBy"`
	Media       *mediaPayload `json:"media"`
}

// mediaDetails is the response from the media detail endpoints, reduced to
// the title fields.
type mediaDetails struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}
