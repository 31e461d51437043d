package radarr

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/reconcilarr/reconcilarr/httpclient"
)

// Defaults used when the instance reports no quality profiles or root
// folders. Profile id 1 is Radarr's built-in "Any" profile on a fresh
// install.
const (
	defaultQualityProfileID int64 = 1
	defaultRootFolder             = "/movies"
)

// Client is a Radarr API client.
type Client struct {
	http   *httpclient.Client
	logger zerolog.Logger
}

// NewClient creates a new Radarr client.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.New(baseURL, apiKey, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("radarr: %w", err)
	}
	return &Client{http: hc, logger: logger}, nil
}

// TestConnection verifies the configured URL and API key against Radarr.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.http.Get(ctx, "/api/v3/system/status", nil); err != nil {
		return fmt.Errorf("failed to connect to radarr: %w", err)
	}
	return nil
}

// GetAllMovies retrieves the full movie catalog.
func (c *Client) GetAllMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.http.GetJSON(ctx, "/api/v3/movie", nil, &movies); err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}
	c.logger.Debug().Int("count", len(movies)).Msg("Retrieved movies from Radarr")
	return movies, nil
}

// HasMovie checks whether a movie with the given TMDB id exists, scanning a
// freshly fetched catalog. Callers doing many membership checks should fetch
// the catalog once and index it instead.
func (c *Client) HasMovie(ctx context.Context, tmdbID int64) (bool, error) {
	movies, err := c.GetAllMovies(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range movies {
		if m.TmdbID == tmdbID {
			return true, nil
		}
	}
	return false, nil
}

// LookupByTMDBID queries Radarr's TMDB lookup endpoint for the canonical
// movie document. Unlike Sonarr's term lookup this returns a single object.
// Returns nil when the lookup yields no usable result.
func (c *Client) LookupByTMDBID(ctx context.Context, tmdbID int64) (map[string]any, error) {
	params := url.Values{}
	params.Set("tmdbId", strconv.FormatInt(tmdbID, 10))

	var result map[string]any
	if err := c.http.GetJSON(ctx, "/api/v3/movie/lookup/tmdb", params, &result); err != nil {
		return nil, fmt.Errorf("movie lookup failed for tmdb %d: %w", tmdbID, err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}

// GetQualityProfiles retrieves the configured quality profiles.
func (c *Client) GetQualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.http.GetJSON(ctx, "/api/v3/qualityprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get quality profiles: %w", err)
	}
	return profiles, nil
}

// GetRootFolders retrieves the configured root folders.
func (c *Client) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.http.GetJSON(ctx, "/api/v3/rootfolder", nil, &folders); err != nil {
		return nil, fmt.Errorf("failed to get root folders: %w", err)
	}
	return folders, nil
}

// Add resolves canonical metadata for the movie and submits a create call
// with monitoring and an immediate search enabled. Radarr rejects unknown
// fields on create, so the payload is built from the required fields plus
// the optional ones it accepts, rather than echoing the whole lookup
// document back. All failures are converted to false with logged context.
func (c *Client) Add(ctx context.Context, tmdbID int64, opts AddOptions) bool {
	movie, err := c.LookupByTMDBID(ctx, tmdbID)
	if err != nil {
		c.logger.Error().Err(err).Int64("tmdb_id", tmdbID).Msg("Movie lookup failed")
		return false
	}
	if movie == nil {
		c.logger.Warn().Int64("tmdb_id", tmdbID).Msg("No movie info found for TMDB id")
		return false
	}

	payload := map[string]any{
		"title":            movie["title"],
		"year":             movie["year"],
		"tmdbId":           movie["tmdbId"],
		"qualityProfileId": c.resolveQualityProfile(ctx, opts.QualityProfileID),
		"rootFolderPath":   c.resolveRootFolder(ctx, opts.RootFolder),
		"monitored":        true,
		"addOptions":       map[string]any{"searchForMovie": true},
	}
	if images, ok := movie["images"]; ok {
		payload["images"] = images
	}
	if slug, ok := movie["titleSlug"]; ok {
		payload["titleSlug"] = slug
	}

	if _, err := c.http.Post(ctx, "/api/v3/movie", payload); err != nil {
		c.logAddFailure(err, tmdbID)
		return false
	}
	return true
}

// resolveQualityProfile applies the resolution policy: caller-supplied value,
// then the first configured profile, then the hardcoded default.
func (c *Client) resolveQualityProfile(ctx context.Context, callerID int64) int64 {
	if callerID != 0 {
		return callerID
	}
	profiles, err := c.GetQualityProfiles(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Could not list quality profiles, using default")
		return defaultQualityProfileID
	}
	if len(profiles) == 0 {
		return defaultQualityProfileID
	}
	return profiles[0].ID
}

// resolveRootFolder applies the same policy for the root folder path.
func (c *Client) resolveRootFolder(ctx context.Context, callerPath string) string {
	if callerPath != "" {
		return callerPath
	}
	folders, err := c.GetRootFolders(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Could not list root folders, using default")
		return defaultRootFolder
	}
	if len(folders) == 0 {
		return defaultRootFolder
	}
	return folders[0].Path
}

func (c *Client) logAddFailure(err error, tmdbID int64) {
	var reqErr *httpclient.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode != 0 {
		c.logger.Error().
			Int("status", reqErr.StatusCode).
			Str("body", reqErr.Body).
			Int64("tmdb_id", tmdbID).
			Msg("Failed to add movie")
		return
	}
	c.logger.Error().Err(err).Int64("tmdb_id", tmdbID).Msg("Failed to add movie")
}
