package sonarr

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/reconcilarr/reconcilarr/httpclient"
)

// Defaults used when the instance reports no quality profiles or root
// folders. Profile id 1 is Sonarr's built-in "Any" profile on a fresh
// install.
const (
	defaultQualityProfileID int64 = 1
	defaultRootFolder             = "/media"
)

// Client is a Sonarr API client.
type Client struct {
	http   *httpclient.Client
	logger zerolog.Logger
}

// NewClient creates a new Sonarr client.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.New(baseURL, apiKey, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("sonarr: %w", err)
	}
	return &Client{http: hc, logger: logger}, nil
}

// TestConnection verifies the configured URL and API key against Sonarr.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.http.Get(ctx, "/api/v3/system/status", nil); err != nil {
		return fmt.Errorf("failed to connect to sonarr: %w", err)
	}
	return nil
}

// GetAllSeries retrieves the full series catalog.
func (c *Client) GetAllSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.http.GetJSON(ctx, "/api/v3/series", nil, &series); err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}
	c.logger.Debug().Int("count", len(series)).Msg("Retrieved series from Sonarr")
	return series, nil
}

// HasSeries checks whether a series with the given TVDB id exists, scanning a
// freshly fetched catalog. Callers doing many membership checks should fetch
// the catalog once and index it instead.
func (c *Client) HasSeries(ctx context.Context, tvdbID int64) (bool, error) {
	series, err := c.GetAllSeries(ctx)
	if err != nil {
		return false, err
	}
	for _, s := range series {
		if s.TvdbID == tvdbID {
			return true, nil
		}
	}
	return false, nil
}

// LookupByTVDBID queries Sonarr's lookup endpoint for the canonical series
// document. The document is kept untyped: Add merges fields into it and
// submits it back, and Sonarr's lookup schema is wide and version-dependent.
// Returns nil when the lookup yields no result.
func (c *Client) LookupByTVDBID(ctx context.Context, tvdbID int64) (map[string]any, error) {
	params := url.Values{}
	params.Set("term", fmt.Sprintf("tvdb:%d", tvdbID))

	var results []map[string]any
	if err := c.http.GetJSON(ctx, "/api/v3/series/lookup", params, &results); err != nil {
		return nil, fmt.Errorf("series lookup failed for tvdb %d: %w", tvdbID, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
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

// Add resolves canonical metadata for the series and submits a create call
// with monitoring and an immediate episode search enabled. All failures are
// converted to false with logged context: the caller is processing a batch
// and one item must never abort it.
func (c *Client) Add(ctx context.Context, tvdbID int64, opts AddOptions) bool {
	series, err := c.LookupByTVDBID(ctx, tvdbID)
	if err != nil {
		c.logger.Error().Err(err).Int64("tvdb_id", tvdbID).Msg("Series lookup failed")
		return false
	}
	if series == nil {
		c.logger.Warn().Int64("tvdb_id", tvdbID).Msg("No series info found for TVDB id")
		return false
	}

	series["qualityProfileId"] = c.resolveQualityProfile(ctx, opts.QualityProfileID)
	series["rootFolderPath"] = c.resolveRootFolder(ctx, opts.RootFolder)
	series["monitored"] = true
	series["addOptions"] = map[string]any{"searchForMissingEpisodes": true}

	if _, err := c.http.Post(ctx, "/api/v3/series", series); err != nil {
		c.logAddFailure(err, tvdbID)
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

func (c *Client) logAddFailure(err error, tvdbID int64) {
	var reqErr *httpclient.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode != 0 {
		c.logger.Error().
			Int("status", reqErr.StatusCode).
			Str("body", reqErr.Body).
			Int64("tvdb_id", tvdbID).
			Msg("Failed to add series")
		return
	}
	c.logger.Error().Err(err).Int64("tvdb_id", tvdbID).Msg("Failed to add series")
}
