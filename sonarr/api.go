package sonarr

import "context"

// API defines the interface for Sonarr operations
type API interface {
	// TestConnection verifies the client can connect to Sonarr
	TestConnection(ctx context.Context) error

	// GetAllSeries retrieves the full series catalog
	GetAllSeries(ctx context.Context) ([]Series, error)

	// HasSeries checks catalog membership by TVDB id
	HasSeries(ctx context.Context, tvdbID int64) (bool, error)

	// LookupByTVDBID resolves the canonical series document, nil on a miss
	LookupByTVDBID(ctx context.Context, tvdbID int64) (map[string]any, error)

	// GetQualityProfiles retrieves the configured quality profiles
	GetQualityProfiles(ctx context.Context) ([]QualityProfile, error)

	// GetRootFolders retrieves the configured root folders
	GetRootFolders(ctx context.Context) ([]RootFolder, error)

	// Add submits a series create call, reporting success as a boolean
	Add(ctx context.Context, tvdbID int64, opts AddOptions) bool
}
