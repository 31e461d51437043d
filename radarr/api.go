package radarr

import "context"

// API defines the interface for Radarr operations
type API interface {
	// TestConnection verifies the client can connect to Radarr
	TestConnection(ctx context.Context) error

	// GetAllMovies retrieves the full movie catalog
	GetAllMovies(ctx context.Context) ([]Movie, error)

	// HasMovie checks catalog membership by TMDB id
	HasMovie(ctx context.Context, tmdbID int64) (bool, error)

	// LookupByTMDBID resolves the canonical movie document, nil on a miss
	LookupByTMDBID(ctx context.Context, tmdbID int64) (map[string]any, error)

	// GetQualityProfiles retrieves the configured quality profiles
	GetQualityProfiles(ctx context.Context) ([]QualityProfile, error)

	// GetRootFolders retrieves the configured root folders
	GetRootFolders(ctx context.Context) ([]RootFolder, error)

	// Add submits a movie create call, reporting success as a boolean
	Add(ctx context.Context, tmdbID int64, opts AddOptions) bool
}
