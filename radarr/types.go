package radarr

// Movie is a catalog entry, reduced to the fields reconciliation needs.
type Movie struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	TmdbID int64  `json:"tmdbId"`
}

// QualityProfile is a Radarr quality profile.
type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RootFolder is a Radarr root folder.
type RootFolder struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
}

// AddOptions carries caller preferences for Add. Zero values mean "discover":
// the first configured quality profile / root folder is used, with a
// hardcoded default if the instance reports none.
type AddOptions struct {
	QualityProfileID int64
	RootFolder       string
}
