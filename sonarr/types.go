package sonarr

// Series is a catalog entry, reduced to the fields reconciliation needs.
type Series struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	TvdbID int64  `json:"tvdbId"`
}

// QualityProfile is a Sonarr quality profile.
type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RootFolder is a Sonarr root folder.
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
