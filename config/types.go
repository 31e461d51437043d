package config

// Config represents the complete configuration structure
type Config struct {
	Overseerr OverseerrConfig `mapstructure:"overseerr"`
	Sonarr    ArrConfig       `mapstructure:"sonarr"`
	Radarr    ArrConfig       `mapstructure:"radarr"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// OverseerrConfig holds Overseerr API connection details
type OverseerrConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// ArrConfig holds connection details and add preferences for a Sonarr or
// Radarr instance. QualityProfileID and RootFolder are optional; when unset
// the client discovers them from the instance.
type ArrConfig struct {
	URL              string `mapstructure:"url"`
	APIKey           string `mapstructure:"api_key"`
	QualityProfileID int64  `mapstructure:"quality_profile_id"`
	RootFolder       string `mapstructure:"root_folder"`
}

// HTTPConfig tunes the shared HTTP transport
type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	MaxRetries     int `mapstructure:"max_retries"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
