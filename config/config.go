package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. Connection settings can also come
// from the environment (OVERSEERR_URL, OVERSEERR_API_KEY and the Sonarr and
// Radarr equivalents), which take precedence over the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".reconcilarr"))
		}

		// Check /etc
		v.AddConfigPath("/etc/reconcilarr/")
	}

	// Read config file. A missing file is fine when the environment
	// carries the connection settings.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Service defaults match the usual in-cluster addresses
	v.SetDefault("overseerr.url", "http://overseerr.media.svc.cluster.local:5055")
	v.SetDefault("sonarr.url", "http://sonarr.media.svc.cluster.local:8989")
	v.SetDefault("radarr.url", "http://radarr.media.svc.cluster.local:7878")

	// HTTP defaults
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.max_retries", 3)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps the flat environment variables onto config keys
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("overseerr.url", "OVERSEERR_URL")
	_ = v.BindEnv("overseerr.api_key", "OVERSEERR_API_KEY")
	_ = v.BindEnv("sonarr.url", "SONARR_URL")
	_ = v.BindEnv("sonarr.api_key", "SONARR_API_KEY")
	_ = v.BindEnv("radarr.url", "RADARR_URL")
	_ = v.BindEnv("radarr.api_key", "RADARR_API_KEY")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Overseerr.URL == "" {
		return fmt.Errorf("overseerr.url is required")
	}
	if cfg.Overseerr.APIKey == "" || cfg.Overseerr.APIKey == "your-api-key-here" {
		return fmt.Errorf("overseerr.api_key must be set to a valid API key")
	}

	if cfg.Sonarr.URL == "" {
		return fmt.Errorf("sonarr.url is required")
	}
	if cfg.Sonarr.APIKey == "" || cfg.Sonarr.APIKey == "your-api-key-here" {
		return fmt.Errorf("sonarr.api_key must be set to a valid API key")
	}

	if cfg.Radarr.URL == "" {
		return fmt.Errorf("radarr.url is required")
	}
	if cfg.Radarr.APIKey == "" || cfg.Radarr.APIKey == "your-api-key-here" {
		return fmt.Errorf("radarr.api_key must be set to a valid API key")
	}

	if cfg.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive")
	}
	if cfg.HTTP.MaxRetries < 0 {
		return fmt.Errorf("http.max_retries must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
