package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reconcilarr/reconcilarr/config"
	"github.com/reconcilarr/reconcilarr/httpclient"
	"github.com/reconcilarr/reconcilarr/overseerr"
	"github.com/reconcilarr/reconcilarr/radarr"
	"github.com/reconcilarr/reconcilarr/reconcile"
	"github.com/reconcilarr/reconcilarr/sonarr"
)

var (
	cfgFile         string
	cfg             *config.Config
	logger          zerolog.Logger
	overseerrClient *overseerr.Client
	sonarrClient    *sonarr.Client
	radarrClient    *radarr.Client
	service         *reconcile.Service

	// Command flags
	mediaKind  string
	filterExpr string
	debug      bool
	assumeYes  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reconcilarr",
	Short: "Reconcile approved Overseerr requests against Sonarr and Radarr",
	Long: `reconcilarr cross-references approved Overseerr requests with the Sonarr
and Radarr catalogs and finds requests the broker considers satisfied but
which never reached the downstream service. Check mode reports them, sync
mode re-submits them directly.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return fmt.Errorf("a subcommand is required")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Commands that never talk to the services skip client setup.
	switch cmd.Name() {
	case "reconcilarr", "version", "self-update", "help", "completion":
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if debug {
		cfg.Logging.Level = "debug"
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	httpOpts := []httpclient.Option{
		httpclient.WithTimeout(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second),
		httpclient.WithMaxRetries(cfg.HTTP.MaxRetries),
	}

	// Create Overseerr client
	overseerrClient, err = overseerr.NewClient(cfg.Overseerr.URL, cfg.Overseerr.APIKey, logger,
		overseerr.WithHTTPOptions(httpOpts...))
	if err != nil {
		return fmt.Errorf("failed to create Overseerr client: %w", err)
	}

	// Create Sonarr client
	sonarrClient, err = sonarr.NewClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey, logger, httpOpts...)
	if err != nil {
		return fmt.Errorf("failed to create Sonarr client: %w", err)
	}

	// Create Radarr client
	radarrClient, err = radarr.NewClient(cfg.Radarr.URL, cfg.Radarr.APIKey, logger, httpOpts...)
	if err != nil {
		return fmt.Errorf("failed to create Radarr client: %w", err)
	}

	service = reconcile.NewService(overseerrClient, sonarrClient, radarrClient, logger)
	service.SetSonarrDefaults(sonarr.AddOptions{
		QualityProfileID: cfg.Sonarr.QualityProfileID,
		RootFolder:       cfg.Sonarr.RootFolder,
	})
	service.SetRadarrDefaults(radarr.AddOptions{
		QualityProfileID: cfg.Radarr.QualityProfileID,
		RootFolder:       cfg.Radarr.RootFolder,
	})

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only on a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
