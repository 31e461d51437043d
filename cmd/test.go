package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connections to Overseerr, Sonarr and Radarr",
	Long:  `Test the connection to each configured service and display basic catalog statistics.`,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fmt.Printf("Testing connection to Overseerr at %s...\n", cfg.Overseerr.URL)
	if err := overseerrClient.TestConnection(ctx); err != nil {
		return fmt.Errorf("overseerr connection failed: %w", err)
	}
	fmt.Println("✓ Overseerr connection successful!")

	fmt.Printf("\nTesting connection to Sonarr at %s...\n", cfg.Sonarr.URL)
	if err := sonarrClient.TestConnection(ctx); err != nil {
		return fmt.Errorf("sonarr connection failed: %w", err)
	}
	fmt.Println("✓ Sonarr connection successful!")

	fmt.Printf("\nTesting connection to Radarr at %s...\n", cfg.Radarr.URL)
	if err := radarrClient.TestConnection(ctx); err != nil {
		return fmt.Errorf("radarr connection failed: %w", err)
	}
	fmt.Println("✓ Radarr connection successful!")

	series, err := sonarrClient.GetAllSeries(ctx)
	if err != nil {
		return fmt.Errorf("failed to get series: %w", err)
	}
	movies, err := radarrClient.GetAllMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to get movies: %w", err)
	}

	fmt.Printf("\nCatalog statistics:\n")
	fmt.Printf("- Sonarr series: %d\n", len(series))
	fmt.Printf("- Radarr movies: %d\n", len(movies))

	return nil
}
