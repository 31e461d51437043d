package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reconcilarr/reconcilarr/reconcile"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Re-submit missing requests directly to Sonarr/Radarr",
	Long: `Sync finds approved Overseerr requests missing from the Sonarr and Radarr
catalogs and adds them directly to the responsible service, bypassing the
broker. Items are submitted as they are found; a failed submission is
reported and the run continues.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVarP(&mediaKind, "type", "t", "", "limit to one media type (movie or tv)")
	syncCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	syncCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")
}

func runSync(cmd *cobra.Command, args []string) error {
	opts, err := buildRunOptions(reconcile.ModeSync)
	if err != nil {
		return err
	}

	if !assumeYes {
		fmt.Printf("This will add missing items directly to Sonarr/Radarr at %s and %s.\n", cfg.Sonarr.URL, cfg.Radarr.URL)
		fmt.Printf("Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
		default:
			fmt.Println("Sync cancelled.")
			return nil
		}
	}

	result, err := service.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Println(reconcile.FormatReport(result, reconcile.ModeSync))
	return nil
}
