package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reconcilarr/reconcilarr/filter"
	"github.com/reconcilarr/reconcilarr/overseerr"
	"github.com/reconcilarr/reconcilarr/reconcile"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report approved requests missing from Sonarr/Radarr",
	Long: `Check compares approved Overseerr requests against the Sonarr and Radarr
catalogs and reports the requests that never arrived downstream. Nothing is
modified.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&mediaKind, "type", "t", "", "limit to one media type (movie or tv)")
	checkCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := buildRunOptions(reconcile.ModeCheck)
	if err != nil {
		return err
	}

	result, err := service.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Println(reconcile.FormatReport(result, reconcile.ModeCheck))
	return nil
}

// buildRunOptions translates the shared command flags into run options
func buildRunOptions(mode reconcile.Mode) (reconcile.Options, error) {
	opts := reconcile.Options{Mode: mode}

	switch mediaKind {
	case "":
	case "movie":
		opts.MediaType = overseerr.MediaTypeMovie
	case "tv":
		opts.MediaType = overseerr.MediaTypeTV
	default:
		return opts, fmt.Errorf("invalid media type: %s (must be 'movie' or 'tv')", mediaKind)
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return opts, fmt.Errorf("invalid filter expression: %w", err)
		}
		opts.Filter = f.Func()
	}

	return opts, nil
}
