package reconcile

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/reconcilarr/reconcilarr/overseerr"
)

// FormatReport renders the run result for console output: a table of
// reportable items followed by the run summary.
func FormatReport(result *Result, mode Mode) string {
	var b strings.Builder

	if len(result.Items) > 0 {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Title", "Type", "External ID", "Outcome", "Requested", "Requested By"})
		for _, item := range result.Items {
			t.AppendRow(table.Row{
				item.Request.ID,
				item.Title,
				item.Request.MediaType,
				formatExternalID(item.Request),
				item.Outcome.String(),
				item.Request.RequestedDate(),
				item.Request.RequestedBy,
			})
		}
		b.WriteString(t.Render())
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Considered:   %d\n", result.Summary.Considered))
	b.WriteString(fmt.Sprintf("Missing:      %d\n", result.Summary.Missing))
	b.WriteString(fmt.Sprintf("Unverifiable: %d\n", result.Summary.Unverifiable))
	if mode == ModeSync {
		b.WriteString(fmt.Sprintf("Repaired:     %d\n", result.Summary.Repaired))
		b.WriteString(fmt.Sprintf("Failed:       %d\n", result.Summary.RepairFailed))
	}

	return b.String()
}

// formatExternalID renders the id used for the downstream check: TMDB for
// movies, TVDB for series, "-" when a series has none.
func formatExternalID(req overseerr.Request) string {
	if req.MediaType.IsMovie() {
		return fmt.Sprintf("tmdb:%d", req.TmdbID)
	}
	if !req.HasTVDBID() {
		return "-"
	}
	return fmt.Sprintf("tvdb:%d", req.TvdbID)
}
