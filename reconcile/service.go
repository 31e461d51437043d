package reconcile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reconcilarr/reconcilarr/overseerr"
	"github.com/reconcilarr/reconcilarr/radarr"
	"github.com/reconcilarr/reconcilarr/sonarr"
)

// defaultProgressEvery is how many processed requests sit between progress
// log lines. Long runs against large broker catalogs need liveness feedback.
const defaultProgressEvery = 20

// Service reconciles approved broker requests against the downstream
// catalogs. One run is fully sequential; the accumulating result is owned by
// the run and never shared.
type Service struct {
	broker overseerr.API
	sonarr sonarr.API
	radarr radarr.API
	logger zerolog.Logger

	sonarrAdd sonarr.AddOptions
	radarrAdd radarr.AddOptions

	progressEvery int
}

// NewService creates a new reconciliation service.
func NewService(broker overseerr.API, sonarrClient sonarr.API, radarrClient radarr.API, logger zerolog.Logger) *Service {
	return &Service{
		broker:        broker,
		sonarr:        sonarrClient,
		radarr:        radarrClient,
		logger:        logger,
		progressEvery: defaultProgressEvery,
	}
}

// SetSonarrDefaults sets the add preferences used when repairing series.
func (s *Service) SetSonarrDefaults(opts sonarr.AddOptions) {
	s.sonarrAdd = opts
}

// SetRadarrDefaults sets the add preferences used when repairing movies.
func (s *Service) SetRadarrDefaults(opts radarr.AddOptions) {
	s.radarrAdd = opts
}

// Run executes one reconciliation pass. Requests are processed in the
// broker's fetch order. Missing items are reported in check mode and
// re-submitted immediately in sync mode; a failed re-submission stays in the
// report. Individual item failures never abort the run.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	s.logger.Info().Msg("Fetching approved requests from Overseerr")

	requests, err := s.broker.GetRequests(ctx, overseerr.RequestStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved requests: %w", err)
	}

	if opts.MediaType != "" {
		filtered := make([]overseerr.Request, 0, len(requests))
		for _, req := range requests {
			if req.MediaType == opts.MediaType {
				filtered = append(filtered, req)
			}
		}
		requests = filtered
	}

	if opts.Filter != nil {
		filtered := make([]overseerr.Request, 0, len(requests))
		for _, req := range requests {
			if opts.Filter(req) {
				filtered = append(filtered, req)
			}
		}
		requests = filtered
	}

	s.logger.Info().
		Int("count", len(requests)).
		Str("mode", opts.Mode.String()).
		Msg("Checking requests against Sonarr/Radarr")

	seriesIdx, movieIdx, err := s.buildSnapshots(ctx, opts.MediaType)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot downstream catalogs: %w", err)
	}

	result := &Result{}
	result.Summary.Considered = len(requests)

	for i, req := range requests {
		if n := i + 1; n%s.progressEvery == 0 {
			event := s.logger.Info().Int("processed", n).Int("total", len(requests))
			if opts.Mode == ModeSync {
				event = event.
					Int("repaired", result.Summary.Repaired).
					Int("failed", result.Summary.RepairFailed)
			}
			event.Msg("Progress")
		}

		switch req.MediaType {
		case overseerr.MediaTypeMovie:
			s.reconcileMovie(ctx, req, movieIdx, opts.Mode, result)
		case overseerr.MediaTypeTV:
			s.reconcileSeries(ctx, req, seriesIdx, opts.Mode, result)
		}
	}

	event := s.logger.Info().
		Int("considered", result.Summary.Considered).
		Int("missing", result.Summary.Missing).
		Int("unverifiable", result.Summary.Unverifiable)
	if opts.Mode == ModeSync {
		event = event.
			Int("repaired", result.Summary.Repaired).
			Int("failed", result.Summary.RepairFailed)
	}
	event.Msg("Reconciliation complete")

	return result, nil
}

func (s *Service) reconcileMovie(ctx context.Context, req overseerr.Request, idx *catalogIndex, mode Mode, result *Result) {
	if idx.has(req.TmdbID) {
		return
	}

	title := s.broker.GetMediaTitle(ctx, overseerr.MediaTypeMovie, req.TmdbID, req.Title)

	if mode == ModeSync {
		s.logger.Info().Str("title", title).Int64("tmdb_id", req.TmdbID).Msg("Adding missing movie")
		if s.radarr.Add(ctx, req.TmdbID, s.radarrAdd) {
			result.Summary.Repaired++
			idx.add(req.TmdbID)
			return
		}
		result.Summary.RepairFailed++
		result.Summary.Missing++
		result.Items = append(result.Items, Item{Request: req, Title: title, Outcome: OutcomeRepairFailed})
		return
	}

	result.Summary.Missing++
	result.Items = append(result.Items, Item{Request: req, Title: title, Outcome: OutcomeMissing})
	s.logger.Warn().
		Str("title", title).
		Int64("tmdb_id", req.TmdbID).
		Str("requested", req.RequestedDate()).
		Msg("Movie missing from Radarr")
}

func (s *Service) reconcileSeries(ctx context.Context, req overseerr.Request, idx *catalogIndex, mode Mode, result *Result) {
	if !req.HasTVDBID() {
		// Nothing to submit in sync mode, so only check mode reports this.
		if mode == ModeCheck {
			result.Summary.Unverifiable++
			result.Items = append(result.Items, Item{Request: req, Title: req.Title, Outcome: OutcomeUnverifiable})
			s.logger.Warn().Str("title", req.Title).Msg("No TVDB id, cannot verify series")
		}
		return
	}

	if idx.has(req.TvdbID) {
		return
	}

	title := s.broker.GetMediaTitle(ctx, overseerr.MediaTypeTV, req.TvdbID, req.Title)

	if mode == ModeSync {
		s.logger.Info().Str("title", title).Int64("tvdb_id", req.TvdbID).Msg("Adding missing series")
		if s.sonarr.Add(ctx, req.TvdbID, s.sonarrAdd) {
			result.Summary.Repaired++
			idx.add(req.TvdbID)
			return
		}
		result.Summary.RepairFailed++
		result.Summary.Missing++
		result.Items = append(result.Items, Item{Request: req, Title: title, Outcome: OutcomeRepairFailed})
		return
	}

	result.Summary.Missing++
	result.Items = append(result.Items, Item{Request: req, Title: title, Outcome: OutcomeMissing})
	s.logger.Warn().
		Str("title", title).
		Int64("tvdb_id", req.TvdbID).
		Str("requested", req.RequestedDate()).
		Msg("Series missing from Sonarr")
}
