package reconcile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/reconcilarr/reconcilarr/overseerr"
)

// catalogIndex is a per-run snapshot of one downstream catalog, keyed by
// external id. Checking membership against a snapshot instead of re-fetching
// the catalog per request turns the dominant cost of a run into two fetches.
// The snapshot can go stale relative to concurrent external changes, which is
// acceptable for a batch tool; successful sync-mode adds are folded back in
// so a repaired item is immediately considered present.
type catalogIndex struct {
	ids map[int64]struct{}
}

func newCatalogIndex(size int) *catalogIndex {
	return &catalogIndex{ids: make(map[int64]struct{}, size)}
}

func (x *catalogIndex) has(id int64) bool {
	_, ok := x.ids[id]
	return ok
}

func (x *catalogIndex) add(id int64) {
	x.ids[id] = struct{}{}
}

// buildSnapshots fetches the catalogs needed for this run. Only the catalogs
// the media-kind filter leaves reachable are fetched; both fetches run
// concurrently when both kinds are in play.
func (s *Service) buildSnapshots(ctx context.Context, mediaType overseerr.MediaType) (seriesIdx, movieIdx *catalogIndex, err error) {
	g, ctx := errgroup.WithContext(ctx)

	if mediaType != overseerr.MediaTypeMovie {
		g.Go(func() error {
			series, err := s.sonarr.GetAllSeries(ctx)
			if err != nil {
				return err
			}
			idx := newCatalogIndex(len(series))
			for _, sr := range series {
				idx.add(sr.TvdbID)
			}
			seriesIdx = idx
			return nil
		})
	}

	if mediaType != overseerr.MediaTypeTV {
		g.Go(func() error {
			movies, err := s.radarr.GetAllMovies(ctx)
			if err != nil {
				return err
			}
			idx := newCatalogIndex(len(movies))
			for _, m := range movies {
				idx.add(m.TmdbID)
			}
			movieIdx = idx
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return seriesIdx, movieIdx, nil
}
