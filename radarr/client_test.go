package radarr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconcilarr/reconcilarr/httpclient"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(serverURL, "test-key", zerolog.Nop(), httpclient.WithMaxRetries(0))
	require.NoError(t, err)
	return client
}

func TestGetAllMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/movie", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "title": "The Matrix", "year": 1999, "tmdbId": 603},
			{"id": 2, "title": "Heat", "year": 1995, "tmdbId": 949},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	movies, err := client.GetAllMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, int64(603), movies[0].TmdbID)
	assert.Equal(t, 1999, movies[0].Year)
}

func TestHasMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "title": "The Matrix", "year": 1999, "tmdbId": 603},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	found, err := client.HasMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = client.HasMovie(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLookupByTMDBID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v3/movie/lookup/tmdb", r.URL.Path)
			assert.Equal(t, "603", r.URL.Query().Get("tmdbId"))
			json.NewEncoder(w).Encode(map[string]any{
				"title": "The Matrix", "year": 1999, "tmdbId": 603, "titleSlug": "the-matrix-603",
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		movie, err := client.LookupByTMDBID(context.Background(), 603)
		require.NoError(t, err)
		require.NotNil(t, movie)
		assert.Equal(t, "The Matrix", movie["title"])
	})

	t.Run("empty document is a miss", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		movie, err := client.LookupByTMDBID(context.Background(), 999)
		require.NoError(t, err)
		assert.Nil(t, movie)
	})
}

func TestAdd(t *testing.T) {
	type serverState struct {
		profiles []map[string]any
		folders  []map[string]any
		added    map[string]any
		addCode  int
	}

	newServer := func(t *testing.T, state *serverState) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/api/v3/movie/lookup/tmdb":
				json.NewEncoder(w).Encode(map[string]any{
					"title": "The Matrix", "year": 1999, "tmdbId": 603,
					"titleSlug": "the-matrix-603",
					"images":    []map[string]any{{"coverType": "poster"}},
					"overview":  "not part of the create payload",
				})
			case r.URL.Path == "/api/v3/qualityprofile":
				json.NewEncoder(w).Encode(state.profiles)
			case r.URL.Path == "/api/v3/rootfolder":
				json.NewEncoder(w).Encode(state.folders)
			case r.URL.Path == "/api/v3/movie" && r.Method == http.MethodPost:
				if state.addCode != 0 {
					http.Error(w, "add rejected", state.addCode)
					return
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&state.added))
				json.NewEncoder(w).Encode(map[string]any{"id": 10})
			default:
				http.NotFound(w, r)
			}
		}))
	}

	t.Run("payload built from lookup with discovered settings", func(t *testing.T) {
		state := &serverState{
			profiles: []map[string]any{{"id": 4, "name": "HD-1080p"}},
			folders:  []map[string]any{{"id": 1, "path": "/data/movies"}},
		}
		server := newServer(t, state)
		defer server.Close()

		client := newTestClient(t, server.URL)
		require.True(t, client.Add(context.Background(), 603, AddOptions{}))

		assert.Equal(t, "The Matrix", state.added["title"])
		assert.Equal(t, float64(603), state.added["tmdbId"])
		assert.Equal(t, float64(4), state.added["qualityProfileId"])
		assert.Equal(t, "/data/movies", state.added["rootFolderPath"])
		assert.Equal(t, true, state.added["monitored"])
		assert.Equal(t, map[string]any{"searchForMovie": true}, state.added["addOptions"])
		assert.Equal(t, "the-matrix-603", state.added["titleSlug"])
		assert.NotNil(t, state.added["images"])
		// Only the accepted fields go into the create call.
		assert.NotContains(t, state.added, "overview")
	})

	t.Run("empty lists fall back to hardcoded defaults", func(t *testing.T) {
		state := &serverState{profiles: []map[string]any{}, folders: []map[string]any{}}
		server := newServer(t, state)
		defer server.Close()

		client := newTestClient(t, server.URL)
		require.True(t, client.Add(context.Background(), 603, AddOptions{}))

		assert.Equal(t, float64(defaultQualityProfileID), state.added["qualityProfileId"])
		assert.Equal(t, defaultRootFolder, state.added["rootFolderPath"])
	})

	t.Run("caller overrides win", func(t *testing.T) {
		state := &serverState{
			profiles: []map[string]any{{"id": 4, "name": "HD-1080p"}},
			folders:  []map[string]any{{"id": 1, "path": "/data/movies"}},
		}
		server := newServer(t, state)
		defer server.Close()

		client := newTestClient(t, server.URL)
		opts := AddOptions{QualityProfileID: 8, RootFolder: "/archive/movies"}
		require.True(t, client.Add(context.Background(), 603, opts))

		assert.Equal(t, float64(8), state.added["qualityProfileId"])
		assert.Equal(t, "/archive/movies", state.added["rootFolderPath"])
	})

	t.Run("lookup failure becomes false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such movie", http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		assert.False(t, client.Add(context.Background(), 999, AddOptions{}))
	})

	t.Run("rejected create becomes false", func(t *testing.T) {
		state := &serverState{
			profiles: []map[string]any{{"id": 4, "name": "HD-1080p"}},
			folders:  []map[string]any{{"id": 1, "path": "/data/movies"}},
			addCode:  http.StatusBadRequest,
		}
		server := newServer(t, state)
		defer server.Close()

		client := newTestClient(t, server.URL)
		assert.False(t, client.Add(context.Background(), 603, AddOptions{}))
	})
}
