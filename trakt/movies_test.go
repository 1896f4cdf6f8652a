package trakt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovies_Summary(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/tron-legacy-2010", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("extended"))
		w.Write([]byte(`{
			"title": "TRON: Legacy",
			"year": 2010,
			"ids": {"trakt": 1, "slug": "tron-legacy-2010", "imdb": "tt1104001", "tmdb": 20526},
			"tagline": "The Game Has Changed.",
			"released": "2010-12-16",
			"runtime": 125,
			"certification": "PG",
			"rating": 8.0
		}`))
	})

	res, err := client.Movies.Summary(context.Background(), "tron-legacy-2010")
	require.NoError(t, err)
	assert.Equal(t, "TRON: Legacy", res.Data.Title)
	assert.Equal(t, "tt1104001", res.Data.IDs.IMDB)
	assert.Equal(t, "2010-12-16", res.Data.Released)
	assert.Equal(t, 125, res.Data.Runtime)
	assert.InDelta(t, 8.0, res.Data.Rating, 0.001)
}

func TestMovies_BoxOffice(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/boxoffice", r.URL.Path)
		w.Write([]byte(`[
			{"revenue": 48464322, "movie": {"title": "Frozen", "year": 2013, "ids": {"trakt": 1}}},
			{"revenue": 17732480, "movie": {"title": "Thor: The Dark World", "year": 2013, "ids": {"trakt": 2}}}
		]`))
	})

	res, err := client.Movies.BoxOffice(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, int64(48464322), res.Data[0].Revenue)
	assert.Equal(t, "Thor: The Dark World", res.Data[1].Movie.Title)
}

func TestMovies_ListingPaths(t *testing.T) {
	pagination := &Pagination{Page: 1, Limit: 10}

	tests := []struct {
		name string
		call func(ctx context.Context, m *Movies) error
		path string
	}{
		{"trending", func(ctx context.Context, m *Movies) error {
			_, err := m.Trending(ctx, ListOptions{Pagination: pagination})
			return err
		}, "/movies/trending"},
		{"popular", func(ctx context.Context, m *Movies) error {
			_, err := m.Popular(ctx, ListOptions{Pagination: pagination})
			return err
		}, "/movies/popular"},
		{"recommended", func(ctx context.Context, m *Movies) error {
			_, err := m.Recommended(ctx, PeriodOptions{Pagination: pagination})
			return err
		}, "/movies/recommended"},
		{"played", func(ctx context.Context, m *Movies) error {
			_, err := m.Played(ctx, PeriodOptions{Pagination: pagination})
			return err
		}, "/movies/played"},
		{"watched", func(ctx context.Context, m *Movies) error {
			_, err := m.Watched(ctx, PeriodOptions{Pagination: pagination})
			return err
		}, "/movies/watched"},
		{"collected", func(ctx context.Context, m *Movies) error {
			_, err := m.Collected(ctx, PeriodOptions{Pagination: pagination})
			return err
		}, "/movies/collected"},
		{"anticipated", func(ctx context.Context, m *Movies) error {
			_, err := m.Anticipated(ctx, ListOptions{Pagination: pagination})
			return err
		}, "/movies/anticipated"},
		{"updates", func(ctx context.Context, m *Movies) error {
			_, err := m.Updates(ctx, UpdatesOptions{Pagination: pagination})
			return err
		}, "/movies/updates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyDoer{}
			client := newSpyClient(t, spy)

			require.NoError(t, tt.call(context.Background(), client.Movies))
			require.Equal(t, 1, spy.calls())
			assert.Equal(t, tt.path, spy.requests[0].URL.Path)
			assert.Equal(t, "1", spy.requests[0].URL.Query().Get("page"))
			assert.Equal(t, "10", spy.requests[0].URL.Query().Get("limit"))
		})
	}
}

func TestMovies_MissingArguments(t *testing.T) {
	spy := &spyDoer{}
	client := newSpyClient(t, spy)
	ctx := context.Background()

	var argErr *InvalidArgumentError

	_, err := client.Movies.Summary(ctx, "")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "movieId", argErr.Param)

	_, err = client.Movies.People(ctx, "")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "movieId", argErr.Param)

	_, err = client.Movies.Trending(ctx, ListOptions{Filters: Filters{"genres": "action"}})
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "pagination", argErr.Param)

	_, err = client.Movies.Updates(ctx, UpdatesOptions{StartDate: "2021-07-17T12:00:00Z"})
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "pagination", argErr.Param)

	assert.Zero(t, spy.calls())
}
