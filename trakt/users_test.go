package trakt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_WatchedMovies(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/sean/watched/movies", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "abc", r.Header.Get("trakt-api-key"))
		w.Write([]byte(`[{
			"plays": 4,
			"last_watched_at": "2014-10-11T17:00:54.000Z",
			"last_updated_at": "2014-10-11T17:00:54.000Z",
			"movie": {"title": "Batman Begins", "year": 2005, "ids": {"trakt": 6, "slug": "batman-begins-2005"}}
		}]`))
	})

	res, err := client.Users.WatchedMovies(context.Background(), "sean", "token-123")
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, 4, res.Data[0].Plays)
	assert.Equal(t, "Batman Begins", res.Data[0].Movie.Title)
	assert.Equal(t, 2014, res.Data[0].LastWatchedAt.Year())
}

func TestUsers_WatchedShows(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/sean/watched/shows", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{
			"plays": 56,
			"last_watched_at": "2014-10-11T17:00:54.000Z",
			"last_updated_at": "2014-10-11T17:00:54.000Z",
			"reset_at": null,
			"show": {"title": "Breaking Bad", "year": 2008, "ids": {"trakt": 1}},
			"seasons": [
				{"number": 1, "episodes": [{"number": 1, "plays": 1, "last_watched_at": "2014-10-11T17:00:54.000Z"}, {"number": 2, "plays": 1, "last_watched_at": "2014-10-11T17:00:54.000Z"}]},
				{"number": 2, "episodes": [{"number": 1, "plays": 1, "last_watched_at": "2014-10-11T17:00:54.000Z"}]}
			]
		}]`))
	})

	res, err := client.Users.WatchedShows(context.Background(), "sean", "")
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	show := res.Data[0]
	assert.Equal(t, "Breaking Bad", show.Show.Title)
	assert.Nil(t, show.ResetAt)
	assert.Len(t, show.Seasons, 2)
	assert.Equal(t, 3, show.EpisodeCount())
}

func TestUsers_MissingUserID(t *testing.T) {
	spy := &spyDoer{}
	client := newSpyClient(t, spy)
	ctx := context.Background()

	var argErr *InvalidArgumentError

	_, err := client.Users.WatchedMovies(ctx, "", "token")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "userId", argErr.Param)
	assert.Equal(t, ArgString, argErr.Kind)

	_, err = client.Users.WatchedShows(ctx, "", "token")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "userId", argErr.Param)

	assert.Zero(t, spy.calls())
}

func TestUsers_Unauthorized(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Users.WatchedMovies(context.Background(), "private-user", "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.False(t, apiErr.IsNotFound())
}
