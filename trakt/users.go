package trakt

import (
	"context"
	"net/url"
)

const usersSegment = "users"

// Users is the users API namespace
type Users struct {
	config namespaceConfig
}

func newUsers(parent namespaceConfig) *Users {
	return &Users{config: parent.scoped(usersSegment)}
}

// APIURL returns the namespace's base URL
func (u *Users) APIURL() string {
	return u.config.apiURL
}

// WatchedMovies gets a user's movie watch history. accessToken is the user's
// OAuth access token and is only needed for private profiles.
func (u *Users) WatchedMovies(ctx context.Context, userID, accessToken string) (*Response[[]WatchedMovie], error) {
	if err := checkRequiredArg(userID, "userId", ArgString); err != nil {
		return nil, err
	}

	return getWatchedMovies(ctx, u.config, userID, accessToken)
}

// WatchedShows gets a user's show watch history. accessToken is the user's
// OAuth access token and is only needed for private profiles.
func (u *Users) WatchedShows(ctx context.Context, userID, accessToken string) (*Response[[]WatchedShow], error) {
	if err := checkRequiredArg(userID, "userId", ArgString); err != nil {
		return nil, err
	}

	return getWatchedShows(ctx, u.config, userID, accessToken)
}

func getWatchedMovies(ctx context.Context, config namespaceConfig, userID, accessToken string) (*Response[[]WatchedMovie], error) {
	return getJSON[[]WatchedMovie](ctx, config.transport, endpoint{
		namespace:   usersSegment,
		name:        "watched_movies",
		url:         config.apiURL + "/" + url.PathEscape(userID) + "/watched/movies",
		accessToken: accessToken,
	})
}

func getWatchedShows(ctx context.Context, config namespaceConfig, userID, accessToken string) (*Response[[]WatchedShow], error) {
	return getJSON[[]WatchedShow](ctx, config.transport, endpoint{
		namespace:   usersSegment,
		name:        "watched_shows",
		url:         config.apiURL + "/" + url.PathEscape(userID) + "/watched/shows",
		accessToken: accessToken,
	})
}
