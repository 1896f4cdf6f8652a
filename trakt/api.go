package trakt

import (
	"context"
)

// ShowsAPI defines the show operations
type ShowsAPI interface {
	Summary(ctx context.Context, showID string) (*Response[ShowSummaryFull], error)
	People(ctx context.Context, showID string) (*Response[ShowPeople], error)
	Trending(ctx context.Context, opts ListOptions) (*Response[[]TrendingShow], error)
	Popular(ctx context.Context, opts ListOptions) (*Response[[]Show], error)
	Recommended(ctx context.Context, opts PeriodOptions) (*Response[[]RecommendedShow], error)
	Played(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedShow], error)
	Watched(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedShow], error)
	Collected(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedShow], error)
	Anticipated(ctx context.Context, opts ListOptions) (*Response[[]AnticipatedShow], error)
	BoxOffice(ctx context.Context) (*Response[[]BoxOfficeShow], error)
	Updates(ctx context.Context, opts UpdatesOptions) (*Response[[]UpdatedShow], error)
}

// MoviesAPI defines the movie operations
type MoviesAPI interface {
	Summary(ctx context.Context, movieID string) (*Response[MovieSummaryFull], error)
	People(ctx context.Context, movieID string) (*Response[MoviePeople], error)
	Trending(ctx context.Context, opts ListOptions) (*Response[[]TrendingMovie], error)
	Popular(ctx context.Context, opts ListOptions) (*Response[[]Movie], error)
	Recommended(ctx context.Context, opts PeriodOptions) (*Response[[]RecommendedMovie], error)
	Played(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedMovie], error)
	Watched(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedMovie], error)
	Collected(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedMovie], error)
	Anticipated(ctx context.Context, opts ListOptions) (*Response[[]AnticipatedMovie], error)
	BoxOffice(ctx context.Context) (*Response[[]BoxOfficeMovie], error)
	Updates(ctx context.Context, opts UpdatesOptions) (*Response[[]UpdatedMovie], error)
}

// UsersAPI defines the user operations
type UsersAPI interface {
	WatchedMovies(ctx context.Context, userID, accessToken string) (*Response[[]WatchedMovie], error)
	WatchedShows(ctx context.Context, userID, accessToken string) (*Response[[]WatchedShow], error)
}

var (
	_ ShowsAPI  = (*Shows)(nil)
	_ MoviesAPI = (*Movies)(nil)
	_ UsersAPI  = (*Users)(nil)
)
