package trakt

import "context"

const moviesSegment = "movies"

// Movies is the movies API namespace
type Movies struct {
	config namespaceConfig
}

func newMovies(parent namespaceConfig) *Movies {
	return &Movies{config: parent.scoped(moviesSegment)}
}

// APIURL returns the namespace's base URL
func (m *Movies) APIURL() string {
	return m.config.apiURL
}

// Summary returns a single movie's details
func (m *Movies) Summary(ctx context.Context, movieID string) (*Response[MovieSummaryFull], error) {
	if err := checkRequiredArg(movieID, "movieId", ArgString); err != nil {
		return nil, err
	}

	return getMediaSummaryFull[MovieSummaryFull](ctx, m.config, moviesSegment, movieID)
}

// People returns all cast and crew for a movie
func (m *Movies) People(ctx context.Context, movieID string) (*Response[MoviePeople], error) {
	if err := checkRequiredArg(movieID, "movieId", ArgString); err != nil {
		return nil, err
	}

	return getMediaPeople[MoviePeople](ctx, m.config, moviesSegment, movieID)
}

// Trending returns all movies being watched right now
func (m *Movies) Trending(ctx context.Context, opts ListOptions) (*Response[[]TrendingMovie], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getTrendingMedia[[]TrendingMovie](ctx, m.config, moviesSegment, opts)
}

// Popular returns the most popular movies
func (m *Movies) Popular(ctx context.Context, opts ListOptions) (*Response[[]Movie], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getPopularMedia[[]Movie](ctx, m.config, moviesSegment, opts)
}

// Recommended returns the most recommended movies in the specified time period, defaulting to weekly
func (m *Movies) Recommended(ctx context.Context, opts PeriodOptions) (*Response[[]RecommendedMovie], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getRecommendedMedia[[]RecommendedMovie](ctx, m.config, moviesSegment, opts)
}

// Played returns the most played movies in the specified time period
func (m *Movies) Played(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedMovie], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getPlayedMedia[[]PlayedWatchedCollectedMovie](ctx, m.config, moviesSegment, opts)
}

// Watched returns the most watched (unique users) movies in the specified time period
func (m *Movies) Watched(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedMovie], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getWatchedMedia[[]PlayedWatchedCollectedMovie](ctx, m.config, moviesSegment, opts)
}

// Collected returns the most collected (unique users) movies in the specified time period
func (m *Movies) Collected(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedMovie], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getCollectedMedia[[]PlayedWatchedCollectedMovie](ctx, m.config, moviesSegment, opts)
}

// Anticipated returns the most anticipated movies based on the number of lists a movie appears on
func (m *Movies) Anticipated(ctx context.Context, opts ListOptions) (*Response[[]AnticipatedMovie], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getAnticipatedMedia[[]AnticipatedMovie](ctx, m.config, moviesSegment, opts)
}

// BoxOffice returns the top 10 grossing movies in the U.S. box office last weekend.
// Updated every Monday morning.
func (m *Movies) BoxOffice(ctx context.Context) (*Response[[]BoxOfficeMovie], error) {
	return getBoxOfficeMedia[[]BoxOfficeMovie](ctx, m.config, moviesSegment)
}

// Updates returns all movies updated since the specified UTC date and time
func (m *Movies) Updates(ctx context.Context, opts UpdatesOptions) (*Response[[]UpdatedMovie], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getUpdatesMedia[[]UpdatedMovie](ctx, m.config, moviesSegment, opts)
}
