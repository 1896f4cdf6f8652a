package trakt

import "context"

const showsSegment = "shows"

// Shows is the shows API namespace
type Shows struct {
	config namespaceConfig
}

func newShows(parent namespaceConfig) *Shows {
	return &Shows{config: parent.scoped(showsSegment)}
}

// APIURL returns the namespace's base URL
func (s *Shows) APIURL() string {
	return s.config.apiURL
}

// Summary returns a single show's details
func (s *Shows) Summary(ctx context.Context, showID string) (*Response[ShowSummaryFull], error) {
	if err := checkRequiredArg(showID, "showId", ArgString); err != nil {
		return nil, err
	}

	return getMediaSummaryFull[ShowSummaryFull](ctx, s.config, showsSegment, showID)
}

// People returns all cast and crew for a show
func (s *Shows) People(ctx context.Context, showID string) (*Response[ShowPeople], error) {
	if err := checkRequiredArg(showID, "showId", ArgString); err != nil {
		return nil, err
	}

	return getMediaPeople[ShowPeople](ctx, s.config, showsSegment, showID)
}

// Trending returns all shows being watched right now
func (s *Shows) Trending(ctx context.Context, opts ListOptions) (*Response[[]TrendingShow], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getTrendingMedia[[]TrendingShow](ctx, s.config, showsSegment, opts)
}

// Popular returns the most popular shows
func (s *Shows) Popular(ctx context.Context, opts ListOptions) (*Response[[]Show], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getPopularMedia[[]Show](ctx, s.config, showsSegment, opts)
}

// Recommended returns the most recommended shows in the specified time period,
// defaulting to weekly. All stats are relative to the period.
func (s *Shows) Recommended(ctx context.Context, opts PeriodOptions) (*Response[[]RecommendedShow], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getRecommendedMedia[[]RecommendedShow](ctx, s.config, showsSegment, opts)
}

// Played returns the most played shows in the specified time period. A single
// user can watch multiple episodes multiple times.
func (s *Shows) Played(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedShow], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getPlayedMedia[[]PlayedWatchedCollectedShow](ctx, s.config, showsSegment, opts)
}

// Watched returns the most watched (unique users) shows in the specified time period
func (s *Shows) Watched(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedShow], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getWatchedMedia[[]PlayedWatchedCollectedShow](ctx, s.config, showsSegment, opts)
}

// Collected returns the most collected (unique users) shows in the specified time period
func (s *Shows) Collected(ctx context.Context, opts PeriodOptions) (*Response[[]PlayedWatchedCollectedShow], error) {
	if err := checkPeriodOptions(opts); err != nil {
		return nil, err
	}

	return getCollectedMedia[[]PlayedWatchedCollectedShow](ctx, s.config, showsSegment, opts)
}

// Anticipated returns the most anticipated shows based on the number of lists a show appears on
func (s *Shows) Anticipated(ctx context.Context, opts ListOptions) (*Response[[]AnticipatedShow], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getAnticipatedMedia[[]AnticipatedShow](ctx, s.config, showsSegment, opts)
}

// BoxOffice returns the top 10 grossing shows of last weekend
func (s *Shows) BoxOffice(ctx context.Context) (*Response[[]BoxOfficeShow], error) {
	return getBoxOfficeMedia[[]BoxOfficeShow](ctx, s.config, showsSegment)
}

// Updates returns all shows updated since the specified UTC date and time.
// Store Response.StartDate to continue from there next time. The start date is
// only accurate to the hour; see StartDateFrom.
func (s *Shows) Updates(ctx context.Context, opts UpdatesOptions) (*Response[[]UpdatedShow], error) {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return nil, err
	}

	return getUpdatesMedia[[]UpdatedShow](ctx, s.config, showsSegment, opts)
}

// checkPeriodOptions validates the arguments shared by the period listings
func checkPeriodOptions(opts PeriodOptions) error {
	if err := checkRequiredArg(opts.Pagination, "pagination", ArgObject); err != nil {
		return err
	}
	if opts.Period != "" {
		return checkRequiredArg(opts.Period, "period", ArgPeriod)
	}
	return nil
}
