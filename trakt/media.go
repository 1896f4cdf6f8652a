package trakt

import (
	"context"
	"net/url"
)

// Request builders shared by the Shows and Movies namespaces. config carries
// the namespace URL; segment ("shows" or "movies") labels logs and metrics.

// getMediaSummaryFull gets a single show or movie with full details
func getMediaSummaryFull[T any](ctx context.Context, config namespaceConfig, segment, id string) (*Response[T], error) {
	return getJSON[T](ctx, config.transport, endpoint{
		namespace: segment,
		name:      "summary",
		url:       config.apiURL + "/" + url.PathEscape(id),
		query:     queryParams{extended: "full"},
	})
}

// getMediaPeople gets the cast and crew of a show or movie
func getMediaPeople[T any](ctx context.Context, config namespaceConfig, segment, id string) (*Response[T], error) {
	return getJSON[T](ctx, config.transport, endpoint{
		namespace: segment,
		name:      "people",
		url:       config.apiURL + "/" + url.PathEscape(id) + "/people",
	})
}

func getTrendingMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts ListOptions) (*Response[T], error) {
	return getListing[T](ctx, config, segment, "trending", opts)
}

func getPopularMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts ListOptions) (*Response[T], error) {
	return getListing[T](ctx, config, segment, "popular", opts)
}

func getAnticipatedMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts ListOptions) (*Response[T], error) {
	return getListing[T](ctx, config, segment, "anticipated", opts)
}

func getRecommendedMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts PeriodOptions) (*Response[T], error) {
	return getPeriodListing[T](ctx, config, segment, "recommended", opts)
}

func getPlayedMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts PeriodOptions) (*Response[T], error) {
	return getPeriodListing[T](ctx, config, segment, "played", opts)
}

func getWatchedMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts PeriodOptions) (*Response[T], error) {
	return getPeriodListing[T](ctx, config, segment, "watched", opts)
}

func getCollectedMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts PeriodOptions) (*Response[T], error) {
	return getPeriodListing[T](ctx, config, segment, "collected", opts)
}

// getBoxOfficeMedia gets last weekend's top 10 grossing titles. Not paginated.
func getBoxOfficeMedia[T any](ctx context.Context, config namespaceConfig, segment string) (*Response[T], error) {
	return getJSON[T](ctx, config.transport, endpoint{
		namespace: segment,
		name:      "boxoffice",
		url:       config.apiURL + "/boxoffice",
	})
}

// getUpdatesMedia gets titles updated since opts.StartDate. The API rejects
// start dates more than 30 days in the past; that is not checked here.
func getUpdatesMedia[T any](ctx context.Context, config namespaceConfig, segment string, opts UpdatesOptions) (*Response[T], error) {
	return getJSON[T](ctx, config.transport, endpoint{
		namespace: segment,
		name:      "updates",
		url:       config.apiURL + "/updates",
		query: queryParams{
			pagination: opts.Pagination,
			startDate:  opts.StartDate,
		},
	})
}

func getListing[T any](ctx context.Context, config namespaceConfig, segment, name string, opts ListOptions) (*Response[T], error) {
	return getJSON[T](ctx, config.transport, endpoint{
		namespace: segment,
		name:      name,
		url:       config.apiURL + "/" + name,
		query: queryParams{
			pagination: opts.Pagination,
			filters:    opts.Filters,
		},
	})
}

func getPeriodListing[T any](ctx context.Context, config namespaceConfig, segment, name string, opts PeriodOptions) (*Response[T], error) {
	return getJSON[T](ctx, config.transport, endpoint{
		namespace: segment,
		name:      name,
		url:       config.apiURL + "/" + name,
		query: queryParams{
			pagination: opts.Pagination,
			filters:    opts.Filters,
			period:     opts.Period,
		},
	})
}
