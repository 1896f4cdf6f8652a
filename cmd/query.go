package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/better-trakt/filter"
	"github.com/s0up4200/better-trakt/trakt"
)

// listingKind selects which query flags a listing command accepts
type listingKind int

const (
	listingPlain   listingKind = iota // page, limit, filters
	listingPeriod                     // plus --period
	listingUpdates                    // page, limit, --start-date
	listingBare                       // no query parameters
)

// listingQuery holds the flags of a single listing command
type listingQuery struct {
	kind      listingKind
	page      int
	limit     int
	period    string
	startDate string
	filters   []string
	where     string
	preset    string
}

func (q *listingQuery) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	if q.kind != listingBare {
		flags.IntVar(&q.page, "page", 1, "page number")
		flags.IntVar(&q.limit, "limit", 0, "results per page (default from output.limit)")
	}
	if q.kind == listingPlain || q.kind == listingPeriod {
		flags.StringArrayVar(&q.filters, "filter", nil, "Trakt filter as key=value, repeatable (e.g. genres=drama)")
	}
	if q.kind == listingPeriod {
		flags.StringVar(&q.period, "period", "", "time period: weekly, monthly, yearly or all")
	}
	if q.kind == listingUpdates {
		flags.StringVar(&q.startDate, "start-date", "", "only updates since this date (YYYY-MM-DD or RFC3339, server default when omitted)")
	}
	flags.StringVarP(&q.where, "where", "w", "", "filter expression applied to the results")
	flags.StringVarP(&q.preset, "preset", "p", "", "use a filter preset from config")
}

func (q *listingQuery) pagination() *trakt.Pagination {
	limit := q.limit
	if limit <= 0 {
		limit = cfg.Output.Limit
	}
	return &trakt.Pagination{Page: q.page, Limit: limit}
}

func (q *listingQuery) traktFilters() (trakt.Filters, error) {
	if len(q.filters) == 0 {
		return nil, nil
	}
	filters := make(trakt.Filters, len(q.filters))
	for _, kv := range q.filters {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", kv)
		}
		filters[key] = strings.TrimSpace(value)
	}
	return filters, nil
}

func (q *listingQuery) listOptions() (trakt.ListOptions, error) {
	filters, err := q.traktFilters()
	if err != nil {
		return trakt.ListOptions{}, err
	}
	return trakt.ListOptions{Pagination: q.pagination(), Filters: filters}, nil
}

func (q *listingQuery) periodOptions() (trakt.PeriodOptions, error) {
	filters, err := q.traktFilters()
	if err != nil {
		return trakt.PeriodOptions{}, err
	}
	return trakt.PeriodOptions{
		Pagination: q.pagination(),
		Filters:    filters,
		Period:     trakt.Period(q.period),
	}, nil
}

func (q *listingQuery) updatesOptions() (trakt.UpdatesOptions, error) {
	startDate, err := parseStartDate(q.startDate)
	if err != nil {
		return trakt.UpdatesOptions{}, err
	}
	return trakt.UpdatesOptions{Pagination: q.pagination(), StartDate: startDate}, nil
}

// parseStartDate accepts a date or an RFC3339 timestamp. Empty means "let the API decide".
func parseStartDate(value string) (trakt.StartDate, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return trakt.StartDateFrom(t), nil
		}
	}
	return "", fmt.Errorf("invalid start date %q: expected YYYY-MM-DD or RFC3339", value)
}

// expression resolves --where and --preset; --where wins
func (q *listingQuery) expression() (string, error) {
	if q.where != "" {
		return q.where, nil
	}
	if q.preset != "" {
		if expr, ok := cfg.Filters[q.preset]; ok {
			return expr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", q.preset)
	}
	return "", nil
}

// compileFilter returns nil when no expression was given
func (q *listingQuery) compileFilter() (filter.Filter, error) {
	expr, err := q.expression()
	if err != nil || expr == "" {
		return nil, err
	}
	f, err := filter.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}
