package trakt

import (
	"net/url"
	"strconv"
	"time"
)

// Pagination selects a page of a listing endpoint. The API defaults to 10
// items per page when Limit is zero.
type Pagination struct {
	Page  int
	Limit int
}

// Filters are passed through to the API as query parameters, for example
// {"genres": "drama", "years": "2010-2020"}.
type Filters map[string]string

// Period is the time window of the "most X" listings
type Period string

// Periods accepted by the recommended, played, watched and collected listings
const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAll     Period = "all"
)

// Valid reports whether p is one of the periods the API accepts
func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodAll:
		return true
	default:
		return false
	}
}

// StartDate is the lower bound of an updates query, e.g. "2021-07-17T12:00:00Z".
// The API accepts dates at most 30 days in the past.
type StartDate string

// startDateLayout keeps only the hour; the API caches updates per hour.
const startDateLayout = "2006-01-02T15:00:00Z"

// StartDateFrom formats t in UTC with minutes and seconds dropped
func StartDateFrom(t time.Time) StartDate {
	return StartDate(t.UTC().Format(startDateLayout))
}

// ListOptions are the arguments of the paginated, filterable listings
type ListOptions struct {
	Pagination *Pagination
	Filters    Filters
}

// PeriodOptions are the arguments of the listings scoped to a time period.
// An empty Period leaves the API default (weekly).
type PeriodOptions struct {
	Pagination *Pagination
	Filters    Filters
	Period     Period
}

// UpdatesOptions are the arguments of the updates listings
type UpdatesOptions struct {
	Pagination *Pagination
	StartDate  StartDate
}

// queryParams collects the optional query parameters of a request
type queryParams struct {
	pagination *Pagination
	filters    Filters
	period     Period
	startDate  StartDate
	extended   string
}

// reservedParams are set from typed options only; Filters cannot override them
var reservedParams = map[string]bool{
	"page":       true,
	"limit":      true,
	"period":     true,
	"start_date": true,
	"extended":   true,
}

func (q queryParams) values() url.Values {
	params := url.Values{}

	for key, value := range q.filters {
		if reservedParams[key] {
			continue
		}
		params.Set(key, value)
	}
	if q.pagination != nil {
		if q.pagination.Page > 0 {
			params.Set("page", strconv.Itoa(q.pagination.Page))
		}
		if q.pagination.Limit > 0 {
			params.Set("limit", strconv.Itoa(q.pagination.Limit))
		}
	}
	if q.period != "" {
		params.Set("period", string(q.period))
	}
	if q.startDate != "" {
		params.Set("start_date", string(q.startDate))
	}
	if q.extended != "" {
		params.Set("extended", q.extended)
	}

	return params
}
