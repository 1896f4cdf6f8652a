// Package filter narrows Trakt listing results with expr-lang expressions,
// e.g. `Year >= 2020 and Watchers > 100 and Title contains "Star"`.
package filter

import (
	"time"
)

// Item is the flattened view of a listing row that expressions see.
// Counters a listing does not report are zero.
type Item struct {
	Kind  string // "show" or "movie"
	Title string
	Year  int
	Slug  string
	IMDB  string
	TMDB  int64
	Trakt int64

	Watchers       int
	UserCount      int
	PlayCount      int
	WatcherCount   int
	CollectedCount int
	CollectorCount int
	ListCount      int
	Revenue        int64
	Plays          int

	UpdatedAt     time.Time
	LastWatchedAt time.Time
}

// Filter decides whether an item is kept
type Filter interface {
	// Evaluate reports whether the item matches
	Evaluate(item Item) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Apply returns the items matching f, in their original order
func Apply(f Filter, items []Item) ([]Item, error) {
	matches := make([]Item, 0, len(items))
	for _, item := range items {
		ok, err := f.Evaluate(item)
		if err != nil {
			return nil, &EvaluationError{
				Expression: f.Expression(),
				ItemTitle:  item.Title,
				Err:        err,
			}
		}
		if ok {
			matches = append(matches, item)
		}
	}
	return matches, nil
}
