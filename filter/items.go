package filter

import (
	"github.com/s0up4200/better-trakt/trakt"
)

// Item kinds
const (
	KindShow  = "show"
	KindMovie = "movie"
)

func fromShow(s trakt.Show) Item {
	return Item{
		Kind:  KindShow,
		Title: s.Title,
		Year:  s.Year,
		Slug:  s.IDs.Slug,
		IMDB:  s.IDs.IMDB,
		TMDB:  s.IDs.TMDB,
		Trakt: s.IDs.Trakt,
	}
}

func fromMovie(m trakt.Movie) Item {
	return Item{
		Kind:  KindMovie,
		Title: m.Title,
		Year:  m.Year,
		Slug:  m.IDs.Slug,
		IMDB:  m.IDs.IMDB,
		TMDB:  m.IDs.TMDB,
		Trakt: m.IDs.Trakt,
	}
}

func mapItems[T any](rows []T, fn func(T) Item) []Item {
	items := make([]Item, len(rows))
	for i, row := range rows {
		items[i] = fn(row)
	}
	return items
}

// ItemsFrom flattens the data of a listing response. It returns false for
// types that are not listings, e.g. summaries and people.
func ItemsFrom(data any) ([]Item, bool) {
	switch rows := data.(type) {
	case []trakt.Show:
		return mapItems(rows, fromShow), true
	case []trakt.Movie:
		return mapItems(rows, fromMovie), true
	case []trakt.TrendingShow:
		return mapItems(rows, func(r trakt.TrendingShow) Item {
			item := fromShow(r.Show)
			item.Watchers = r.Watchers
			return item
		}), true
	case []trakt.TrendingMovie:
		return mapItems(rows, func(r trakt.TrendingMovie) Item {
			item := fromMovie(r.Movie)
			item.Watchers = r.Watchers
			return item
		}), true
	case []trakt.RecommendedShow:
		return mapItems(rows, func(r trakt.RecommendedShow) Item {
			item := fromShow(r.Show)
			item.UserCount = r.UserCount
			return item
		}), true
	case []trakt.RecommendedMovie:
		return mapItems(rows, func(r trakt.RecommendedMovie) Item {
			item := fromMovie(r.Movie)
			item.UserCount = r.UserCount
			return item
		}), true
	case []trakt.PlayedWatchedCollectedShow:
		return mapItems(rows, func(r trakt.PlayedWatchedCollectedShow) Item {
			item := fromShow(r.Show)
			item.WatcherCount = r.WatcherCount
			item.PlayCount = r.PlayCount
			item.CollectedCount = r.CollectedCount
			item.CollectorCount = r.CollectorCount
			return item
		}), true
	case []trakt.PlayedWatchedCollectedMovie:
		return mapItems(rows, func(r trakt.PlayedWatchedCollectedMovie) Item {
			item := fromMovie(r.Movie)
			item.WatcherCount = r.WatcherCount
			item.PlayCount = r.PlayCount
			item.CollectedCount = r.CollectedCount
			return item
		}), true
	case []trakt.AnticipatedShow:
		return mapItems(rows, func(r trakt.AnticipatedShow) Item {
			item := fromShow(r.Show)
			item.ListCount = r.ListCount
			return item
		}), true
	case []trakt.AnticipatedMovie:
		return mapItems(rows, func(r trakt.AnticipatedMovie) Item {
			item := fromMovie(r.Movie)
			item.ListCount = r.ListCount
			return item
		}), true
	case []trakt.BoxOfficeShow:
		return mapItems(rows, func(r trakt.BoxOfficeShow) Item {
			item := fromShow(r.Show)
			item.Revenue = r.Revenue
			return item
		}), true
	case []trakt.BoxOfficeMovie:
		return mapItems(rows, func(r trakt.BoxOfficeMovie) Item {
			item := fromMovie(r.Movie)
			item.Revenue = r.Revenue
			return item
		}), true
	case []trakt.UpdatedShow:
		return mapItems(rows, func(r trakt.UpdatedShow) Item {
			item := fromShow(r.Show)
			item.UpdatedAt = r.UpdatedAt
			return item
		}), true
	case []trakt.UpdatedMovie:
		return mapItems(rows, func(r trakt.UpdatedMovie) Item {
			item := fromMovie(r.Movie)
			item.UpdatedAt = r.UpdatedAt
			return item
		}), true
	case []trakt.WatchedMovie:
		return mapItems(rows, func(r trakt.WatchedMovie) Item {
			item := fromMovie(r.Movie)
			item.Plays = r.Plays
			item.LastWatchedAt = r.LastWatchedAt
			item.UpdatedAt = r.LastUpdatedAt
			return item
		}), true
	case []trakt.WatchedShow:
		return mapItems(rows, func(r trakt.WatchedShow) Item {
			item := fromShow(r.Show)
			item.Plays = r.Plays
			item.LastWatchedAt = r.LastWatchedAt
			item.UpdatedAt = r.LastUpdatedAt
			return item
		}), true
	}
	return nil, false
}
