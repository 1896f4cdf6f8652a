package trakt

import (
	"net/http"
	"strconv"
)

// Response wraps a decoded payload together with response metadata
type Response[T any] struct {
	Data       T
	StatusCode int
	Header     http.Header

	// Pagination is set when the API sent X-Pagination-* headers
	Pagination *PageInfo

	// StartDate echoes X-Start-Date on updates listings. Store it and pass it
	// as the next StartDate to only receive newer updates.
	StartDate StartDate

	// TrendingUserCount is X-Trending-User-Count on trending listings
	TrendingUserCount int
}

// PageInfo contains pagination information
type PageInfo struct {
	Page      int
	Limit     int
	PageCount int
	ItemCount int
}

// HasMorePages checks if there are more pages to fetch
func (pi *PageInfo) HasMorePages() bool {
	return pi.Page < pi.PageCount
}

func newResponse[T any](resp *http.Response, data T) *Response[T] {
	return &Response[T]{
		Data:              data,
		StatusCode:        resp.StatusCode,
		Header:            resp.Header,
		Pagination:        parsePageInfo(resp.Header),
		StartDate:         StartDate(resp.Header.Get("X-Start-Date")),
		TrendingUserCount: headerInt(resp.Header, "X-Trending-User-Count"),
	}
}

func parsePageInfo(h http.Header) *PageInfo {
	if h.Get("X-Pagination-Page") == "" {
		return nil
	}
	return &PageInfo{
		Page:      headerInt(h, "X-Pagination-Page"),
		Limit:     headerInt(h, "X-Pagination-Limit"),
		PageCount: headerInt(h, "X-Pagination-Page-Count"),
		ItemCount: headerInt(h, "X-Pagination-Item-Count"),
	}
}

func headerInt(h http.Header, key string) int {
	n, err := strconv.Atoi(h.Get(key))
	if err != nil {
		return 0
	}
	return n
}
