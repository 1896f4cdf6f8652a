package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/better-trakt/filter"
	"github.com/s0up4200/better-trakt/trakt"
)

// overviewConcurrency caps parallel requests to stay clear of Trakt's rate limit
const overviewConcurrency = 3

// overviewSection is one listing of the overview
type overviewSection struct {
	title string
	items []filter.Item
	meta  listingMeta
}

// overviewCmd fetches the headline listings for shows and movies at once
var overviewCmd = &cobra.Command{
	Use:     "overview",
	Short:   "Trending, popular and anticipated shows and movies",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	opts := trakt.ListOptions{Pagination: &trakt.Pagination{Page: 1, Limit: cfg.Output.Limit}}

	sections, err := fetchOverview(cmd.Context(), client, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		doc := make(map[string][]filter.Item, len(sections))
		for _, s := range sections {
			doc[sectionKey(s.title)] = s.items
		}
		return writeJSON(out, doc)
	}

	for _, s := range sections {
		fmt.Fprint(out, formatItems(s.title, s.items, s.meta))
	}
	return nil
}

// fetchOverview runs the six listing requests concurrently. Sections keep a
// fixed order; the first failure cancels the rest.
func fetchOverview(ctx context.Context, c *trakt.Client, opts trakt.ListOptions) ([]overviewSection, error) {
	sections := make([]overviewSection, 6)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)

	g.Go(func() error {
		return fillSection(&sections[0], "Trending shows", func() (*trakt.Response[[]trakt.TrendingShow], error) {
			return c.Shows.Trending(ctx, opts)
		})
	})
	g.Go(func() error {
		return fillSection(&sections[1], "Popular shows", func() (*trakt.Response[[]trakt.Show], error) {
			return c.Shows.Popular(ctx, opts)
		})
	})
	g.Go(func() error {
		return fillSection(&sections[2], "Anticipated shows", func() (*trakt.Response[[]trakt.AnticipatedShow], error) {
			return c.Shows.Anticipated(ctx, opts)
		})
	})
	g.Go(func() error {
		return fillSection(&sections[3], "Trending movies", func() (*trakt.Response[[]trakt.TrendingMovie], error) {
			return c.Movies.Trending(ctx, opts)
		})
	})
	g.Go(func() error {
		return fillSection(&sections[4], "Popular movies", func() (*trakt.Response[[]trakt.Movie], error) {
			return c.Movies.Popular(ctx, opts)
		})
	})
	g.Go(func() error {
		return fillSection(&sections[5], "Anticipated movies", func() (*trakt.Response[[]trakt.AnticipatedMovie], error) {
			return c.Movies.Anticipated(ctx, opts)
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sections, nil
}

// fillSection writes only to its own slot, so no locking is needed
func fillSection[T any](s *overviewSection, title string, fetch func() (*trakt.Response[T], error)) error {
	res, err := fetch()
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", strings.ToLower(title), err)
	}
	items, ok := filter.ItemsFrom(res.Data)
	if !ok {
		return fmt.Errorf("unsupported listing type %T for %s", res.Data, strings.ToLower(title))
	}
	*s = overviewSection{title: title, items: items, meta: metaOf(res)}
	return nil
}

// sectionKey turns "Trending shows" into "trending_shows"
func sectionKey(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}
