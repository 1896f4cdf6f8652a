package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/better-trakt/trakt"
)

// showsCmd groups the show endpoints
var showsCmd = &cobra.Command{
	Use:               "shows",
	Short:             "Show summaries, people and listings",
	PersistentPreRunE: initializeApp,
}

func init() {
	rootCmd.AddCommand(showsCmd)

	showsCmd.AddCommand(
		newDetailCmd("summary <id>", "Show a show's full summary (Trakt id, slug or IMDb id)", func(cmd *cobra.Command, id string) error {
			return runDetail(cmd, func(ctx context.Context) (*trakt.Response[trakt.ShowSummaryFull], error) {
				return client.Shows.Summary(ctx, id)
			}, formatShowSummary)
		}),
		newDetailCmd("people <id>", "List a show's cast and crew", func(cmd *cobra.Command, id string) error {
			return runDetail(cmd, func(ctx context.Context) (*trakt.Response[trakt.ShowPeople], error) {
				return client.Shows.People(ctx, id)
			}, formatPeople)
		}),
		newListingCmd("trending", "Shows being watched right now", listingPlain, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.listOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Trending shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.TrendingShow], error) {
				return client.Shows.Trending(ctx, opts)
			})
		}),
		newListingCmd("popular", "Most popular shows", listingPlain, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.listOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Popular shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.Show], error) {
				return client.Shows.Popular(ctx, opts)
			})
		}),
		newListingCmd("recommended", "Most recommended shows in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Recommended shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.RecommendedShow], error) {
				return client.Shows.Recommended(ctx, opts)
			})
		}),
		newListingCmd("played", "Most played shows in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Played shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.PlayedWatchedCollectedShow], error) {
				return client.Shows.Played(ctx, opts)
			})
		}),
		newListingCmd("watched", "Most watched shows in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Watched shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.PlayedWatchedCollectedShow], error) {
				return client.Shows.Watched(ctx, opts)
			})
		}),
		newListingCmd("collected", "Most collected shows in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Collected shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.PlayedWatchedCollectedShow], error) {
				return client.Shows.Collected(ctx, opts)
			})
		}),
		newListingCmd("anticipated", "Most anticipated shows", listingPlain, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.listOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Anticipated shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.AnticipatedShow], error) {
				return client.Shows.Anticipated(ctx, opts)
			})
		}),
		newListingCmd("boxoffice", "Top shows by weekend box office", listingBare, func(cmd *cobra.Command, q *listingQuery) error {
			return runListing(cmd, "Box office shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.BoxOfficeShow], error) {
				return client.Shows.BoxOffice(ctx)
			})
		}),
		newListingCmd("updates", "Shows updated since a date", listingUpdates, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.updatesOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Updated shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.UpdatedShow], error) {
				return client.Shows.Updates(ctx, opts)
			})
		}),
	)
}
