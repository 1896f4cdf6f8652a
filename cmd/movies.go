package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/better-trakt/trakt"
)

// moviesCmd groups the movie endpoints
var moviesCmd = &cobra.Command{
	Use:               "movies",
	Short:             "Movie summaries, people and listings",
	PersistentPreRunE: initializeApp,
}

func init() {
	rootCmd.AddCommand(moviesCmd)

	moviesCmd.AddCommand(
		newDetailCmd("summary <id>", "Show a movie's full summary (Trakt id, slug or IMDb id)", func(cmd *cobra.Command, id string) error {
			return runDetail(cmd, func(ctx context.Context) (*trakt.Response[trakt.MovieSummaryFull], error) {
				return client.Movies.Summary(ctx, id)
			}, formatMovieSummary)
		}),
		newDetailCmd("people <id>", "List a movie's cast and crew", func(cmd *cobra.Command, id string) error {
			return runDetail(cmd, func(ctx context.Context) (*trakt.Response[trakt.MoviePeople], error) {
				return client.Movies.People(ctx, id)
			}, formatPeople)
		}),
		newListingCmd("trending", "Movies being watched right now", listingPlain, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.listOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Trending movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.TrendingMovie], error) {
				return client.Movies.Trending(ctx, opts)
			})
		}),
		newListingCmd("popular", "Most popular movies", listingPlain, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.listOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Popular movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.Movie], error) {
				return client.Movies.Popular(ctx, opts)
			})
		}),
		newListingCmd("recommended", "Most recommended movies in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Recommended movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.RecommendedMovie], error) {
				return client.Movies.Recommended(ctx, opts)
			})
		}),
		newListingCmd("played", "Most played movies in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Played movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.PlayedWatchedCollectedMovie], error) {
				return client.Movies.Played(ctx, opts)
			})
		}),
		newListingCmd("watched", "Most watched movies in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Watched movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.PlayedWatchedCollectedMovie], error) {
				return client.Movies.Watched(ctx, opts)
			})
		}),
		newListingCmd("collected", "Most collected movies in a period", listingPeriod, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.periodOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Collected movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.PlayedWatchedCollectedMovie], error) {
				return client.Movies.Collected(ctx, opts)
			})
		}),
		newListingCmd("anticipated", "Most anticipated movies", listingPlain, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.listOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Anticipated movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.AnticipatedMovie], error) {
				return client.Movies.Anticipated(ctx, opts)
			})
		}),
		newListingCmd("boxoffice", "Top movies by weekend box office", listingBare, func(cmd *cobra.Command, q *listingQuery) error {
			return runListing(cmd, "Box office movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.BoxOfficeMovie], error) {
				return client.Movies.BoxOffice(ctx)
			})
		}),
		newListingCmd("updates", "Movies updated since a date", listingUpdates, func(cmd *cobra.Command, q *listingQuery) error {
			opts, err := q.updatesOptions()
			if err != nil {
				return err
			}
			return runListing(cmd, "Updated movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.UpdatedMovie], error) {
				return client.Movies.Updates(ctx, opts)
			})
		}),
	)
}
