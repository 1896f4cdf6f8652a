package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/better-trakt/trakt"
)

var accessToken string

// usersCmd groups the user endpoints
var usersCmd = &cobra.Command{
	Use:               "users",
	Short:             "User watch history",
	PersistentPreRunE: initializeApp,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.PersistentFlags().StringVar(&accessToken, "token", "", "OAuth access token for private profiles (default from trakt.access_token)")

	usersCmd.AddCommand(
		newUserCmd("watched-movies <user>", "Movies a user has watched", func(cmd *cobra.Command, q *listingQuery, user string) error {
			return runListing(cmd, "Watched movies", q, func(ctx context.Context) (*trakt.Response[[]trakt.WatchedMovie], error) {
				return client.Users.WatchedMovies(ctx, user, userToken())
			})
		}),
		newUserCmd("watched-shows <user>", "Shows a user has watched", func(cmd *cobra.Command, q *listingQuery, user string) error {
			return runListing(cmd, "Watched shows", q, func(ctx context.Context) (*trakt.Response[[]trakt.WatchedShow], error) {
				return client.Users.WatchedShows(ctx, user, userToken())
			})
		}),
	)
}

func newUserCmd(use, short string, run func(cmd *cobra.Command, q *listingQuery, user string) error) *cobra.Command {
	q := &listingQuery{kind: listingBare}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, q, args[0])
		},
	}
	q.bind(cmd)
	return cmd
}

// userToken prefers --token over the configured access token
func userToken() string {
	if accessToken != "" {
		return accessToken
	}
	return cfg.Trakt.AccessToken
}
