package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/better-trakt/filter"
	"github.com/s0up4200/better-trakt/trakt"
)

// newDetailCmd creates a command that takes a single show or movie id
func newDetailCmd(use, short string, run func(cmd *cobra.Command, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
}

// newListingCmd creates a listing command with the query flags of its kind
func newListingCmd(use, short string, kind listingKind, run func(cmd *cobra.Command, q *listingQuery) error) *cobra.Command {
	q := &listingQuery{kind: kind}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, q)
		},
	}
	q.bind(cmd)
	return cmd
}

// runDetail fetches a single resource and prints it
func runDetail[T any](cmd *cobra.Command, fetch func(ctx context.Context) (*trakt.Response[T], error), format func(T) string) error {
	res, err := fetch(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return writeJSON(out, res.Data)
	}
	_, err = fmt.Fprint(out, format(res.Data))
	return err
}

// runListing fetches a listing, applies the --where filter and prints the rows
func runListing[T any](cmd *cobra.Command, title string, q *listingQuery, fetch func(ctx context.Context) (*trakt.Response[T], error)) error {
	f, err := q.compileFilter()
	if err != nil {
		return err
	}

	res, err := fetch(cmd.Context())
	if err != nil {
		return err
	}

	items, ok := filter.ItemsFrom(res.Data)
	if !ok {
		return fmt.Errorf("unsupported listing type %T", res.Data)
	}

	if f != nil {
		total := len(items)
		items, err = filter.Apply(f, items)
		if err != nil {
			return fmt.Errorf("failed to apply filter: %w", err)
		}
		logger.Debug().
			Str("filter", f.Expression()).
			Int("total", total).
			Int("matched", len(items)).
			Msg("Applied filter")
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		if f != nil {
			return writeJSON(out, items)
		}
		return writeJSON(out, res.Data)
	}
	_, err = fmt.Fprint(out, formatItems(title, items, metaOf(res)))
	return err
}
