package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/better-trakt/config"
	"github.com/s0up4200/better-trakt/trakt"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *trakt.Client

	// Persistent flags
	outputFormat string
	showMetrics  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "better-trakt",
	Short: "Browse Trakt.tv shows, movies and watch history from the command line",
	Long: `better-trakt is a CLI for the Trakt.tv API. It fetches show and movie
summaries, cast and crew, the trending, popular, recommended, played, watched,
collected and anticipated listings, box office numbers, recent updates and a
user's watch history.

Listing results can be narrowed with expressions, e.g.
  better-trakt shows trending --where 'Watchers > 100 and Title contains "Star"'
  better-trakt movies popular --where 'containsFold(Title, "dark") and Year >= 2000'`,
	SilenceUsage:       true,
	PersistentPostRunE: printMetrics,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table or json (default from output.format)")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print request metrics to stderr after the command")
}

// initializeApp loads the configuration and creates the Trakt client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if outputFormat != "" {
		if outputFormat != "table" && outputFormat != "json" {
			return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}

	logger = setupLogger(cfg.Logging)

	client, err = trakt.New(cfg.Settings(),
		trakt.WithTimeout(cfg.Trakt.Timeout),
		trakt.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create Trakt client: %w", err)
	}

	logger.Debug().
		Str("api_url", client.Settings().APIURL).
		Str("user_agent", client.Settings().UserAgent).
		Msg("Trakt client ready")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colour only on a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printMetrics writes the client's request metrics when --metrics is set
func printMetrics(cmd *cobra.Command, args []string) error {
	if !showMetrics || client == nil {
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr())
	client.WriteMetrics(cmd.ErrOrStderr())
	return nil
}
