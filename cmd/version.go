package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/better-trakt/trakt"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information injected through ldflags
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "better-trakt %s (built %s)\n", version, buildTime)
		fmt.Fprintf(out, "SDK %s, Trakt API v%s\n", trakt.Version, trakt.APIVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
