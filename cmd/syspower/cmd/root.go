package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/syspower/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string

	// logLevel overrides the configured log level when set.
	logLevel string

	// dryRun prints the resolved method chain instead of executing it.
	dryRun bool

	// noSession disables desktop session-manager integration.
	noSession bool

	// rootCmd represents the base command for all power operations.
	rootCmd = &cobra.Command{
		Use:   "syspower",
		Short: "Control host power state through whichever mechanism works.",
		Long: `Performs power-state transitions (shutdown, reboot, suspend, hibernate,
hybrid sleep, logout) by probing the host and trying OS-native mechanisms
in priority order: the active desktop session manager first, then direct
privileged tools, then elevation-wrapped tools, then bare last resorts.

No method choice is required from the caller; the first mechanism that
works wins. A successful transition usually never returns control.`,
		SilenceUsage: true,
	}
)

// Execute runs the syspower CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup flags shared by every operation subcommand.
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"path to configuration file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false,
		"print the resolved method chain without executing it")
	rootCmd.PersistentFlags().BoolVar(&noSession, "no-session", false,
		"skip desktop session-manager integration")

	for _, spec := range operationCommands {
		rootCmd.AddCommand(newOperationCommand(spec))
	}
}
