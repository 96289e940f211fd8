package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"presence-tracker/internal/config"
	"presence-tracker/internal/service/tracker"
	"presence-tracker/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// sessionFile path where the presence session is persisted.
	sessionFile string

	// rootCmd represents the base command for reporting the current state.
	rootCmd = &cobra.Command{
		Use:   "presence-status",
		Short: "Report the current presence state.",
		Long: `Prints a summary of the tracked presence session: the occupancy status,
whether the interval is currently active, and the recorded duration for a
completed interval. The session is never modified.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return tracker.Run(ctx, &tracker.Options{
				ConfigPath:  configPath,
				SessionFile: sessionFile,
				Operation:   tracker.OperationStatus,
			})
		},
	}
)

// Execute runs the presence-status CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&sessionFile, "session-file", "s", "", "path to the session file (defaults to config)")
}
