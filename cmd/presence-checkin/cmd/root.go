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
	// at is an optional RFC 3339 check-in timestamp.
	at string

	// rootCmd represents the base command for recording a check-in.
	rootCmd = &cobra.Command{
		Use:   "presence-checkin",
		Short: "Open a presence interval.",
		Long: `Records a check-in for the tracked presence session.

The check-in timestamp defaults to the current instant; it may be supplied
explicitly with --at but must stay within the five-second grace window.
The resulting record is persisted to the session JSON file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return tracker.Run(ctx, &tracker.Options{
				ConfigPath:  configPath,
				SessionFile: sessionFile,
				Operation:   tracker.OperationCheckIn,
				At:          at,
			})
		},
	}
)

// Execute runs the presence-checkin CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&at, "at", "t", "", "check-in timestamp in RFC 3339 (defaults to now)")
}
