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
	// at is an optional RFC 3339 check-out timestamp.
	at string

	// rootCmd represents the base command for recording a check-out.
	rootCmd = &cobra.Command{
		Use:   "presence-checkout",
		Short: "Close the open presence interval.",
		Long: `Records a check-out for the tracked presence session.

The check-out timestamp defaults to the current instant; it may be supplied
explicitly with --at and must come strictly after the recorded check-in.
The completed record is persisted to the session JSON file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return tracker.Run(ctx, &tracker.Options{
				ConfigPath:  configPath,
				SessionFile: sessionFile,
				Operation:   tracker.OperationCheckOut,
				At:          at,
			})
		},
	}
)

// Execute runs the presence-checkout CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&at, "at", "t", "", "check-out timestamp in RFC 3339 (defaults to now)")
}
