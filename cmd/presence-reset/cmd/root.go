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

	// rootCmd represents the base command for resetting the session.
	rootCmd = &cobra.Command{
		Use:   "presence-reset",
		Short: "Return the presence session to the unoccupied state.",
		Long: `Resets a completed presence session back to the canonical unoccupied
record, clearing both boundary timestamps. Only a completed interval may be
reset; resetting an open interval is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return tracker.Run(ctx, &tracker.Options{
				ConfigPath:  configPath,
				SessionFile: sessionFile,
				Operation:   tracker.OperationReset,
			})
		},
	}
)

// Execute runs the presence-reset CLI and exits with non-zero status on error.
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
