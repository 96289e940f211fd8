package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"presence-tracker/internal/service/demo"
	"presence-tracker/internal/version"
)

// rootCmd represents the base command for the scripted lifecycle demo.
var rootCmd = &cobra.Command{
	Use:   "presence-demo",
	Short: "Walk the presence lifecycle end to end.",
	Long: `Runs a scripted in-memory walk through the presence lifecycle:
check-in, check-out, reset, plus a couple of deliberately rejected
operations to show the validation rules. Nothing is persisted.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return demo.Run(ctx)
	},
}

// Execute runs the presence-demo CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
