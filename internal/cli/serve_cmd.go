package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// newServeCmd creates the "serve" command that runs the HTTP server
// until interrupted.
func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the SMS webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Server.Run(ctx)
		},
	}
}
