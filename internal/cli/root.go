// Package cli implements the molemi command line interface.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/onneile/molemi/internal/glossary"
	"github.com/onneile/molemi/internal/pipeline"
	"github.com/onneile/molemi/internal/repository"
	"github.com/onneile/molemi/internal/server"
	"github.com/onneile/molemi/internal/sms"
)

// MessageHandler processes one inbound farmer message.
type MessageHandler interface {
	Handle(ctx context.Context, phone, text string) (*pipeline.Result, error)
}

// App holds references to the components CLI commands operate on.
type App struct {
	Pipeline MessageHandler
	Turns    repository.TurnRepo
	Glossary *glossary.Glossary
	Server   *server.Server
	SMS      sms.Sender
	Log      *slog.Logger

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "molemi" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "molemi",
		Short: "SMS farming assistant for Setswana and English",
	}

	root.AddCommand(
		newServeCmd(app),
		newChatCmd(app),
		newTurnsCmd(app),
		newGlossaryCmd(app),
		newSendCmd(app),
	)

	return root
}
