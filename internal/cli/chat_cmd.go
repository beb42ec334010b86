package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newChatCmd creates the "chat" command: an interactive REPL that runs
// messages through the full pipeline with a fixed pseudo phone number,
// so conversations are logged like real farmer traffic.
func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant through the full pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal")
			}
			p := tea.NewProgram(newChatModel(app))
			_, err := p.Run()
			return err
		},
	}
}
