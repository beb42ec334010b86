package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newSendCmd creates the "send" command for pushing an ad-hoc outbound
// SMS, e.g. a follow-up after a turn was reviewed by hand.
func newSendCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "send [text]",
		Short: "Send an SMS to a phone number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.SMS == nil {
				return fmt.Errorf("sms sending is disabled: twilio credentials are not configured")
			}
			if to == "" {
				return fmt.Errorf("--to is required")
			}

			body := strings.Join(args, " ")
			if err := app.SMS.Send(cmd.Context(), to, body); err != nil {
				return fmt.Errorf("sending sms: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %d characters to %s\n", len(body), to)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient phone number in E.164 form")
	return cmd
}
