package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/onneile/molemi/internal/cli/formatter"
	"github.com/onneile/molemi/internal/glossary"
)

// newGlossaryCmd creates the "glossary" command that previews which
// glossary entries match a given text.
func newGlossaryCmd(app *App) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "glossary [text]",
		Short: "Preview glossary matches for a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			dir, err := resolveDirection(app, source)
			if err != nil {
				return err
			}

			matches, err := app.Glossary.PreviewMatches(text, dir)
			if err != nil {
				return fmt.Errorf("previewing matches: %w", err)
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No glossary matches.")
				return nil
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTokenMatch(m))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source language: tsn or en (prompted when omitted)")
	return cmd
}

// resolveDirection maps the --source flag to a glossary direction,
// falling back to an interactive picker on a terminal and to Setswana
// otherwise.
func resolveDirection(app *App, source string) (glossary.Direction, error) {
	switch source {
	case "tsn":
		return glossary.DirectionSetswana, nil
	case "en":
		return glossary.DirectionEnglish, nil
	case "":
	default:
		return "", fmt.Errorf("unknown source language %q (want tsn or en)", source)
	}

	if app.IsInteractive == nil || !app.IsInteractive() {
		return glossary.DirectionSetswana, nil
	}

	var picked string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Source language").
				Options(
					huh.NewOption("Setswana", "tsn"),
					huh.NewOption("English", "en"),
				).
				Value(&picked),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selecting source language: %w", err)
	}
	if picked == "en" {
		return glossary.DirectionEnglish, nil
	}
	return glossary.DirectionSetswana, nil
}
