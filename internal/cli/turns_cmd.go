package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/onneile/molemi/internal/cli/formatter"
	"github.com/onneile/molemi/internal/domain"
)

// newTurnsCmd creates the "turns" command for inspecting and exporting
// recent conversation turns.
func newTurnsCmd(app *App) *cobra.Command {
	var limit int
	var csvPath string

	cmd := &cobra.Command{
		Use:   "turns",
		Short: "Show or export recent conversation turns",
		RunE: func(cmd *cobra.Command, args []string) error {
			turns, err := app.Turns.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing turns: %w", err)
			}

			if csvPath != "" {
				if err := exportTurnsCSV(csvPath, turns); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d turns to %s\n", len(turns), csvPath)
				return nil
			}

			if len(turns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No turns recorded yet.")
				return nil
			}
			for _, t := range turns {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTurn(t))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of most recent turns to show or export")
	cmd.Flags().StringVar(&csvPath, "csv", "", "export turns to this CSV file instead of printing")
	return cmd
}

// exportTurnsCSV writes turns to a CSV file. The trailing blank "tag"
// column is for marking rows by hand during manual review.
func exportTurnsCSV(path string, turns []*domain.Turn) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "created_at", "phone", "lang_detected",
		"question_raw", "question_en", "answer_en", "answer_final",
		"intent", "llm_model", "translation_backend", "tag",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, t := range turns {
		record := []string{
			t.ID,
			t.CreatedAt.Format(time.RFC3339),
			t.Phone,
			string(t.LangDetected),
			t.QuestionRaw,
			t.QuestionEN,
			t.AnswerEN,
			t.AnswerFinal,
			t.Intent,
			t.LLMModel,
			t.TranslationBackend,
			"", // tag left blank for manual review
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
