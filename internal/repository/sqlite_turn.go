package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/onneile/molemi/internal/domain"
)

// SQLiteTurnRepo implements TurnRepo using a SQLite database.
type SQLiteTurnRepo struct {
	db *sql.DB
}

// NewSQLiteTurnRepo creates a new SQLiteTurnRepo.
func NewSQLiteTurnRepo(db *sql.DB) *SQLiteTurnRepo {
	return &SQLiteTurnRepo{db: db}
}

const turnColumns = `id, phone, incoming_id, outgoing_id, lang_detected,
	question_raw, question_en, answer_en, answer_final, intent,
	llm_model, translation_backend, reasoning_summary,
	mentions_dosage, needs_human_review, created_at`

func (r *SQLiteTurnRepo) Create(ctx context.Context, t *domain.Turn) error {
	query := `INSERT INTO turns (` + turnColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Phone,
		nullIfEmpty(t.IncomingID),
		nullIfEmpty(t.OutgoingID),
		string(t.LangDetected),
		t.QuestionRaw,
		t.QuestionEN,
		t.AnswerEN,
		t.AnswerFinal,
		t.Intent,
		t.LLMModel,
		t.TranslationBackend,
		t.ReasoningSummary,
		boolToInt(t.SafetyFlags.MentionsDosage),
		boolToInt(t.SafetyFlags.NeedsHumanReview),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting turn: %w", err)
	}
	return nil
}

func (r *SQLiteTurnRepo) GetByID(ctx context.Context, id string) (*domain.Turn, error) {
	query := `SELECT ` + turnColumns + ` FROM turns WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTurn(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("turn: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTurnRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Turn, error) {
	query := `SELECT ` + turnColumns + ` FROM turns ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent turns: %w", err)
	}
	defer rows.Close()

	var turns []*domain.Turn
	for rows.Next() {
		t, err := scanTurn(rows.Scan)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}
	return turns, nil
}

// scanTurn scans one turn row via the given Scan function, shared between
// single-row and multi-row queries.
func scanTurn(scan func(dest ...any) error) (*domain.Turn, error) {
	var t domain.Turn
	var lang, createdAtStr string
	var incomingID, outgoingID sql.NullString
	var mentionsDosage, needsReview int

	err := scan(
		&t.ID, &t.Phone, &incomingID, &outgoingID, &lang,
		&t.QuestionRaw, &t.QuestionEN, &t.AnswerEN, &t.AnswerFinal, &t.Intent,
		&t.LLMModel, &t.TranslationBackend, &t.ReasoningSummary,
		&mentionsDosage, &needsReview, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning turn: %w", err)
	}

	t.IncomingID = incomingID.String
	t.OutgoingID = outgoingID.String
	t.LangDetected = domain.ParseLanguage(lang)
	t.SafetyFlags.MentionsDosage = mentionsDosage != 0
	t.SafetyFlags.NeedsHumanReview = needsReview != 0
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &t, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullIfEmpty maps "" to NULL so unset message references satisfy the
// foreign key constraints.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
