package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/onneile/molemi/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo using a SQLite database.
type SQLiteMessageRepo struct {
	db *sql.DB
}

// NewSQLiteMessageRepo creates a new SQLiteMessageRepo.
func NewSQLiteMessageRepo(db *sql.DB) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: db}
}

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, phone, direction, text, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Phone,
		string(m.Direction),
		m.Text,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

func (r *SQLiteMessageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	query := `SELECT id, phone, direction, text, created_at FROM messages WHERE id = ?`
	return r.scanMessage(r.db.QueryRowContext(ctx, query, id))
}

// ListByPhone returns a phone number's messages newest first. Timestamps
// are stored at second precision, so rowid breaks the tie between the
// inbound and outbound messages of one turn.
func (r *SQLiteMessageRepo) ListByPhone(ctx context.Context, phone string, limit int) ([]*domain.Message, error) {
	query := `SELECT id, phone, direction, text, created_at
		FROM messages WHERE phone = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, phone, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages by phone: %w", err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *SQLiteMessageRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Message, error) {
	query := `SELECT id, phone, direction, text, created_at
		FROM messages ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent messages: %w", err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *SQLiteMessageRepo) scanMessage(row *sql.Row) (*domain.Message, error) {
	var m domain.Message
	var direction, createdAtStr string

	err := row.Scan(&m.ID, &m.Phone, &direction, &m.Text, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("message: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning message: %w", err)
	}

	m.Direction = domain.Direction(direction)
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &m, nil
}

func (r *SQLiteMessageRepo) scanMessages(rows *sql.Rows) ([]*domain.Message, error) {
	var messages []*domain.Message
	for rows.Next() {
		var m domain.Message
		var direction, createdAtStr string

		if err := rows.Scan(&m.ID, &m.Phone, &direction, &m.Text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}

		m.Direction = domain.Direction(direction)
		var err error
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}
