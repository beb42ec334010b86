package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		phone      TEXT NOT NULL,
		direction  TEXT NOT NULL CHECK(direction IN ('in','out')),
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_phone ON messages(phone)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at)`,

	`CREATE TABLE IF NOT EXISTS turns (
		id                  TEXT PRIMARY KEY,
		phone               TEXT NOT NULL,
		incoming_id         TEXT REFERENCES messages(id),
		outgoing_id         TEXT REFERENCES messages(id),
		lang_detected       TEXT NOT NULL DEFAULT '',
		question_raw        TEXT NOT NULL DEFAULT '',
		question_en         TEXT NOT NULL DEFAULT '',
		answer_en           TEXT NOT NULL DEFAULT '',
		answer_final        TEXT NOT NULL DEFAULT '',
		intent              TEXT NOT NULL DEFAULT '',
		llm_model           TEXT NOT NULL DEFAULT '',
		translation_backend TEXT NOT NULL DEFAULT '',
		reasoning_summary   TEXT NOT NULL DEFAULT '',
		mentions_dosage     INTEGER NOT NULL DEFAULT 0,
		needs_human_review  INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_turns_phone ON turns(phone)`,
	`CREATE INDEX IF NOT EXISTS idx_turns_created ON turns(created_at)`,
}
