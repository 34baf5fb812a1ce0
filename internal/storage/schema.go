package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			exp INTEGER DEFAULT 0,
			level INTEGER DEFAULT 1,
			total_quests_completed INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			last_completion_date TEXT,
			motivation_mode TEXT DEFAULT 'warrior',
			daily_goal INTEGER DEFAULT 3,
			weekly_goal INTEGER DEFAULT 15
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT DEFAULT '',
			category TEXT NOT NULL,
			priority TEXT DEFAULT 'medium',
			status TEXT DEFAULT 'pending',
			exp INTEGER NOT NULL,
			date_created TEXT NOT NULL,
			date_completed TEXT,
			mood TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			category TEXT NOT NULL,
			unlocked_at DATETIME NOT NULL
		);`,
		// Mood history is append-only; quest_id is a back-reference, not a
		// foreign key, because entries outlive quests until cleanup runs.
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			mood TEXT NOT NULL,
			quest_id TEXT NOT NULL,
			quest_title TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_status ON quests(status);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_date_completed ON quests(date_completed);`,
		`CREATE INDEX IF NOT EXISTS idx_mood_entries_quest_id ON mood_entries(quest_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the initial schema (ignore if already present).
	alterStmts := []string{
		`ALTER TABLE profile ADD COLUMN last_reminder_date TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
