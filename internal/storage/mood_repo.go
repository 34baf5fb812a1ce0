package storage

import (
	"context"
	"fmt"
)

type MoodRepo struct {
	db DBTX
}

func NewMoodRepo(db DBTX) *MoodRepo {
	return &MoodRepo{db: db}
}

func (r *MoodRepo) Insert(ctx context.Context, e *MoodEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO mood_entries (date, mood, quest_id, quest_title)
		VALUES (?, ?, ?, ?)
	`, e.Date, e.Mood, e.QuestID, e.QuestTitle)
	if err != nil {
		return 0, fmt.Errorf("mood insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("mood last insert id: %w", err)
	}
	return id, nil
}

// ListAll returns the mood history in insertion order.
func (r *MoodRepo) ListAll(ctx context.Context) ([]MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, mood, quest_id, quest_title
		FROM mood_entries
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("mood list: %w", err)
	}
	defer rows.Close()

	var out []MoodEntry
	for rows.Next() {
		var e MoodEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.QuestID, &e.QuestTitle); err != nil {
			return nil, fmt.Errorf("mood scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mood rows: %w", err)
	}
	return out, nil
}

// DeleteByQuest removes every entry referencing the quest id and reports
// how many rows were removed.
func (r *MoodRepo) DeleteByQuest(ctx context.Context, questID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE quest_id = ?`, questID)
	if err != nil {
		return 0, fmt.Errorf("mood delete by quest: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mood rows affected: %w", err)
	}
	return n, nil
}

func (r *MoodRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mood delete: %w", err)
	}
	return nil
}

func (r *MoodRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries`); err != nil {
		return fmt.Errorf("mood delete all: %w", err)
	}
	return nil
}
