package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type QuestRepo struct {
	db DBTX
}

func NewQuestRepo(db DBTX) *QuestRepo {
	return &QuestRepo{db: db}
}

const questColumns = `id, title, description, category, priority, status, exp, date_created, date_completed, mood`

// Save upserts the quest by id.
func (r *QuestRepo) Save(ctx context.Context, q *Quest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (id, title, description, category, priority, status, exp, date_created, date_completed, mood)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			category = excluded.category,
			priority = excluded.priority,
			status = excluded.status,
			exp = excluded.exp,
			date_completed = excluded.date_completed,
			mood = excluded.mood
	`, q.ID, q.Title, q.Description, q.Category, q.Priority, q.Status, q.EXP, q.DateCreated, q.DateCompleted, q.Mood)
	if err != nil {
		return fmt.Errorf("quest save: %w", err)
	}
	return nil
}

// Get returns the quest or (nil, nil) when absent.
func (r *QuestRepo) Get(ctx context.Context, id string) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+questColumns+` FROM quests WHERE id = ?`, id)
	return scanQuest(row)
}

func (r *QuestRepo) ListAll(ctx context.Context) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+questColumns+` FROM quests ORDER BY date_created ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest list rows: %w", err)
	}
	return out, nil
}

func (r *QuestRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("quest delete: %w", err)
	}
	return nil
}

func (r *QuestRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quests`); err != nil {
		return fmt.Errorf("quest delete all: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuest(row scanner) (*Quest, error) {
	var (
		q             Quest
		dateCompleted sql.NullString
		mood          sql.NullString
	)
	if err := row.Scan(
		&q.ID, &q.Title, &q.Description, &q.Category, &q.Priority, &q.Status,
		&q.EXP, &q.DateCreated, &dateCompleted, &mood,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest scan: %w", err)
	}
	if dateCompleted.Valid {
		v := dateCompleted.String
		q.DateCompleted = &v
	}
	if mood.Valid {
		v := mood.String
		q.Mood = &v
	}
	return &q, nil
}
