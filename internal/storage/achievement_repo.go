package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type AchievementRepo struct {
	db DBTX
}

func NewAchievementRepo(db DBTX) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// Get returns the unlocked achievement or (nil, nil) when the id has never
// been unlocked.
func (r *AchievementRepo) Get(ctx context.Context, id string) (*Achievement, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, icon, category, unlocked_at
		FROM achievements
		WHERE id = ?
	`, id)
	var a Achievement
	if err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Category, &a.UnlockedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("achievement get: %w", err)
	}
	return &a, nil
}

// ListAll returns achievements in unlock order.
func (r *AchievementRepo) ListAll(ctx context.Context) ([]Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, icon, category, unlocked_at
		FROM achievements
		ORDER BY unlocked_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Category, &a.UnlockedAt); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

// Insert fails if the id already exists; callers check Get first for
// idempotent unlocks.
func (r *AchievementRepo) Insert(ctx context.Context, a *Achievement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (id, name, description, icon, category, unlocked_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.Name, a.Description, a.Icon, a.Category, a.UnlockedAt)
	if err != nil {
		return fmt.Errorf("achievement insert: %w", err)
	}
	return nil
}

func (r *AchievementRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM achievements`); err != nil {
		return fmt.Errorf("achievement delete all: %w", err)
	}
	return nil
}
