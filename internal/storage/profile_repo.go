package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainProfileKey = "main_user"

type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, key string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, exp, level, total_quests_completed, current_streak, longest_streak,
			last_completion_date, motivation_mode, daily_goal, weekly_goal, last_reminder_date
		FROM profile
		WHERE key = ?
	`, key)

	var (
		p            Profile
		lastComplete sql.NullString
		lastReminder sql.NullString
	)
	if err := row.Scan(
		&p.Key, &p.EXP, &p.Level, &p.TotalQuestsCompleted, &p.CurrentStreak, &p.LongestStreak,
		&lastComplete, &p.MotivationMode, &p.DailyGoal, &p.WeeklyGoal, &lastReminder,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	if lastComplete.Valid {
		v := lastComplete.String
		p.LastCompletionDate = &v
	}
	if lastReminder.Valid {
		v := lastReminder.String
		p.LastReminderDate = &v
	}
	return &p, nil
}

// GetOrCreateMain returns the singleton profile, inserting the default row
// on first use.
func (r *ProfileRepo) GetOrCreateMain(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx, MainProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO profile (key) VALUES (?)`, MainProfileKey); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, MainProfileKey)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET exp = ?, level = ?, total_quests_completed = ?, current_streak = ?, longest_streak = ?,
			last_completion_date = ?, motivation_mode = ?, daily_goal = ?, weekly_goal = ?, last_reminder_date = ?
		WHERE key = ?
	`, p.EXP, p.Level, p.TotalQuestsCompleted, p.CurrentStreak, p.LongestStreak,
		p.LastCompletionDate, p.MotivationMode, p.DailyGoal, p.WeeklyGoal, p.LastReminderDate, p.Key)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}

func (r *ProfileRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE key = ?`, key); err != nil {
		return fmt.Errorf("profile delete: %w", err)
	}
	return nil
}
