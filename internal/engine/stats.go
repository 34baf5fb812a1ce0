package engine

import (
	"context"
	"fmt"
)

// Aggregates are derived from the quest records and mood history on every
// read; nothing here is stored.

type DailyStats struct {
	Date            string
	QuestsCompleted int
	ExpGained       int
	// Mood is the last mood recorded that day, or empty.
	Mood Mood
}

func (s *Service) DailyStats(ctx context.Context, date string) (*DailyStats, error) {
	quests, err := s.quests.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	st := &DailyStats{Date: date}
	for _, q := range quests {
		if q.Status != string(StatusCompleted) || q.DateCompleted == nil || *q.DateCompleted != date {
			continue
		}
		st.QuestsCompleted++
		st.ExpGained += q.EXP
	}

	entries, err := s.moods.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Date == date {
			st.Mood = Mood(e.Mood)
		}
	}
	return st, nil
}

type WeeklyStats struct {
	WeekStart       string
	TotalQuests     int // created during the week
	CompletedQuests int
	TotalExp        int
	AverageMood     float64
	StreakDays      int // distinct days with at least one completion
}

// WeeklyStats aggregates the 7-day window starting at weekStart
// (YYYY-MM-DD, local).
func (s *Service) WeeklyStats(ctx context.Context, weekStart string) (*WeeklyStats, error) {
	start, ok := ParseDate(weekStart)
	if !ok {
		return nil, fmt.Errorf("invalid week start date: %q", weekStart)
	}
	end := start.AddDate(0, 0, 7)

	inWeek := func(date string) bool {
		d, ok := ParseDate(date)
		return ok && !d.Before(start) && d.Before(end)
	}

	quests, err := s.quests.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	st := &WeeklyStats{WeekStart: weekStart}
	days := map[string]bool{}
	for _, q := range quests {
		if inWeek(q.DateCreated) {
			st.TotalQuests++
		}
		if q.Status == string(StatusCompleted) && q.DateCompleted != nil && inWeek(*q.DateCompleted) {
			st.CompletedQuests++
			st.TotalExp += q.EXP
			days[*q.DateCompleted] = true
		}
	}
	st.StreakDays = len(days)

	entries, err := s.moods.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sum, n := 0, 0
	for _, e := range entries {
		if inWeek(e.Date) {
			sum += MoodValue(Mood(e.Mood))
			n++
		}
	}
	if n > 0 {
		st.AverageMood = float64(sum) / float64(n)
	}
	return st, nil
}
