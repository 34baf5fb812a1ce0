package engine

import (
	"context"
	"math"
	"testing"
)

func TestDailyStats(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	a := addQuest(t, svc, "Morning", 30)
	b := addQuest(t, svc, "Evening", 40)
	if _, err := svc.CompleteQuest(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteQuest(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordMood(ctx, b.ID, MoodHappy); err != nil {
		t.Fatal(err)
	}

	// A completion on another day stays out of today's stats.
	setClock(svc, dayOne.AddDate(0, 0, 1))
	c := addQuest(t, svc, "Tomorrow", 50)
	if _, err := svc.CompleteQuest(ctx, c.ID); err != nil {
		t.Fatal(err)
	}

	st, err := svc.DailyStats(ctx, DateOf(dayOne))
	if err != nil {
		t.Fatal(err)
	}
	if st.QuestsCompleted != 2 || st.ExpGained != 70 {
		t.Fatalf("daily stats = %+v, want 2 quests / 70 EXP", st)
	}
	if st.Mood != MoodHappy {
		t.Fatalf("daily mood = %q, want %q", st.Mood, MoodHappy)
	}
}

func TestDailyStatsEmptyDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	st, err := svc.DailyStats(context.Background(), "2026-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if st.QuestsCompleted != 0 || st.ExpGained != 0 || st.Mood != "" {
		t.Fatalf("empty day stats = %+v", st)
	}
}

func TestWeeklyStats(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Day 1: two completions, one mood. Day 3: one completion.
	setClock(svc, dayOne)
	a := addQuest(t, svc, "A", 30)
	b := addQuest(t, svc, "B", 40)
	if _, err := svc.CompleteQuest(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteQuest(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordMood(ctx, a.ID, MoodFired); err != nil { // 5
		t.Fatal(err)
	}

	setClock(svc, dayOne.AddDate(0, 0, 2))
	c := addQuest(t, svc, "C", 50)
	if _, err := svc.CompleteQuest(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordMood(ctx, c.ID, MoodNeutral); err != nil { // 2
		t.Fatal(err)
	}

	// Outside the window entirely.
	setClock(svc, dayOne.AddDate(0, 0, 9))
	d := addQuest(t, svc, "D", 60)
	if _, err := svc.CompleteQuest(ctx, d.ID); err != nil {
		t.Fatal(err)
	}

	st, err := svc.WeeklyStats(ctx, DateOf(dayOne))
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalQuests != 3 {
		t.Fatalf("totalQuests = %d, want 3 created in window", st.TotalQuests)
	}
	if st.CompletedQuests != 3 || st.TotalExp != 120 {
		t.Fatalf("completed = %d / %d EXP, want 3 / 120", st.CompletedQuests, st.TotalExp)
	}
	if st.StreakDays != 2 {
		t.Fatalf("streakDays = %d, want 2 distinct completion days", st.StreakDays)
	}
	if math.Abs(st.AverageMood-3.5) > 1e-9 {
		t.Fatalf("averageMood = %v, want 3.5", st.AverageMood)
	}
}

func TestWeeklyStatsBadDate(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.WeeklyStats(context.Background(), "not-a-date"); err == nil {
		t.Fatal("invalid week start accepted")
	}
}
