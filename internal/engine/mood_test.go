package engine

import (
	"context"
	"math"
	"testing"

	"lifequest/internal/storage"
)

func TestRecordMood(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Feel something", 20)
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatal(err)
	}

	entry, err := svc.RecordMood(ctx, q.ID, MoodHappy)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if entry == nil || entry.Mood != string(MoodHappy) || entry.Date != DateOf(dayOne) {
		t.Fatalf("entry=%+v", entry)
	}
	if entry.QuestTitle != "Feel something" {
		t.Fatalf("title snapshot=%q", entry.QuestTitle)
	}

	got, _ := svc.QuestRepo().Get(ctx, q.ID)
	if got.Mood == nil || *got.Mood != string(MoodHappy) {
		t.Fatalf("quest mood not stored: %v", got.Mood)
	}

	history, err := svc.MoodHistory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].QuestID != q.ID {
		t.Fatalf("history=%+v", history)
	}
}

func TestRecordMoodEmptyIsNoop(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Skip mood", 20)
	entry, err := svc.RecordMood(ctx, q.ID, "")
	if err != nil {
		t.Fatalf("empty mood: %v", err)
	}
	if entry != nil {
		t.Fatalf("empty mood produced entry %+v", entry)
	}

	history, _ := svc.MoodHistory(ctx)
	if len(history) != 0 {
		t.Fatalf("history has %d entries, want 0", len(history))
	}
}

func TestRecordMoodInvalid(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Bad mood", 20)
	if _, err := svc.RecordMood(context.Background(), q.ID, Mood("grumpy")); err == nil {
		t.Fatal("invalid mood accepted")
	}
}

func TestWeeklyMoodAverage(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Two entries inside the window, one well outside it.
	setClock(svc, dayOne.AddDate(0, 0, -10))
	old := addQuest(t, svc, "Old", 20)
	if _, err := svc.RecordMood(ctx, old.ID, MoodSad); err != nil {
		t.Fatal(err)
	}

	setClock(svc, dayOne.AddDate(0, 0, -2))
	a := addQuest(t, svc, "Recent A", 20)
	if _, err := svc.RecordMood(ctx, a.ID, MoodHappy); err != nil { // 4
		t.Fatal(err)
	}

	setClock(svc, dayOne)
	b := addQuest(t, svc, "Recent B", 20)
	if _, err := svc.RecordMood(ctx, b.ID, MoodFired); err != nil { // 5
		t.Fatal(err)
	}

	avg, err := svc.WeeklyMood(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(avg-4.5) > 1e-9 {
		t.Fatalf("weekly mood=%v, want 4.5", avg)
	}
}

func TestWeeklyMoodEmpty(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	avg, err := svc.WeeklyMood(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if avg != 0 {
		t.Fatalf("weekly mood=%v, want 0 with no entries", avg)
	}
}

func TestDeleteQuestPurgesMoodHistory(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Short lived", 20)
	if _, err := svc.RecordMood(ctx, q.ID, MoodNeutral); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteQuest(ctx, q.ID); err != nil {
		t.Fatal(err)
	}

	history, _ := svc.MoodHistory(ctx)
	if len(history) != 0 {
		t.Fatalf("history survived deletion: %+v", history)
	}
}

func TestCleanupMoodHistory(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	keep := addQuest(t, svc, "Keeper", 20)
	if _, err := svc.RecordMood(ctx, keep.ID, MoodHappy); err != nil {
		t.Fatal(err)
	}

	// Orphan entry written below the service, as an out-of-band deletion
	// would leave behind.
	if _, err := svc.MoodRepo().Insert(ctx, &storage.MoodEntry{
		Date:       DateOf(dayOne),
		Mood:       string(MoodSad),
		QuestID:    "gone-quest",
		QuestTitle: "Vanished",
	}); err != nil {
		t.Fatal(err)
	}

	removed, err := svc.CleanupMoodHistory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Fatalf("removed=%d, want 1", removed)
	}

	history, _ := svc.MoodHistory(ctx)
	if len(history) != 1 || history[0].QuestID != keep.ID {
		t.Fatalf("history=%+v", history)
	}

	// Second pass finds nothing.
	removed, err = svc.CleanupMoodHistory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 0 {
		t.Fatalf("second cleanup removed %d", removed)
	}
}
