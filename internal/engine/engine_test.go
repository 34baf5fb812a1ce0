package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"lifequest/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setClock(svc *Service, at time.Time) {
	svc.now = func() time.Time { return at }
}

// dayOne is an arbitrary fixed noon; streak tests step whole days from it.
var dayOne = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func addQuest(t *testing.T, svc *Service, title string, exp int) *storage.Quest {
	t.Helper()
	q, err := svc.CreateQuest(context.Background(), QuestInput{
		Title:    title,
		Category: CategoryBelajar,
		Priority: PriorityMedium,
		EXP:      exp,
	})
	if err != nil {
		t.Fatalf("CreateQuest(%q): %v", title, err)
	}
	return q
}

func TestCompletionScenario(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	a := addQuest(t, svc, "Read a chapter", 50)
	res, err := svc.CompleteQuest(ctx, a.ID)
	if err != nil {
		t.Fatalf("complete A: %v", err)
	}
	if res.ExpAwarded != 50 || res.LevelAfter != 1 || res.LevelUp {
		t.Fatalf("complete A: got %+v, want +50 EXP at level 1", res)
	}

	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.EXP != 50 || p.Level != 1 || p.TotalQuestsCompleted != 1 || p.CurrentStreak != 1 {
		t.Fatalf("after A: exp=%d level=%d completed=%d streak=%d", p.EXP, p.Level, p.TotalQuestsCompleted, p.CurrentStreak)
	}
	if p.LastCompletionDate == nil || *p.LastCompletionDate != DateOf(dayOne) {
		t.Fatalf("after A: lastCompletionDate=%v, want %s", p.LastCompletionDate, DateOf(dayOne))
	}

	setClock(svc, dayOne.AddDate(0, 0, 1))
	b := addQuest(t, svc, "Morning run", 60)
	res, err = svc.CompleteQuest(ctx, b.ID)
	if err != nil {
		t.Fatalf("complete B: %v", err)
	}
	if !res.LevelUp || res.LevelBefore != 1 || res.LevelAfter != 2 {
		t.Fatalf("complete B: got %+v, want level 1 → 2", res)
	}

	p, _ = svc.Profile(ctx)
	if p.EXP != 110 || p.Level != 2 || p.TotalQuestsCompleted != 2 || p.CurrentStreak != 2 {
		t.Fatalf("after B: exp=%d level=%d completed=%d streak=%d", p.EXP, p.Level, p.TotalQuestsCompleted, p.CurrentStreak)
	}
}

func TestSameDayCompletionKeepsStreak(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	a := addQuest(t, svc, "First", 20)
	b := addQuest(t, svc, "Second", 20)
	if _, err := svc.CompleteQuest(ctx, a.ID); err != nil {
		t.Fatalf("complete first: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, b.ID); err != nil {
		t.Fatalf("complete second: %v", err)
	}

	p, _ := svc.Profile(ctx)
	if p.TotalQuestsCompleted != 2 {
		t.Fatalf("completed=%d, want 2", p.TotalQuestsCompleted)
	}
	if p.CurrentStreak != 1 {
		t.Fatalf("streak=%d, want 1 (same-day completion must not double-count)", p.CurrentStreak)
	}
}

func TestStreakResetAfterGap(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setClock(svc, dayOne)
	if _, err := svc.CompleteQuest(ctx, addQuest(t, svc, "Day 1", 20).ID); err != nil {
		t.Fatal(err)
	}
	setClock(svc, dayOne.AddDate(0, 0, 1))
	if _, err := svc.CompleteQuest(ctx, addQuest(t, svc, "Day 2", 20).ID); err != nil {
		t.Fatal(err)
	}

	p, _ := svc.Profile(ctx)
	if p.CurrentStreak != 2 || p.LongestStreak != 2 {
		t.Fatalf("before gap: current=%d longest=%d, want 2/2", p.CurrentStreak, p.LongestStreak)
	}

	// Two missed days: streak restarts, longest survives.
	setClock(svc, dayOne.AddDate(0, 0, 4))
	if _, err := svc.CompleteQuest(ctx, addQuest(t, svc, "Day 5", 20).ID); err != nil {
		t.Fatal(err)
	}
	p, _ = svc.Profile(ctx)
	if p.CurrentStreak != 1 {
		t.Fatalf("after gap: current=%d, want 1", p.CurrentStreak)
	}
	if p.LongestStreak != 2 {
		t.Fatalf("after gap: longest=%d, want 2", p.LongestStreak)
	}
	if p.LongestStreak < p.CurrentStreak {
		t.Fatalf("longest=%d < current=%d", p.LongestStreak, p.CurrentStreak)
	}
}

func TestCompleteTwiceBlocked(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Once only", 30)
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}

	_, err := svc.CompleteQuest(ctx, q.ID)
	var completed AlreadyCompletedError
	if !errors.As(err, &completed) {
		t.Fatalf("second complete: got %v, want AlreadyCompletedError", err)
	}

	p, _ := svc.Profile(ctx)
	if p.EXP != 30 || p.TotalQuestsCompleted != 1 {
		t.Fatalf("ledger changed by blocked completion: exp=%d completed=%d", p.EXP, p.TotalQuestsCompleted)
	}
}

func TestCompleteNotFound(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.CompleteQuest(context.Background(), "no-such-id")
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestCycleStatus(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Cycle me", 40)

	res, err := svc.CycleStatus(ctx, q.ID)
	if err != nil {
		t.Fatalf("cycle to in-progress: %v", err)
	}
	if res.Quest.Status != string(StatusInProgress) || res.Completed != nil {
		t.Fatalf("first cycle: status=%q completed=%v", res.Quest.Status, res.Completed)
	}
	p, _ := svc.Profile(ctx)
	if p.EXP != 0 || p.TotalQuestsCompleted != 0 {
		t.Fatalf("in-progress transition touched ledger: exp=%d completed=%d", p.EXP, p.TotalQuestsCompleted)
	}

	res, err = svc.CycleStatus(ctx, q.ID)
	if err != nil {
		t.Fatalf("cycle to completed: %v", err)
	}
	if res.Completed == nil || res.Completed.ExpAwarded != 40 {
		t.Fatalf("second cycle: completed=%+v, want +40 EXP", res.Completed)
	}
	if res.Quest.DateCompleted == nil || *res.Quest.DateCompleted != DateOf(dayOne) {
		t.Fatalf("dateCompleted=%v, want %s", res.Quest.DateCompleted, DateOf(dayOne))
	}

	// Completed is terminal with respect to the cycle.
	_, err = svc.CycleStatus(ctx, q.ID)
	var completed AlreadyCompletedError
	if !errors.As(err, &completed) {
		t.Fatalf("third cycle: got %v, want AlreadyCompletedError", err)
	}
}

func TestDeleteCompletedQuestReversal(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Give it back", 50)
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteQuest(ctx, q.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	p, _ := svc.Profile(ctx)
	if p.EXP != 0 || p.TotalQuestsCompleted != 0 {
		t.Fatalf("after deletion: exp=%d completed=%d, want 0/0", p.EXP, p.TotalQuestsCompleted)
	}
	got, _ := svc.QuestRepo().Get(ctx, q.ID)
	if got != nil {
		t.Fatalf("quest still present after deletion")
	}
}

func TestDeletePendingQuestLeavesLedger(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	done := addQuest(t, svc, "Keep", 50)
	if _, err := svc.CompleteQuest(ctx, done.ID); err != nil {
		t.Fatal(err)
	}

	pending := addQuest(t, svc, "Discard", 100)
	if err := svc.DeleteQuest(ctx, pending.ID); err != nil {
		t.Fatalf("delete pending: %v", err)
	}

	p, _ := svc.Profile(ctx)
	if p.EXP != 50 || p.TotalQuestsCompleted != 1 {
		t.Fatalf("pending deletion touched ledger: exp=%d completed=%d", p.EXP, p.TotalQuestsCompleted)
	}
}

func TestEditCompletedQuestExpDelta(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Reprice me", 50)
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatal(err)
	}

	in := QuestInput{Title: q.Title, Category: Category(q.Category), Priority: Priority(q.Priority), EXP: 80}
	if _, err := svc.UpdateQuest(ctx, q.ID, in); err != nil {
		t.Fatalf("edit up: %v", err)
	}
	p, _ := svc.Profile(ctx)
	if p.EXP != 80 {
		t.Fatalf("after edit 50→80: exp=%d, want 80", p.EXP)
	}
	if p.TotalQuestsCompleted != 1 {
		t.Fatalf("edit changed completion count: %d", p.TotalQuestsCompleted)
	}

	in.EXP = 50
	if _, err := svc.UpdateQuest(ctx, q.ID, in); err != nil {
		t.Fatalf("edit down: %v", err)
	}
	p, _ = svc.Profile(ctx)
	if p.EXP != 50 {
		t.Fatalf("after edit 80→50: exp=%d, want 50", p.EXP)
	}

	// dateCompleted survives edits.
	got, _ := svc.QuestRepo().Get(ctx, q.ID)
	if got.DateCompleted == nil || *got.DateCompleted != DateOf(dayOne) {
		t.Fatalf("edit cleared dateCompleted: %v", got.DateCompleted)
	}
}

func TestEditPendingQuestNeverTouchesLedger(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	q := addQuest(t, svc, "Still pending", 50)
	in := QuestInput{Title: q.Title, Category: Category(q.Category), Priority: Priority(q.Priority), EXP: 500}
	if _, err := svc.UpdateQuest(ctx, q.ID, in); err != nil {
		t.Fatalf("edit: %v", err)
	}

	p, _ := svc.Profile(ctx)
	if p.EXP != 0 {
		t.Fatalf("pending edit touched ledger: exp=%d", p.EXP)
	}
}

func TestExpFloorClamping(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.AddExp(ctx, 30); err != nil {
		t.Fatal(err)
	}
	p, err := svc.SubtractExp(ctx, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if p.EXP != 0 || p.Level != 1 {
		t.Fatalf("after subtract: exp=%d level=%d, want 0/1", p.EXP, p.Level)
	}

	p, err = svc.RemoveCompletedQuest(ctx, 9999)
	if err != nil {
		t.Fatal(err)
	}
	if p.EXP != 0 || p.TotalQuestsCompleted != 0 {
		t.Fatalf("after removal: exp=%d completed=%d, want 0/0", p.EXP, p.TotalQuestsCompleted)
	}
}

func TestLevelHealedOnRead(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	p, err := svc.ProfileRepo().GetOrCreateMain(ctx)
	if err != nil {
		t.Fatal(err)
	}
	p.EXP = 500
	p.Level = 9 // deliberately wrong; level is a projection of EXP
	if err := svc.ProfileRepo().Update(ctx, p); err != nil {
		t.Fatal(err)
	}

	healed, err := svc.Profile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if healed.Level != Level(500) {
		t.Fatalf("level=%d, want %d", healed.Level, Level(500))
	}
}

func TestNotifierSignals(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setClock(svc, dayOne)

	var seen []EventKind
	svc.Subscribe(func(ev Event) {
		seen = append(seen, ev.Kind)
	})

	q := addQuest(t, svc, "Signal", 50)
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordMood(ctx, q.ID, MoodHappy); err != nil {
		t.Fatal(err)
	}

	want := map[EventKind]bool{
		EventQuestsChanged:  false,
		EventProfileChanged: false,
		EventMoodChanged:    false,
	}
	for _, k := range seen {
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, ok := range want {
		if !ok {
			t.Errorf("signal %s was never emitted", k)
		}
	}
}
