package engine

import (
	"context"
	"fmt"

	"lifequest/internal/storage"
)

// RecordMood ties a mood to a completed quest: the quest row keeps the
// mood, and an entry with today's date and a title snapshot is appended to
// the mood history. An empty mood is a no-op.
func (s *Service) RecordMood(ctx context.Context, questID string, mood Mood) (*storage.MoodEntry, error) {
	if mood == "" {
		return nil, nil
	}
	if !mood.IsValid() {
		return nil, fmt.Errorf("invalid mood: %q", mood)
	}

	q, err := s.quests.Get(ctx, questID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, NotFoundError{QuestID: questID}
	}

	m := string(mood)
	q.Mood = &m
	if err := s.quests.Save(ctx, q); err != nil {
		return nil, err
	}
	s.notify(EventQuestsChanged)

	entry := &storage.MoodEntry{
		Date:       s.today(),
		Mood:       m,
		QuestID:    q.ID,
		QuestTitle: q.Title,
	}
	id, err := s.moods.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	s.notify(EventMoodChanged)
	return entry, nil
}

func (s *Service) MoodHistory(ctx context.Context) ([]storage.MoodEntry, error) {
	return s.moods.ListAll(ctx)
}

// WeeklyMood averages the numeric mood values of entries dated within the
// last 7 days. Returns 0 when the window is empty.
func (s *Service) WeeklyMood(ctx context.Context) (float64, error) {
	entries, err := s.moods.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	weekAgo := s.now().AddDate(0, 0, -7)
	sum, n := 0, 0
	for _, e := range entries {
		d, ok := ParseDate(e.Date)
		if !ok || d.Before(weekAgo) {
			continue
		}
		sum += MoodValue(Mood(e.Mood))
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

// CleanupMoodHistory removes entries whose quest no longer exists. It heals
// history left inconsistent by out-of-band deletions, runs at application
// start, and is safe to run repeatedly. Returns how many entries were
// purged.
func (s *Service) CleanupMoodHistory(ctx context.Context) (int, error) {
	quests, err := s.quests.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	ids := make(map[string]bool, len(quests))
	for _, q := range quests {
		ids[q.ID] = true
	}

	entries, err := s.moods.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if ids[e.QuestID] {
			continue
		}
		if err := s.moods.DeleteByID(ctx, e.ID); err != nil {
			return removed, err
		}
		removed++
	}
	if removed > 0 {
		s.notify(EventMoodChanged)
	}
	return removed, nil
}
