package engine

import (
	"context"

	"lifequest/internal/storage"
)

type CompleteResult struct {
	QuestID       string
	ExpAwarded    int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	CurrentStreak int
	LongestStreak int
	// Unlocked lists achievements newly earned by this completion,
	// including the level_up unlock when this was the first level-up ever.
	Unlocked []storage.Achievement
}

// CompleteQuest runs the full completion workflow: mark the quest
// completed with today's local date, credit its EXP, update the completion
// counter and streak, then re-evaluate achievements. Completed is terminal,
// so completing twice fails with AlreadyCompletedError.
//
// Mood recording is deliberately not part of this workflow; the caller
// collects a mood afterwards and calls RecordMood.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*CompleteResult, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level

	q, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, NotFoundError{QuestID: id}
	}
	if q.Status == string(StatusCompleted) {
		return nil, AlreadyCompletedError{QuestID: id}
	}

	now := s.now()
	today := DateOf(now)

	q.Status = string(StatusCompleted)
	q.DateCompleted = &today
	if err := s.quests.Save(ctx, q); err != nil {
		return nil, err
	}
	s.notify(EventQuestsChanged)

	p, levelUpAch, err := s.addExp(ctx, q.EXP)
	if err != nil {
		return nil, err
	}

	applyCompletionStreak(p, now)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	s.notify(EventProfileChanged)

	unlocked, err := s.CheckAchievements(ctx)
	if err != nil {
		return nil, err
	}
	if levelUpAch != nil {
		unlocked = append([]storage.Achievement{*levelUpAch}, unlocked...)
	}

	return &CompleteResult{
		QuestID:       q.ID,
		ExpAwarded:    q.EXP,
		LevelBefore:   levelBefore,
		LevelAfter:    p.Level,
		LevelUp:       p.Level > levelBefore,
		CurrentStreak: p.CurrentStreak,
		LongestStreak: p.LongestStreak,
		Unlocked:      unlocked,
	}, nil
}
