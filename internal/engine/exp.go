package engine

import (
	"context"
	"fmt"

	"lifequest/internal/storage"
)

// AddExp credits n EXP to the ledger and recomputes the level. The first
// level increase in the profile's lifetime also unlocks the shared
// level_up achievement; later level-ups hit the idempotent unlock and
// produce nothing.
func (s *Service) AddExp(ctx context.Context, n int) (*storage.Profile, error) {
	p, _, err := s.addExp(ctx, n)
	return p, err
}

func (s *Service) addExp(ctx context.Context, n int) (*storage.Profile, *storage.Achievement, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, nil, err
	}

	p.EXP += n
	newLevel := Level(p.EXP)
	leveledUp := newLevel > p.Level
	p.Level = newLevel
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, nil, err
	}
	s.notify(EventProfileChanged)

	var unlocked *storage.Achievement
	if leveledUp {
		unlocked, err = s.Unlock(ctx, AchievementLevelUp, fmt.Sprintf("Level %d Achieved!", newLevel))
		if err != nil {
			return nil, nil, err
		}
	}
	return p, unlocked, nil
}

// SubtractExp debits n EXP, floor-clamped at 0, and recomputes the level.
// Completion counters are untouched; this is the completed-quest
// edited-downward path.
func (s *Service) SubtractExp(ctx context.Context, n int) (*storage.Profile, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}

	p.EXP -= n
	if p.EXP < 0 {
		p.EXP = 0
	}
	p.Level = Level(p.EXP)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	s.notify(EventProfileChanged)
	return p, nil
}

// RemoveCompletedQuest reverses a completed quest's contribution when it is
// deleted: EXP and the completion counter both drop, floor-clamped at 0.
func (s *Service) RemoveCompletedQuest(ctx context.Context, exp int) (*storage.Profile, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}

	p.EXP -= exp
	if p.EXP < 0 {
		p.EXP = 0
	}
	p.TotalQuestsCompleted--
	if p.TotalQuestsCompleted < 0 {
		p.TotalQuestsCompleted = 0
	}
	p.Level = Level(p.EXP)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	s.notify(EventProfileChanged)
	return p, nil
}
