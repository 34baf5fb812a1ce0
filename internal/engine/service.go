package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lifequest/internal/storage"
)

type Service struct {
	db           *sql.DB
	profiles     *storage.ProfileRepo
	quests       *storage.QuestRepo
	achievements *storage.AchievementRepo
	moods        *storage.MoodRepo

	fanout *Fanout
	now    func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:           db,
		profiles:     storage.NewProfileRepo(db),
		quests:       storage.NewQuestRepo(db),
		achievements: storage.NewAchievementRepo(db),
		moods:        storage.NewMoodRepo(db),
		fanout:       NewFanout(),
		now:          time.Now,
	}
}

func (s *Service) ProfileRepo() *storage.ProfileRepo         { return s.profiles }
func (s *Service) QuestRepo() *storage.QuestRepo             { return s.quests }
func (s *Service) AchievementRepo() *storage.AchievementRepo { return s.achievements }
func (s *Service) MoodRepo() *storage.MoodRepo               { return s.moods }

// Subscribe registers an observer for post-mutation events.
func (s *Service) Subscribe(fn func(Event)) {
	s.fanout.Subscribe(fn)
}

func (s *Service) notify(kind EventKind) {
	slog.Debug("event", "kind", kind.String())
	s.fanout.Notify(Event{Kind: kind})
}

func (s *Service) today() string {
	return DateOf(s.now())
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// getProfile loads the singleton ledger and heals the stored level if it
// drifted from the EXP-derived value. Level is a projection of EXP, never
// an independently edited field.
func (s *Service) getProfile(ctx context.Context) (*storage.Profile, error) {
	p, err := s.profiles.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	computed := Level(p.EXP)
	if p.Level != computed {
		p.Level = computed
		if err := s.profiles.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Profile exposes the healed ledger for read-only display.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	return s.getProfile(ctx)
}

// UpdateGoals sets the daily and weekly quest targets.
func (s *Service) UpdateGoals(ctx context.Context, daily, weekly int) (*storage.Profile, error) {
	if daily <= 0 || weekly <= 0 {
		return nil, fmt.Errorf("goals must be positive (got daily=%d weekly=%d)", daily, weekly)
	}
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	p.DailyGoal = daily
	p.WeeklyGoal = weekly
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	s.notify(EventProfileChanged)
	return p, nil
}

// UpdateMotivationMode stores the user's preferred motivation style. The
// mode never affects progression rules.
func (s *Service) UpdateMotivationMode(ctx context.Context, mode MotivationMode) (*storage.Profile, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid motivation mode: %q", mode)
	}
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	p.MotivationMode = string(mode)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	s.notify(EventProfileChanged)
	return p, nil
}

// ResetAllData wipes quests, the ledger, achievements, and mood history in
// one transaction, then signals every observer.
func (s *Service) ResetAllData(ctx context.Context) error {
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewQuestRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := storage.NewAchievementRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := storage.NewMoodRepo(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return storage.NewProfileRepo(tx).Delete(ctx, storage.MainProfileKey)
	})
	if err != nil {
		return fmt.Errorf("reset all data: %w", err)
	}

	s.notify(EventQuestsChanged)
	s.notify(EventProfileChanged)
	s.notify(EventAchievementUnlocked)
	s.notify(EventMoodChanged)
	return nil
}
