package engine

import (
	"context"

	"lifequest/internal/storage"
)

// Fixed achievement catalog. Unlocking is idempotent per id, so each of
// these exists at most once in the ledger.
const (
	AchievementFirst10       = "first_10"
	AchievementWeekStreak    = "week_streak"
	AchievementLevel5        = "level_5"
	AchievementDiverseQuests = "diverse_quests"
	AchievementLevelUp       = "level_up"
)

var achievementDescriptions = map[string]string{
	AchievementFirst10:       "Complete your first 10 quests!",
	AchievementWeekStreak:    "Maintain a 7-day quest streak!",
	AchievementLevel5:        "Reach level 5!",
	AchievementDiverseQuests: "Complete quests in 5 different categories!",
	AchievementLevelUp:       "Level up!",
}

var achievementIcons = map[string]string{
	AchievementFirst10:       "🎯",
	AchievementWeekStreak:    "🔥",
	AchievementLevel5:        "⭐",
	AchievementDiverseQuests: "🗺️",
	AchievementLevelUp:       "⬆️",
}

func achievementDescription(id string) string {
	if d, ok := achievementDescriptions[id]; ok {
		return d
	}
	return "Achievement unlocked!"
}

func achievementIcon(id string) string {
	if icon, ok := achievementIcons[id]; ok {
		return icon
	}
	return "🏆"
}

func achievementCategory(id string) string {
	switch id {
	case AchievementLevel5, AchievementLevelUp, AchievementFirst10:
		return "milestone"
	case AchievementWeekStreak:
		return "consistency"
	default:
		return "productivity"
	}
}

// Unlock records the achievement if its id has never been unlocked. It
// returns (nil, nil) when the id already exists, making repeated unlocks
// harmless no-ops.
func (s *Service) Unlock(ctx context.Context, id, name string) (*storage.Achievement, error) {
	existing, err := s.achievements.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	a := &storage.Achievement{
		ID:          id,
		Name:        name,
		Description: achievementDescription(id),
		Icon:        achievementIcon(id),
		Category:    achievementCategory(id),
		UnlockedAt:  s.now(),
	}
	if err := s.achievements.Insert(ctx, a); err != nil {
		return nil, err
	}
	s.notify(EventAchievementUnlocked)
	return a, nil
}

// CheckAchievements evaluates the rule catalog against the ledger and the
// quest records and unlocks whatever newly qualifies. Rules are independent
// predicates; evaluation order does not matter. The level_up rule is not
// here — AddExp triggers it directly on a level increase.
func (s *Service) CheckAchievements(ctx context.Context) ([]storage.Achievement, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	quests, err := s.quests.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type rule struct {
		id, name  string
		satisfied bool
	}
	rules := []rule{
		{AchievementFirst10, "Quest Novice", p.TotalQuestsCompleted >= 10},
		{AchievementWeekStreak, "Consistency Master", p.CurrentStreak >= 7},
		{AchievementLevel5, "Rising Star", p.Level >= 5},
		{AchievementDiverseQuests, "Quest Explorer", distinctCategories(quests) >= 5},
	}

	var unlocked []storage.Achievement
	for _, r := range rules {
		if !r.satisfied {
			continue
		}
		a, err := s.Unlock(ctx, r.id, r.name)
		if err != nil {
			return nil, err
		}
		if a != nil {
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked, nil
}

// distinctCategories counts categories across all quests, completed or not.
func distinctCategories(quests []storage.Quest) int {
	seen := map[string]bool{}
	for _, q := range quests {
		seen[q.Category] = true
	}
	return len(seen)
}

// Achievements returns the unlocked records in unlock order.
func (s *Service) Achievements(ctx context.Context) ([]storage.Achievement, error) {
	return s.achievements.ListAll(ctx)
}
