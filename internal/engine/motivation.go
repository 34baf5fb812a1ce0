package engine

import (
	"context"
	"fmt"
	"math/rand"

	"lifequest/internal/storage"
)

var baseMessages = map[MotivationMode][]string{
	ModeWarrior: {
		"⚔️ Time to conquer your quests! No mercy for unfinished tasks!",
		"🔥 Your determination burns bright! Show those quests who's boss!",
		"💪 Every completed quest makes you stronger! Keep pushing forward!",
		"⚡ Strike while the iron is hot! Your quests await your command!",
		"🎯 Focus like a warrior! Your targets are within reach!",
	},
	ModeHealer: {
		"💚 Take it one quest at a time. You're doing great!",
		"🌸 Remember to be kind to yourself. Progress, not perfection!",
		"🌱 Every small step counts. You're growing stronger each day!",
		"💫 You've got this! Trust in your ability to complete your quests!",
		"🕊️ Breathe deeply and tackle your quests with calm determination!",
	},
	ModeRogue: {
		"😏 Sneaky quest completion mode activated! Let's do this quietly!",
		"🎭 Time to put on your quest-completing mask and show off!",
		"🦹 Stealth mode: complete quests before anyone notices!",
		"🎪 Life's a stage, and you're the star of your own quest show!",
		"🃏 Deal yourself a winning hand with these quests!",
	},
}

// MotivationMessages returns the message pool for the profile's mode plus
// contextual extras earned by its stats.
func MotivationMessages(mode MotivationMode, p *storage.Profile) []string {
	if !mode.IsValid() {
		mode = DefaultMode
	}
	messages := append([]string{}, baseMessages[mode]...)

	if p.CurrentStreak >= 3 {
		messages = append(messages, "🔥 Your streak is on fire! Keep the momentum going!")
	}
	if p.Level >= 5 {
		messages = append(messages, "⭐ You're becoming a quest master! Level up your game!")
	}
	if p.TotalQuestsCompleted >= 10 {
		messages = append(messages, "🏆 Quest completion champion! You're unstoppable!")
	}
	return messages
}

// MotivationMessage picks one message for the current profile.
func (s *Service) MotivationMessage(ctx context.Context) (string, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return "", err
	}
	messages := MotivationMessages(MotivationMode(p.MotivationMode), p)
	return messages[rand.Intn(len(messages))], nil
}

// Reminders are suppressed during quiet hours (22:00–06:00 local).
const (
	quietHourStart = 22
	quietHourEnd   = 6
)

// ReminderMessage returns a nudge about open quests, at most once per local
// calendar day and never during quiet hours. Returns "" when no reminder is
// due.
func (s *Service) ReminderMessage(ctx context.Context) (string, error) {
	now := s.now()
	if now.Hour() >= quietHourStart || now.Hour() < quietHourEnd {
		return "", nil
	}

	p, err := s.getProfile(ctx)
	if err != nil {
		return "", err
	}
	today := DateOf(now)
	if p.LastReminderDate != nil && *p.LastReminderDate == today {
		return "", nil
	}

	quests, err := s.quests.ListAll(ctx)
	if err != nil {
		return "", err
	}
	counts := CountQuests(quests)
	if counts.Pending == 0 && counts.InProgress == 0 {
		return "", nil
	}

	p.LastReminderDate = &today
	if err := s.profiles.Update(ctx, p); err != nil {
		return "", err
	}

	plural := ""
	if counts.Pending != 1 {
		plural = "s"
	}
	return fmt.Sprintf("🎯 %d quest%s ready to start, %d in progress!", counts.Pending, plural, counts.InProgress), nil
}
