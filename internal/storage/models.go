package storage

import "time"

type Profile struct {
	Key                  string
	EXP                  int
	Level                int
	TotalQuestsCompleted int
	CurrentStreak        int
	LongestStreak        int
	// Local calendar date (YYYY-MM-DD) of the last day with at least one
	// completion, or nil before the first completion.
	LastCompletionDate *string
	MotivationMode     string
	DailyGoal          int
	WeeklyGoal         int
	LastReminderDate   *string
}

type Quest struct {
	ID          string
	Title       string
	Description string
	Category    string
	Priority    string
	Status      string
	EXP         int
	DateCreated string // YYYY-MM-DD, immutable
	// Set when the quest first transitions to completed; never cleared,
	// even if the quest is later edited.
	DateCompleted *string
	Mood          *string
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	UnlockedAt  time.Time
}

type MoodEntry struct {
	ID         int64
	Date       string // YYYY-MM-DD
	Mood       string
	QuestID    string // back-reference only; the quest row is not owned
	QuestTitle string // snapshot of the title at entry time
}
