package engine

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus parses user input to a Status. Unrecognized input returns
// StatusPending with ok=false.
func ParseStatus(input string) (Status, bool) {
	s := Status(strings.TrimSpace(strings.ToLower(input)))
	if s.IsValid() {
		return s, true
	}
	return StatusPending, false
}

type Category string

const (
	CategoryBelajar   Category = "Belajar"
	CategoryKerja     Category = "Kerja"
	CategoryKesehatan Category = "Kesehatan"
	CategorySosial    Category = "Sosial"
	CategoryHobi      Category = "Hobi"
	CategoryRumah     Category = "Rumah"
	CategoryLainnya   Category = "Lainnya"
)

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory = CategoryBelajar

func Categories() []Category {
	return []Category{
		CategoryBelajar, CategoryKerja, CategoryKesehatan, CategorySosial,
		CategoryHobi, CategoryRumah, CategoryLainnya,
	}
}

func (c Category) IsValid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCategory matches case-insensitively and falls back to DefaultCategory.
func ParseCategory(input string) Category {
	s := strings.TrimSpace(strings.ToLower(input))
	for _, v := range Categories() {
		if s == strings.ToLower(string(v)) {
			return v
		}
	}
	return DefaultCategory
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func ParsePriority(input string) Priority {
	p := Priority(strings.TrimSpace(strings.ToLower(input)))
	if p.IsValid() {
		return p
	}
	return PriorityMedium
}

// priorityRank orders priorities high first for list sorting.
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Mood string

const (
	MoodHappy     Mood = "😊"
	MoodNeutral   Mood = "😐"
	MoodSad       Mood = "😔"
	MoodThinking  Mood = "🤔"
	MoodTired     Mood = "😴"
	MoodFired     Mood = "🔥"
	MoodStrong    Mood = "💪"
	MoodFocused   Mood = "🎯"
)

func Moods() []Mood {
	return []Mood{
		MoodHappy, MoodNeutral, MoodSad, MoodThinking,
		MoodTired, MoodFired, MoodStrong, MoodFocused,
	}
}

func (m Mood) IsValid() bool {
	for _, v := range Moods() {
		if m == v {
			return true
		}
	}
	return false
}

// MoodValue maps a mood to its numeric score for weekly averaging.
// Unknown moods score as neutral-ish 3.
func MoodValue(m Mood) int {
	switch m {
	case MoodSad:
		return 1
	case MoodNeutral, MoodTired:
		return 2
	case MoodThinking:
		return 3
	case MoodHappy, MoodFocused:
		return 4
	case MoodFired, MoodStrong:
		return 5
	default:
		return 3
	}
}

type MotivationMode string

const (
	ModeWarrior MotivationMode = "warrior"
	ModeHealer  MotivationMode = "healer"
	ModeRogue   MotivationMode = "rogue"
)

// DefaultMode is used when the stored mode is missing/invalid.
const DefaultMode = ModeWarrior

func (m MotivationMode) IsValid() bool {
	switch m {
	case ModeWarrior, ModeHealer, ModeRogue:
		return true
	default:
		return false
	}
}

func ParseMotivationMode(input string) MotivationMode {
	m := MotivationMode(strings.TrimSpace(strings.ToLower(input)))
	if m.IsValid() {
		return m
	}
	return DefaultMode
}

// EXP bounds enforced by the input layer; the engine itself only assumes
// non-negative values.
const (
	MinQuestEXP = 10
	MaxQuestEXP = 500
)

// ClampEXP coerces a reward value into the [MinQuestEXP, MaxQuestEXP] range.
func ClampEXP(exp int) int {
	if exp < MinQuestEXP {
		return MinQuestEXP
	}
	if exp > MaxQuestEXP {
		return MaxQuestEXP
	}
	return exp
}

const dateLayout = "2006-01-02"

// DateOf returns the local calendar date (YYYY-MM-DD) of t. Streak and mood
// comparisons work on these strings, never on timestamps.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate interprets a YYYY-MM-DD string as local midnight.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
