package engine

import (
	"time"

	"lifequest/internal/storage"
)

// applyCompletionStreak records one quest completion on the ledger at the
// given wall-clock time. It runs once per completion, not per EXP change.
//
// The completion counter always increments. The streak compares local
// calendar dates only: a second completion on the same day leaves the
// streak alone, a completion the day after the last one extends it, and
// anything else restarts it at 1. There is no missed-day sweep; a lapsed
// streak stays stale until the next completion resets it here.
func applyCompletionStreak(p *storage.Profile, now time.Time) {
	p.TotalQuestsCompleted++

	today := DateOf(now)
	if p.LastCompletionDate != nil && *p.LastCompletionDate == today {
		return
	}

	yesterday := DateOf(now.AddDate(0, 0, -1))
	if p.LastCompletionDate != nil && *p.LastCompletionDate == yesterday {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 1
	}

	d := today
	p.LastCompletionDate = &d

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
}
