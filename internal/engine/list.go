package engine

import (
	"sort"
	"strings"

	"lifequest/internal/storage"
)

type QuestFilter struct {
	Status   Status   // empty = any
	Category Category // empty = any
	Search   string   // substring match on title/description
}

// FilterQuests returns the quests matching every set filter field.
func FilterQuests(quests []storage.Quest, f QuestFilter) []storage.Quest {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var out []storage.Quest
	for _, q := range quests {
		if f.Status != "" && q.Status != string(f.Status) {
			continue
		}
		if f.Category != "" && q.Category != string(f.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(q.Title), search) &&
			!strings.Contains(strings.ToLower(q.Description), search) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// statusRank orders pending before in-progress before completed.
func statusRank(s Status) int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	default:
		return 2
	}
}

// SortQuests orders by status (pending first, completed last), then by
// priority high to low.
func SortQuests(quests []storage.Quest) {
	sort.SliceStable(quests, func(i, j int) bool {
		si, sj := statusRank(Status(quests[i].Status)), statusRank(Status(quests[j].Status))
		if si != sj {
			return si < sj
		}
		return priorityRank(Priority(quests[i].Priority)) < priorityRank(Priority(quests[j].Priority))
	})
}

type QuestCounts struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

func CountQuests(quests []storage.Quest) QuestCounts {
	c := QuestCounts{Total: len(quests)}
	for _, q := range quests {
		switch Status(q.Status) {
		case StatusPending:
			c.Pending++
		case StatusInProgress:
			c.InProgress++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}
