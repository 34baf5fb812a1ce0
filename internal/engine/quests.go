package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"lifequest/internal/storage"
)

type QuestInput struct {
	Title       string
	Description string
	Category    Category
	Priority    Priority
	EXP         int
}

// CreateQuest stores a new pending quest dated today.
func (s *Service) CreateQuest(ctx context.Context, in QuestInput) (*storage.Quest, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	category := in.Category
	if !category.IsValid() {
		category = DefaultCategory
	}
	priority := in.Priority
	if !priority.IsValid() {
		priority = PriorityMedium
	}

	q := &storage.Quest{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Category:    string(category),
		Priority:    string(priority),
		Status:      string(StatusPending),
		EXP:         in.EXP,
		DateCreated: s.today(),
	}
	if err := s.quests.Save(ctx, q); err != nil {
		return nil, err
	}
	s.notify(EventQuestsChanged)
	return q, nil
}

// UpdateQuest edits a quest's fields. Editing a completed quest's reward
// applies the signed delta to the ledger; the completion counter and the
// quest's dateCompleted stay as they were. Editing a non-completed quest
// never touches the ledger. Any live EXP preview is cleared once the edit
// commits.
func (s *Service) UpdateQuest(ctx context.Context, id string, in QuestInput) (*storage.Quest, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	q, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, NotFoundError{QuestID: id}
	}

	if q.Status == string(StatusCompleted) {
		diff := in.EXP - q.EXP
		switch {
		case diff > 0:
			if _, err := s.AddExp(ctx, diff); err != nil {
				return nil, err
			}
		case diff < 0:
			if _, err := s.SubtractExp(ctx, -diff); err != nil {
				return nil, err
			}
		}
	}

	q.Title = title
	q.Description = in.Description
	if in.Category.IsValid() {
		q.Category = string(in.Category)
	}
	if in.Priority.IsValid() {
		q.Priority = string(in.Priority)
	}
	q.EXP = in.EXP

	if err := s.quests.Save(ctx, q); err != nil {
		return nil, err
	}
	s.ClearExpPreview()
	s.notify(EventQuestsChanged)
	return q, nil
}

type CycleResult struct {
	Quest *storage.Quest
	// Completed is set when the cycle step landed on completed and the
	// full completion workflow ran.
	Completed *CompleteResult
}

// CycleStatus advances the quest one step: pending → in-progress →
// completed. Only the step into completed has ledger side effects. A
// completed quest cannot cycle further.
func (s *Service) CycleStatus(ctx context.Context, id string) (*CycleResult, error) {
	q, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, NotFoundError{QuestID: id}
	}

	switch Status(q.Status) {
	case StatusPending:
		q.Status = string(StatusInProgress)
		if err := s.quests.Save(ctx, q); err != nil {
			return nil, err
		}
		s.notify(EventQuestsChanged)
		return &CycleResult{Quest: q}, nil
	case StatusInProgress:
		res, err := s.CompleteQuest(ctx, id)
		if err != nil {
			return nil, err
		}
		q, err = s.quests.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &CycleResult{Quest: q, Completed: res}, nil
	case StatusCompleted:
		return nil, AlreadyCompletedError{QuestID: id}
	default:
		return nil, fmt.Errorf("quest %s has unknown status %q", id, q.Status)
	}
}

// DeleteQuest removes the quest and its mood history. Deleting a completed
// quest first reverses its ledger contribution (EXP and completion count).
func (s *Service) DeleteQuest(ctx context.Context, id string) error {
	q, err := s.quests.Get(ctx, id)
	if err != nil {
		return err
	}
	if q == nil {
		return NotFoundError{QuestID: id}
	}

	if q.Status == string(StatusCompleted) {
		if _, err := s.RemoveCompletedQuest(ctx, q.EXP); err != nil {
			return err
		}
	}

	var moodRemoved int64
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		n, err := storage.NewMoodRepo(tx).DeleteByQuest(ctx, id)
		if err != nil {
			return err
		}
		moodRemoved = n
		return storage.NewQuestRepo(tx).Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete quest %s: %w", id, err)
	}

	s.notify(EventQuestsChanged)
	if moodRemoved > 0 {
		s.notify(EventMoodChanged)
	}
	return nil
}
