package engine

import "fmt"

// NotFoundError indicates an operation addressed a quest id with no record.
type NotFoundError struct {
	QuestID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("quest %s not found", e.QuestID)
}

// AlreadyCompletedError indicates an attempt to move a completed quest
// through the status cycle. Completed is terminal; only deletion or an
// explicit edit touches a completed quest.
type AlreadyCompletedError struct {
	QuestID string
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("quest %s is already completed", e.QuestID)
}
