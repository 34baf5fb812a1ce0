package root

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"lifequest/internal/engine"
	"lifequest/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	cfg := loadConfig()
	path, err := storage.ResolveDBPath(cfg.DB.Path)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db)

	// Heal mood history left inconsistent by out-of-band deletions.
	if n, err := svc.CleanupMoodHistory(ctx); err != nil {
		slog.Warn("mood history cleanup failed", "error", err)
	} else if n > 0 {
		slog.Debug("purged orphaned mood entries", "count", n)
	}

	return svc, cleanup, nil
}

// resolveQuestID accepts a full quest id or a unique prefix of one.
func resolveQuestID(ctx context.Context, svc *engine.Service, arg string) (string, error) {
	quests, err := svc.QuestRepo().ListAll(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, q := range quests {
		if q.ID == arg {
			return q.ID, nil
		}
		if strings.HasPrefix(q.ID, arg) {
			matches = append(matches, q.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", engine.NotFoundError{QuestID: arg}
	default:
		return "", fmt.Errorf("quest id prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}
