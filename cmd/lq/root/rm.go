package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
		Long: `Delete a quest and its mood history.

Deleting a completed quest also reverses its reward: the EXP it granted
and the completion it counted are removed from your ledger.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveQuestID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			q, err := svc.QuestRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if q == nil {
				return engine.NotFoundError{QuestID: id}
			}

			if err := svc.DeleteQuest(ctx, id); err != nil {
				return err
			}

			line := fmt.Sprintf("%s %s", ui.Warn.Render(ui.IconTrash+" Deleted"), q.Title)
			if q.Status == string(engine.StatusCompleted) {
				line += " " + ui.Muted.Render(fmt.Sprintf("(-%d EXP, completion uncounted)", q.EXP))
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	return cmd
}
