package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newDoCmd() *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
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

			res, err := svc.CompleteQuest(ctx, id)
			if err != nil {
				return err
			}
			printCompletion(cmd, q.Title, res)

			if mood != "" {
				entry, err := svc.RecordMood(ctx, id, engine.Mood(mood))
				if err != nil {
					return err
				}
				if entry != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconMood, entry.Mood)
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Record how it felt: lq mood "+id[:8]+" <emoji>"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood to record (😊 😐 😔 🤔 😴 🔥 💪 🎯)")

	return cmd
}

func printCompletion(cmd *cobra.Command, title string, res *engine.CompleteResult) {
	line := fmt.Sprintf("%s %s %s",
		ui.Good.Render(ui.IconDone+" Completed"),
		title,
		ui.Muted.Render(fmt.Sprintf("(+%d EXP)", res.ExpAwarded)))
	fmt.Fprintln(cmd.OutOrStdout(), line)

	if res.LevelUp {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			ui.BadgeLevelUp,
			ui.Muted.Render(fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter)))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
		ui.Warn.Render(fmt.Sprintf("%s %d day streak", ui.IconStreak, res.CurrentStreak)))

	for _, a := range res.Unlocked {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s — %s\n",
			ui.Gold.Render(ui.IconTrophy+" Achievement unlocked:"),
			a.Icon, a.Name, ui.Muted.Render(a.Description))
	}
}
