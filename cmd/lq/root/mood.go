package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newMoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood <id> <emoji>",
		Short: "Record how a completed quest felt",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and mood are required")
			}
			if !engine.Mood(args[1]).IsValid() {
				return fmt.Errorf("invalid mood %q (use one of 😊 😐 😔 🤔 😴 🔥 💪 🎯)", args[1])
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
			entry, err := svc.RecordMood(ctx, id, engine.Mood(args[1]))
			if err != nil {
				return err
			}

			weekly, err := svc.WeeklyMood(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconMood+" Recorded"),
				entry.Mood,
				ui.Muted.Render(fmt.Sprintf("for %q", entry.QuestTitle)))
			if weekly > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Weekly mood", fmt.Sprintf("%.1f/5", weekly)))
			}
			return nil
		},
	}

	return cmd
}
