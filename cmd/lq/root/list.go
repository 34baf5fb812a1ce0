package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newListCmd() *cobra.Command {
	var status string
	var category string
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			all, err := svc.QuestRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			filter := engine.QuestFilter{Search: search}
			if status != "" {
				st, ok := engine.ParseStatus(status)
				if !ok {
					return fmt.Errorf("invalid status %q (pending|in-progress|completed)", status)
				}
				filter.Status = st
			}
			if category != "" {
				filter.Category = engine.ParseCategory(category)
			}

			quests := engine.FilterQuests(all, filter)
			engine.SortQuests(quests)

			counts := engine.CountQuests(all)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Heading(ui.IconQuest, "Quests"),
				ui.Muted.Render(fmt.Sprintf("%d total · %d pending · %d in progress · %d completed",
					counts.Total, counts.Pending, counts.InProgress, counts.Completed)))

			if len(quests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing matches."))
				return nil
			}
			for _, q := range quests {
				line := fmt.Sprintf("%s %s %s %s %s",
					ui.Muted.Render(q.ID[:8]),
					q.Title,
					ui.StatusText(q.Status),
					ui.PriorityText(q.Priority),
					ui.Muted.Render(fmt.Sprintf("%d EXP · %s", q.EXP, q.Category)))
				if q.Mood != nil {
					line += " " + *q.Mood
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (pending|in-progress|completed)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Filter by title/description substring")

	return cmd
}
