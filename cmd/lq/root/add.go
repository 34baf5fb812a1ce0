package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var category string
	var priority string
	var exp int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			q, err := svc.CreateQuest(ctx, engine.QuestInput{
				Title:       args[0],
				Description: desc,
				Category:    engine.ParseCategory(category),
				Priority:    engine.ParsePriority(priority),
				// The form layer coerces malformed rewards; the engine
				// itself only assumes non-negative values.
				EXP: engine.ClampEXP(exp),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				q.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %d EXP, id %s)", q.Category, q.EXP, q.ID[:8])))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "D", "", "Description")
	cmd.Flags().StringVarP(&category, "category", "c", string(engine.DefaultCategory), "Category (Belajar|Kerja|Kesehatan|Sosial|Hobi|Rumah|Lainnya)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().IntVarP(&exp, "exp", "e", 50, fmt.Sprintf("Reward EXP (%d-%d)", engine.MinQuestEXP, engine.MaxQuestEXP))

	return cmd
}
