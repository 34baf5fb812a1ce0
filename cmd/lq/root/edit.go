package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var desc string
	var category string
	var priority string
	var exp int
	var preview bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a quest",
		Long: `Edit a quest's fields. Editing a completed quest's EXP adjusts your
ledger by the difference; editing a pending or in-progress quest never
touches the ledger.

With --preview the change is not saved: the command shows where your level
and EXP would land if the edit were committed.`,
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

			in := engine.QuestInput{
				Title:       q.Title,
				Description: q.Description,
				Category:    engine.Category(q.Category),
				Priority:    engine.Priority(q.Priority),
				EXP:         q.EXP,
			}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = desc
			}
			if cmd.Flags().Changed("category") {
				in.Category = engine.ParseCategory(category)
			}
			if cmd.Flags().Changed("priority") {
				in.Priority = engine.ParsePriority(priority)
			}
			if cmd.Flags().Changed("exp") {
				in.EXP = engine.ClampEXP(exp)
			}

			if preview {
				// Broadcast the provisional delta, then render the
				// hypothetical ledger without committing anything.
				delta := engine.PreviewExpDelta(q, in.EXP)
				svc.PreviewExp(delta)
				defer svc.ClearExpPreview()

				p, err := svc.Profile(ctx)
				if err != nil {
					return err
				}
				projected := engine.ProjectedLevel(p, delta)
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconInfo, "Preview (not saved)"))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("EXP delta", fmt.Sprintf("%+d", delta)))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Projected", fmt.Sprintf("level %d, %d EXP (%d to next)",
					projected.Level, projected.EXP, projected.ExpToNext)))
				return nil
			}

			updated, err := svc.UpdateQuest(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Saved"),
				updated.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %d EXP)", updated.Category, updated.EXP)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&desc, "desc", "D", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority")
	cmd.Flags().IntVarP(&exp, "exp", "e", 0, "New reward EXP")
	cmd.Flags().BoolVar(&preview, "preview", false, "Show the hypothetical ledger change without saving")

	return cmd
}
