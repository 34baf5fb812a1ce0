package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

func newCycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle <id>",
		Short: "Advance a quest's status (pending → in-progress → completed)",
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
			res, err := svc.CycleStatus(ctx, id)
			if err != nil {
				return err
			}

			if res.Completed != nil {
				printCompletion(cmd, res.Quest.Title, res.Completed)
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Record how it felt: lq mood "+id[:8]+" <emoji>"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				ui.H2.Render(ui.IconBolt+" "+res.Quest.Title),
				ui.Muted.Render("status"),
				ui.StatusText(res.Quest.Status))
			return nil
		},
	}

	return cmd
}
