package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			achievements, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Achievements"))
			if len(achievements) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing yet. Complete quests to earn them."))
				return nil
			}
			for _, a := range achievements {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n  %s · %s\n",
					a.Icon,
					ui.Gold.Render(a.Name),
					ui.Muted.Render("["+a.Category+"]"),
					a.Description,
					ui.Muted.Render(a.UnlockedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	return cmd
}
