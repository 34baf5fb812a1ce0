package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

func newGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals <daily> <weekly>",
		Short: "Set daily and weekly completion targets",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("daily and weekly targets are required")
			}
			for _, a := range args {
				if _, err := strconv.Atoi(a); err != nil {
					return errors.New("targets must be integers")
				}
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

			daily, _ := strconv.Atoi(args[0])
			weekly, _ := strconv.Atoi(args[1])
			p, err := svc.UpdateGoals(ctx, daily, weekly)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s daily %d, weekly %d\n",
				ui.Good.Render(ui.IconTarget+" Goals set:"), p.DailyGoal, p.WeeklyGoal)
			return nil
		},
	}

	return cmd
}
