package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

func newMotivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motivate",
		Short: "Get a motivation message (and a quest reminder if one is due)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			msg, err := svc.MotivationMessage(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)

			reminder, err := svc.ReminderMessage(ctx)
			if err != nil {
				return err
			}
			if reminder != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(reminder))
			}
			return nil
		},
	}

	return cmd
}
