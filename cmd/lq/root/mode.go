package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode <warrior|healer|rogue>",
		Short: "Switch your motivation style",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mode is required")
			}
			if !engine.MotivationMode(args[0]).IsValid() {
				return fmt.Errorf("invalid mode %q (warrior|healer|rogue)", args[0])
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

			p, err := svc.UpdateMotivationMode(ctx, engine.ParseMotivationMode(args[0]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconSparkle+" Mode set:"), p.MotivationMode)
			msg, err := svc.MotivationMessage(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	return cmd
}
