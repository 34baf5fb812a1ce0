package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your level, streak, goals, and weekly stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			info := engine.LevelProgress(p.EXP)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "LifeQuest Status"))
			fmt.Fprintf(out, "%s %d  %s %s\n",
				ui.Key.Render("Level"), info.Level,
				ui.ProgressBar(24, info.Progress),
				ui.Muted.Render(fmt.Sprintf("%.0f%%", info.Progress)))
			fmt.Fprintln(out, ui.LabelValue("EXP", fmt.Sprintf("%d (%d to next level)", info.EXP, info.ExpToNext)))
			fmt.Fprintln(out, ui.LabelValue("Completed", p.TotalQuestsCompleted))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d current · %d longest", ui.IconStreak, p.CurrentStreak, p.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Mode", p.MotivationMode))
			fmt.Fprintln(out, "")

			today := engine.DateOf(time.Now())
			daily, err := svc.DailyStats(ctx, today)
			if err != nil {
				return err
			}
			weekStart := engine.DateOf(time.Now().AddDate(0, 0, -6))
			weekly, err := svc.WeeklyStats(ctx, weekStart)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconTarget+" Goals"))
			fmt.Fprintf(out, "- %s %d/%d today %s\n",
				ui.Key.Render("Daily:"), daily.QuestsCompleted, p.DailyGoal, goalBadge(daily.QuestsCompleted, p.DailyGoal))
			fmt.Fprintf(out, "- %s %d/%d this week %s\n",
				ui.Key.Render("Weekly:"), weekly.CompletedQuests, p.WeeklyGoal, goalBadge(weekly.CompletedQuests, p.WeeklyGoal))
			fmt.Fprintf(out, "- %s %d EXP gained, %d active days this week\n",
				ui.Key.Render("Week:"), weekly.TotalExp, weekly.StreakDays)
			fmt.Fprintln(out, "")

			weeklyMood, err := svc.WeeklyMood(ctx)
			if err != nil {
				return err
			}
			if weeklyMood > 0 {
				fmt.Fprintln(out, ui.LabelValue(ui.IconMood+" Weekly mood", fmt.Sprintf("%.1f/5", weeklyMood)))
			}

			achievements, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue(ui.IconTrophy+" Achievements", len(achievements)))
			return nil
		},
	}

	return cmd
}

func goalBadge(done, goal int) string {
	if goal > 0 && done >= goal {
		return ui.Good.Render("reached!")
	}
	return ""
}
