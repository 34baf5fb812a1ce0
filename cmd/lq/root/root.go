package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lifequest/internal/config"
	"lifequest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lq",
	Short:         "LifeQuest — gamified personal productivity tracker",
	Long:          "LifeQuest is a local-first CLI/TUI productivity tracker that turns tasks into quests with EXP, levels, streaks, moods, and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cfg := loadConfig()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	})))

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newCycleCmd(),
		newDoCmd(),
		newMoodCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newGoalsCmd(),
		newModeCmd(),
		newMotivateCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// loadConfig never fails the program; a broken config falls back to
// defaults with a warning.
func loadConfig() *config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" "+err.Error()))
		return config.Default()
	}
	return cfg
}
