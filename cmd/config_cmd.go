package cmd

import (
	"fmt"

	"github.com/theirongolddev/fitdash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default route: %s\n", cfg.General.DefaultRoute)
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Base URL: %s\n", cfg.API.BaseURL)
	fmt.Printf("    Timeout:  %s\n", cfg.API.Timeout())
	fmt.Println()

	fmt.Println("  [Session]")
	if id := config.GetUserID(cfg); id != "" {
		fmt.Printf("    User ID: %s\n", id)
	} else {
		fmt.Println("    User ID: not configured")
	}
	fmt.Println()

	fmt.Println("  [Goals]")
	fmt.Printf("    Default calorie goal:  %d kcal\n", cfg.Goals.DefaultCalorieGoal)
	fmt.Printf("    Weekly workout target: %d\n", cfg.Goals.WeeklyWorkoutTarget)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	fmt.Printf("    File:  %s\n", config.LogPath(cfg))
	if config.GetSentryDSN(cfg) != "" {
		fmt.Println("    Sentry: enabled")
	} else {
		fmt.Println("    Sentry: disabled")
	}
	fmt.Println()

	fmt.Println("  Run `fitdash setup` to reconfigure.")
	return nil
}
