package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/theirongolddev/fitdash/internal/config"
	"github.com/theirongolddev/fitdash/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues are the wizard's answers, as typed.
type setupValues struct {
	UserID        string
	BaseURL       string
	CalorieGoal   string
	WorkoutTarget int
	Theme         string
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	vals := setupValues{
		UserID:        cfg.Session.UserID,
		BaseURL:       cfg.API.BaseURL,
		CalorieGoal:   strconv.Itoa(cfg.Goals.DefaultCalorieGoal),
		WorkoutTarget: cfg.Goals.WeeklyWorkoutTarget,
		Theme:         cfg.Appearance.Theme,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fitdash").
				Description("A few questions and you're set.\nRun `fitdash setup` anytime to change them."),
			huh.NewInput().
				Title("User ID").
				Description("The account your goals and workouts belong to.").
				Value(&vals.UserID),
			huh.NewInput().
				Title("API base URL").
				Value(&vals.BaseURL).
				Validate(validateBaseURL),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Default calorie goal").
				Description("Shown until your saved goal loads.").
				Value(&vals.CalorieGoal).
				Validate(validatePositive),
			huh.NewSelect[int]().
				Title("Weekly workout target").
				Options(
					huh.NewOption("3 workouts", 3),
					huh.NewOption("5 workouts", 5),
					huh.NewOption("7 workouts", 7),
				).
				Value(&vals.WorkoutTarget),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg, err := applySetup(cfg, vals)
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `fitdash tui` to open the dashboard.")
	fmt.Println()
	return nil
}

// applySetup copies the wizard's answers into cfg.
func applySetup(cfg config.Config, v setupValues) (config.Config, error) {
	if err := validateBaseURL(v.BaseURL); err != nil {
		return cfg, err
	}
	if err := validatePositive(v.CalorieGoal); err != nil {
		return cfg, fmt.Errorf("calorie goal: %w", err)
	}
	goal, _ := strconv.Atoi(strings.TrimSpace(v.CalorieGoal))

	cfg.Session.UserID = strings.TrimSpace(v.UserID)
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(v.BaseURL), "/")
	cfg.Goals.DefaultCalorieGoal = goal
	if v.WorkoutTarget > 0 {
		cfg.Goals.WeeklyWorkoutTarget = v.WorkoutTarget
	}
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	return cfg, nil
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}

func validateBaseURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an http(s) URL, e.g. http://localhost:8000")
	}
	return nil
}
