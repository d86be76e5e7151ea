package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/fitdash/internal/cli"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show your daily calorie goal",
	Args:  cobra.NoArgs,
	RunE:  runGoal,
}

var goalSetCmd = &cobra.Command{
	Use:   "set <calories>",
	Short: "Update your daily calorie goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalSet,
}

func init() {
	goalCmd.AddCommand(goalSetCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoal(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	if err := rt.requireUser(); err != nil {
		return err
	}
	if err := rt.goals.FetchGoal(cmd.Context(), rt.userID()); err != nil {
		return err
	}

	fmt.Printf("\n  Daily calorie goal: %s\n\n", cli.FormatCalories(rt.goals.Goal()))
	return nil
}

func runGoalSet(cmd *cobra.Command, args []string) error {
	goal, err := strconv.Atoi(args[0])
	if err != nil || goal <= 0 {
		return fmt.Errorf("calorie goal must be a positive whole number, got %q", args[0])
	}

	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	if err := rt.requireUser(); err != nil {
		return err
	}

	err = rt.goals.PersistGoal(cmd.Context(), rt.userID(), goal)
	fmt.Println()
	rt.drainNotices()
	if err != nil {
		return err
	}
	fmt.Printf("  Daily calorie goal: %s\n\n", cli.FormatCalories(rt.goals.Goal()))
	return nil
}
