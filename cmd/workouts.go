package cmd

import (
	"fmt"

	"github.com/theirongolddev/fitdash/internal/cli"

	"github.com/spf13/cobra"
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Show workout progress against your weekly target",
	Args:  cobra.NoArgs,
	RunE:  runWorkouts,
}

func init() {
	rootCmd.AddCommand(workoutsCmd)
}

func runWorkouts(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	if err := rt.requireUser(); err != nil {
		return err
	}

	n, err := rt.client.CountWorkouts(cmd.Context(), rt.userID())
	if err != nil {
		rt.log.WithError(err).Error("counting workouts")
		return fmt.Errorf("counting workouts: %w", err)
	}

	target := rt.cfg.Goals.WeeklyWorkoutTarget
	fmt.Printf("\n  Workouts: %d of %d\n  %s\n\n", n, target, cli.RenderProgressBar(n, target, 28))
	return nil
}
