package cmd

import (
	"fmt"

	"github.com/theirongolddev/fitdash/internal/ledger"
	"github.com/theirongolddev/fitdash/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagRoute string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagRoute, "route", "", "Start route (/dashboard, /dashboard/calorie_log, /dashboard/workouts)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(true)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	route := rt.cfg.General.DefaultRoute
	if flagRoute != "" {
		if !tui.ValidRoute(flagRoute) {
			return fmt.Errorf("unknown route %q", flagRoute)
		}
		route = flagRoute
	}

	// Cards rely on background colors; without a TTY profile lipgloss would
	// strip them.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cmd.Context(), tui.Deps{
		Session:       rt.session,
		Goals:         rt.goals,
		Workouts:      rt.client,
		Ledger:        ledger.New(),
		Notices:       rt.notices,
		Log:           rt.log,
		WorkoutTarget: rt.cfg.Goals.WeeklyWorkoutTarget,
		StartRoute:    route,
	})

	rt.log.WithField("route", route).Info("starting dashboard")
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
