package tui

import (
	"fmt"

	"github.com/theirongolddev/fitdash/internal/tui/components"
	"github.com/theirongolddev/fitdash/internal/tui/theme"
	"github.com/theirongolddev/fitdash/internal/widget"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewWorkouts(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	var weekly widget.Metric
	for _, c := range a.cards {
		if c.tracker.Name() == "workouts" {
			weekly = c.current()
		}
	}

	body := muted.Render("Guided workout sessions are not available yet.") + "\n\n" +
		fmt.Sprintf("This week: %d of %d workouts", weekly.Value, weekly.Max) + "\n" +
		components.Bar(widget.Ratio(weekly.Value, weekly.Max), components.CardInnerWidth(cw)) + "\n\n" +
		dim.Render("[esc] back to dashboard")

	return components.ContentCard("Workouts", body, cw)
}
