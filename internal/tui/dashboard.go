package tui

import (
	"context"

	"github.com/theirongolddev/fitdash/internal/notify"
	"github.com/theirongolddev/fitdash/internal/session"
	"github.com/theirongolddev/fitdash/internal/tui/components"
	"github.com/theirongolddev/fitdash/internal/widget"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// card is one dashboard widget: static presentation plus the tracker that
// feeds its numbers.
type card struct {
	metric  widget.Metric
	tracker *widget.Tracker
	// live, when set, supplies the numbers instead of the tracker's reading.
	live func() widget.Reading
}

func (c card) current() widget.Metric {
	m := c.metric
	r := c.tracker.Reading()
	if c.live != nil {
		r = c.live()
	}
	m.Value, m.Max = r.Value, r.Max
	return m
}

func dashboardCards(deps Deps) []card {
	goals, book := deps.Goals, deps.Ledger

	messages := card{
		metric: widget.Metric{
			Title:       "Message Progress",
			Description: "Weekly message completion rate",
			Icon:        "✉",
			ActionLabel: "Export Messages",
			Action:      exportMessages(deps.Notices, deps.Log),
		},
		tracker: widget.NewTracker("messages",
			widget.Static(widget.Reading{Value: 75, Max: 100}), deps.Log),
	}

	calories := card{
		metric: widget.Metric{
			Title:       "Calorie Tracking",
			Description: "Daily calorie goal progress",
			Icon:        "◉",
			ActionLabel: "Log Calories",
			Action:      navigateTo(RouteCalorieLog),
		},
		tracker: widget.NewTracker("calorie_goal",
			widget.OnMount(widget.Reading{Max: goals.Goal()},
				func(ctx context.Context, s session.Session) (widget.Reading, error) {
					if err := goals.FetchGoal(ctx, s.UserID); err != nil {
						return widget.Reading{}, err
					}
					return widget.Reading{Max: goals.Goal()}, nil
				}), deps.Log),
		live: func() widget.Reading {
			return widget.Reading{Value: book.Total(), Max: goals.Goal()}
		},
	}

	counter := deps.Workouts
	workouts := card{
		metric: widget.Metric{
			Title:       "Workout Progress",
			Description: "Track your workout completion rate",
			Icon:        "▲",
			ActionLabel: "Start Workout",
			Action:      navigateTo(RouteWorkouts),
		},
		tracker: widget.NewTracker("workouts",
			widget.OnRoute(RouteDashboard, widget.Reading{Max: deps.WorkoutTarget},
				func(ctx context.Context, s session.Session) (widget.Reading, error) {
					if !s.Valid() {
						return widget.Reading{}, nil
					}
					n, err := counter.CountWorkouts(ctx, s.UserID)
					if err != nil {
						return widget.Reading{}, err
					}
					return widget.Reading{Value: n}, nil
				}), deps.Log),
	}

	return []card{messages, calories, workouts}
}

func exportMessages(n notify.Notifier, log logrus.FieldLogger) widget.Action {
	return func() tea.Cmd {
		log.Info("exporting message progress data")
		n.Notify(notify.Notification{
			Title:       "Export",
			Description: "Message progress data exported!",
			Variant:     notify.VariantDefault,
		})
		return nil
	}
}

func navigateTo(route string) widget.Action {
	return func() tea.Cmd {
		return navigate(route)
	}
}

func (a App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(a.cards)
	switch {
	case key.Matches(msg, keys.Next):
		a.focus = (a.focus + 1) % n
	case key.Matches(msg, keys.Prev):
		a.focus = (a.focus - 1 + n) % n
	case key.Matches(msg, keys.Activate):
		if act := a.cards[a.focus].metric.Action; act != nil {
			return a, act()
		}
	}
	return a, nil
}

func (a App) viewDashboard(cw int) string {
	cols := components.Columns(cw, minCardWidth, len(a.cards))
	widths := components.LayoutRow(cw, cols)

	rendered := make([]string, len(a.cards))
	for i, c := range a.cards {
		rendered[i] = components.ProgressCard(components.ProgressCardProps{
			Metric:  c.current(),
			Focused: i == a.focus,
			Status:  a.cardStatus(c),
		}, widths[i%cols])
	}
	return components.CardGrid(rendered, cols)
}

func (a App) cardStatus(c card) string {
	switch c.tracker.Phase() {
	case widget.PhaseLoading:
		return a.spinner.View() + " syncing"
	case widget.PhaseFailed:
		return "offline"
	}
	return ""
}
