package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/fitdash/internal/cli"
	"github.com/theirongolddev/fitdash/internal/goalsync"
	"github.com/theirongolddev/fitdash/internal/ledger"
	"github.com/theirongolddev/fitdash/internal/tui/components"
	"github.com/theirongolddev/fitdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

type logFocus int

const (
	focusEntries logFocus = iota
	focusFood
	focusCalories
	focusGoal
)

// calorieLogState is the calorie log page: the add form, the goal field and
// the entry cursor.
type calorieLogState struct {
	focus    logFocus
	food     textinput.Model
	calories textinput.Model
	goal     textinput.Model
	cursor   int
	formErr  string
	saving   bool
}

func newCalorieLogState() calorieLogState {
	food := textinput.New()
	food.Placeholder = "Food item"
	food.CharLimit = 64
	food.Width = 28

	cal := textinput.New()
	cal.Placeholder = "Calories"
	cal.CharLimit = 6
	cal.Width = 10

	goal := textinput.New()
	goal.Placeholder = "2000"
	goal.CharLimit = 6
	goal.Width = 8

	return calorieLogState{food: food, calories: cal, goal: goal}
}

func (s calorieLogState) editing() bool {
	return s.focus != focusEntries
}

func (s *calorieLogState) setFocus(f logFocus) tea.Cmd {
	s.focus = f
	s.food.Blur()
	s.calories.Blur()
	s.goal.Blur()
	switch f {
	case focusFood:
		return s.food.Focus()
	case focusCalories:
		return s.calories.Focus()
	case focusGoal:
		return s.goal.Focus()
	}
	return nil
}

func (s *calorieLogState) clampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// updateCalorieLog handles keys while no input has focus.
func (a App) updateCalorieLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Next):
		a.calLog.formErr = ""
		return a, a.calLog.setFocus(focusFood)
	case key.Matches(msg, keys.Prev):
		a.calLog.formErr = ""
		return a, a.calLog.setFocus(focusCalories)
	case key.Matches(msg, keys.Up):
		a.calLog.cursor--
		a.calLog.clampCursor(a.ledger.Len())
	case key.Matches(msg, keys.Down):
		a.calLog.cursor++
		a.calLog.clampCursor(a.ledger.Len())
	case key.Matches(msg, keys.Delete):
		entries := a.ledger.Entries()
		if len(entries) == 0 {
			return a, nil
		}
		a.calLog.clampCursor(len(entries))
		e := entries[a.calLog.cursor]
		a.ledger.Delete(e.ID)
		a.calLog.clampCursor(a.ledger.Len())
		a.log.WithField("entry_id", e.ID).Debug("deleted calorie entry")
	case key.Matches(msg, keys.EditGoal):
		if a.calLog.saving {
			return a, nil
		}
		a.calLog.formErr = ""
		a.calLog.goal.SetValue(strconv.Itoa(a.goals.Goal()))
		a.calLog.goal.CursorEnd()
		return a, a.calLog.setFocus(focusGoal)
	case key.Matches(msg, keys.Back):
		return a.navigate(RouteDashboard)
	}
	return a, nil
}

// updateCalorieLogInput handles keys while one of the inputs has focus.
func (a App) updateCalorieLogInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.calLog.formErr = ""
		return a, a.calLog.setFocus(focusEntries)
	case "tab":
		switch a.calLog.focus {
		case focusFood:
			return a, a.calLog.setFocus(focusCalories)
		default:
			return a, a.calLog.setFocus(focusEntries)
		}
	case "shift+tab":
		switch a.calLog.focus {
		case focusCalories:
			return a, a.calLog.setFocus(focusFood)
		default:
			return a, a.calLog.setFocus(focusEntries)
		}
	case "enter":
		if a.calLog.focus == focusGoal {
			return a.submitGoal()
		}
		return a.addEntry()
	}
	return a.updateFocusedInput(msg)
}

func (a App) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.calLog.focus {
	case focusFood:
		a.calLog.food, cmd = a.calLog.food.Update(msg)
	case focusCalories:
		a.calLog.calories, cmd = a.calLog.calories.Update(msg)
	case focusGoal:
		a.calLog.goal, cmd = a.calLog.goal.Update(msg)
	}
	return a, cmd
}

// addEntry logs the form's food and calories. The fields are cleared only
// when the entry was accepted.
func (a App) addEntry() (tea.Model, tea.Cmd) {
	e, err := a.ledger.Add(a.calLog.food.Value(), a.calLog.calories.Value())
	switch {
	case errors.Is(err, ledger.ErrEmptyInput):
		a.calLog.formErr = "Enter a food item and its calories"
		return a, nil
	case errors.Is(err, ledger.ErrInvalidCalories):
		a.calLog.formErr = "Calories must be a whole number up to 100,000"
		return a, nil
	case err != nil:
		a.calLog.formErr = err.Error()
		return a, nil
	}

	a.log.WithFields(logrus.Fields{"entry_id": e.ID, "calories": e.Calories}).Debug("logged calorie entry")
	a.calLog.formErr = ""
	a.calLog.food.Reset()
	a.calLog.calories.Reset()
	a.calLog.cursor = a.ledger.Len() - 1
	return a, a.calLog.setFocus(focusFood)
}

// submitGoal sends the edited goal to the server. The displayed goal only
// changes once the server accepts it.
func (a App) submitGoal() (tea.Model, tea.Cmd) {
	goal, err := strconv.Atoi(strings.TrimSpace(a.calLog.goal.Value()))
	if err != nil || goal <= 0 {
		a.calLog.formErr = "Goal must be a positive whole number"
		return a, nil
	}

	a.calLog.formErr = ""
	a.calLog.saving = true
	a.calLog.setFocus(focusEntries)
	return a, persistGoal(a.ctx, a.goals, a.session.Current().UserID, goal)
}

func persistGoal(ctx context.Context, goals *goalsync.Service, userID string, goal int) tea.Cmd {
	return func() tea.Msg {
		err := goals.PersistGoal(ctx, userID, goal)
		return goalPersistedMsg{goal: goal, err: err}
	}
}

func (a App) viewCalorieLog(cw int) string {
	t := theme.Active
	total := a.ledger.Total()
	goal := a.goals.Goal()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Danger)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	target := "Target: " + cli.FormatCalories(goal)
	switch {
	case a.calLog.focus == focusGoal:
		target = "Target: " + a.calLog.goal.View() + " kcal"
	case a.calLog.saving:
		target += "  " + a.spinner.View() + " saving"
	}

	remaining := goal - total
	remainingNote := "left today"
	if remaining < 0 {
		remainingNote = "over target"
		remaining = -remaining
	}

	widths := components.LayoutRow(cw, 2)
	stats := components.CardRow([]string{
		components.StatCard("Total Calories Today", cli.FormatNumber(int64(total)), target, widths[0]),
		components.StatCard("Remaining", cli.FormatCalories(remaining), remainingNote, widths[1]),
	})

	form := labelStyle.Render("Food ") + a.calLog.food.View() + "  " +
		labelStyle.Render("Calories ") + a.calLog.calories.View()
	if a.calLog.formErr != "" {
		form += "\n" + errStyle.Render(a.calLog.formErr)
	} else {
		form += "\n" + dimStyle.Render("tab to a field, enter to add, esc to leave the form")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		stats,
		components.FocusedCard("Add Entry", form, cw),
		components.ContentCard(fmt.Sprintf("Entries (%d)", a.ledger.Len()), a.renderEntries(cw), cw),
	)
}

func (a App) renderEntries(cw int) string {
	t := theme.Active
	entries := a.ledger.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No entries yet. Add your first meal!")
	}

	inner := components.CardInnerWidth(cw)
	foodW := max(inner-32, 10)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	now := a.now()
	var b strings.Builder
	for i, e := range entries {
		marker := "  "
		style := rowStyle
		if i == a.calLog.cursor && !a.calLog.editing() {
			marker = "▸ "
			style = selStyle
		}
		line := fmt.Sprintf("%s%-*s %10s", marker, foodW, truncate(e.Food, foodW), cli.FormatCalories(e.Calories))
		b.WriteString(style.Render(line))
		b.WriteString("  ")
		b.WriteString(timeStyle.Render(cli.FormatAgo(e.Timestamp, now)))
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
