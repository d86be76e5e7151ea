package components

import (
	"strings"

	"github.com/theirongolddev/fitdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// NavItem is one entry in the route bar.
type NavItem struct {
	Label string
	Path  string
	Key   string
}

// RenderNavBar renders the route bar, highlighting the item whose path is
// active. Inactive items show their shortcut key.
func RenderNavBar(items []NavItem, activePath string, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Path == activePath {
			parts = append(parts, activeStyle.Render(it.Label))
			continue
		}
		parts = append(parts, dimStyle.Render("[")+keyStyle.Render(it.Key)+dimStyle.Render("]")+
			inactiveStyle.Render(it.Label))
	}

	bar := " " + strings.Join(parts, "   ")
	path := dimStyle.Render(activePath + " ")
	gap := width - lipgloss.Width(bar) - lipgloss.Width(path)
	if gap < 1 {
		return bar
	}
	return bar + strings.Repeat(" ", gap) + path
}
