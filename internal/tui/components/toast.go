package components

import (
	"github.com/theirongolddev/fitdash/internal/notify"
	"github.com/theirongolddev/fitdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Toast renders a notification box. Destructive notifications get the
// danger color.
func Toast(n notify.Notification, maxWidth int) string {
	t := theme.Active

	accent := t.Success
	if n.Destructive() {
		accent = t.Danger
	}

	width := maxWidth
	if width > 40 {
		width = 40
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(max(width-2, 10))
	titleStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	content := titleStyle.Render(n.Title)
	if n.Description != "" {
		content += "\n" + descStyle.Render(n.Description)
	}
	return style.Render(content)
}
