package components

import (
	"fmt"

	"github.com/theirongolddev/fitdash/internal/tui/theme"
	"github.com/theirongolddev/fitdash/internal/widget"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressCardProps is what a progress card needs beyond its outer width.
type ProgressCardProps struct {
	Metric  widget.Metric
	Focused bool
	// Status is a short note shown beside the title, e.g. while a fetch runs.
	Status string
}

// ProgressCard renders a metric as a titled card with a progress bar, the
// "N% Complete" line and the card's action.
func ProgressCard(p ProgressCardProps, outerWidth int) string {
	t := theme.Active
	m := p.Metric
	inner := CardInnerWidth(outerWidth)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	statusStyle := lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	actionStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	if p.Focused {
		actionStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	}

	title := m.Title
	if m.Icon != "" {
		title = m.Icon + " " + title
	}
	header := titleStyle.Render(title)
	if p.Status != "" {
		header += " " + statusStyle.Render(p.Status)
	}

	body := header + "\n"
	if m.Description != "" {
		body += descStyle.Width(inner).Render(m.Description) + "\n"
	}
	body += "\n" +
		valueStyle.Render(fmt.Sprintf("%d / %d", m.Value, m.Max)) + "\n" +
		Bar(widget.Ratio(m.Value, m.Max), inner) + "\n" +
		pctStyle.Render(fmt.Sprintf("%d%% Complete", m.Percentage()))

	if m.ActionLabel != "" {
		body += "\n\n" + actionStyle.Render("[enter] "+m.ActionLabel)
	}

	return cardStyle(outerWidth, p.Focused).Render(body)
}

// Bar renders a gradient progress bar filled to ratio (0.0-1.0).
func Bar(ratio float64, width int) string {
	t := theme.Active
	if width < 4 {
		width = 4
	}

	bar := progress.New(
		progress.WithGradient(string(t.BarStart), string(t.BarEnd)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.BarTrack)
	return bar.ViewAs(ratio)
}
