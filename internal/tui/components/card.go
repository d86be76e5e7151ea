// Package components provides the bordered cards, bars and toasts the
// fitdash views are assembled from.
package components

import (
	"github.com/theirongolddev/fitdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow splits totalWidth into n widths that sum to exactly totalWidth.
// Leading items take the remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Columns returns how many cards of at least minWidth fit in totalWidth,
// capped at n.
func Columns(totalWidth, minWidth, n int) int {
	if minWidth <= 0 || n <= 0 {
		return n
	}
	cols := totalWidth / minWidth
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	return cols
}

func cardStyle(outerWidth int, focused bool) lipgloss.Style {
	t := theme.Active

	contentWidth := outerWidth - 2 // border
	if contentWidth < 10 {
		contentWidth = 10
	}

	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)
}

// StatCard renders a compact label/value card, with an optional note under
// the value.
func StatCard(label, value, note string, outerWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	content := labelStyle.Render(label) + "\n" + valueStyle.Render(value)
	if note != "" {
		content += "\n" + noteStyle.Render(note)
	}
	return cardStyle(outerWidth, false).Render(content)
}

// ContentCard renders a bordered card with an optional title.
// outerWidth includes the border.
func ContentCard(title, body string, outerWidth int) string {
	return contentCard(title, body, outerWidth, false)
}

// FocusedCard is ContentCard with the focus border.
func FocusedCard(title, body string, outerWidth int) string {
	return contentCard(title, body, outerWidth, true)
}

func contentCard(title, body string, outerWidth int, focused bool) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle(outerWidth, focused).Render(content)
}

// CardRow joins rendered cards side by side, padding shorter cards to the
// tallest one.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardGrid lays cards out in rows of cols.
func CardGrid(cards []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		rows = append(rows, CardRow(cards[start:end]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CardInnerWidth returns the usable text width inside a card of the given
// outer width.
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
