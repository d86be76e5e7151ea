package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fitdash/internal/tui/theme"
	"github.com/theirongolddev/fitdash/internal/widget"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table is a bordered text table. The first column is left-aligned, the
// rest right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	t := theme.Active
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(title))
}

// RenderTable renders a bordered table with headers and rows. Cells may carry
// ANSI styling; widths are measured on the visible text.
func RenderTable(tbl Table) string {
	if len(tbl.Rows) == 0 && len(tbl.Headers) == 0 {
		return ""
	}
	t := theme.Active
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	numCols := len(tbl.Headers)
	if numCols == 0 {
		numCols = len(tbl.Rows[0])
	}
	widths := make([]int, numCols)
	for i, h := range tbl.Headers {
		widths[i] = max(widths[i], ansi.StringWidth(h))
	}
	for _, row := range tbl.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], ansi.StringWidth(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}
	pad := func(cell string, w int, left bool) string {
		gap := strings.Repeat(" ", max(w-ansi.StringWidth(cell), 0))
		if left {
			return " " + cell + gap + " "
		}
		return " " + gap + cell + " "
	}

	var b strings.Builder
	if tbl.Title != "" {
		b.WriteString("  " + headerStyle.Render(tbl.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(tbl.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range tbl.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i], true)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range tbl.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i == 0)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderProgressBar renders "[████░░░] 71%" for value out of total.
func RenderProgressBar(value, total, width int) string {
	pct := widget.Percentage(value, total)
	filled := pct * width / 100

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s",
		lipgloss.NewStyle().Foreground(theme.Active.Accent).Render(bar),
		FormatPercent(pct))
}
