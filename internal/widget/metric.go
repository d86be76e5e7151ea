// Package widget holds the progress-widget model: the metric a card shows,
// its percentage math, and the sources that feed it.
package widget

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

// Action is a card's button. Its effect (navigation, export, anything else)
// is opaque to the widget; it only hands back a command for the update loop.
type Action func() tea.Cmd

// Metric is everything a progress card renders.
type Metric struct {
	Title       string
	Description string
	Value       int
	Max         int
	Icon        string
	Action      Action
	ActionLabel string
}

// Percentage returns the completion percentage for the metric.
func (m Metric) Percentage() int {
	return Percentage(m.Value, m.Max)
}

// Percentage computes round(value/max*100) clamped to [0, 100].
// A non-positive max has no meaningful ratio and yields 0.
func Percentage(value, max int) int {
	if max <= 0 {
		return 0
	}
	pct := math.Round(float64(value) / float64(max) * 100)
	return int(math.Min(math.Max(pct, 0), 100))
}

// Ratio is Percentage as a 0.0-1.0 fraction, for progress bars.
func Ratio(value, max int) float64 {
	return float64(Percentage(value, max)) / 100
}
