// Package cli formats numbers and renders tables for non-interactive output.
package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatCalories formats a calorie count, e.g. 1800 -> "1,800 kcal".
func FormatCalories(n int) string {
	return FormatNumber(int64(n)) + " kcal"
}

// FormatPercent formats a whole-number percentage.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// FormatAgo describes t relative to now, e.g. "3 minutes ago".
func FormatAgo(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
