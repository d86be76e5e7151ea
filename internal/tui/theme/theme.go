// Package theme defines color palettes for the fitdash dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps dashboard roles to colors.
type Theme struct {
	Name string

	Surface     lipgloss.Color // card background
	Border      lipgloss.Color
	BorderFocus lipgloss.Color // focused card
	TextDim     lipgloss.Color // hints, empty states
	TextMuted   lipgloss.Color // descriptions, timestamps
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color // active route, action labels

	// Progress bar gradient and the unfilled track.
	BarStart lipgloss.Color
	BarEnd   lipgloss.Color
	BarTrack lipgloss.Color

	Success lipgloss.Color // toasts and completed goals
	Danger  lipgloss.Color // destructive toasts and failed fetches
	Warning lipgloss.Color // over-budget totals
}

// Active is the currently selected theme.
var Active = Meadow

// Meadow is the default: greens on a dark slate.
var Meadow = Theme{
	Name:        "meadow",
	Surface:     lipgloss.Color("#161B1A"),
	Border:      lipgloss.Color("#2F3A37"),
	BorderFocus: lipgloss.Color("#5FB889"),
	TextDim:     lipgloss.Color("#4E5C58"),
	TextMuted:   lipgloss.Color("#8C9A95"),
	TextPrimary: lipgloss.Color("#E8F0EC"),
	Accent:      lipgloss.Color("#5FB889"),
	BarStart:    lipgloss.Color("#3E8E6A"),
	BarEnd:      lipgloss.Color("#A6E3A1"),
	BarTrack:    lipgloss.Color("#26302D"),
	Success:     lipgloss.Color("#7FD49B"),
	Danger:      lipgloss.Color("#E5646E"),
	Warning:     lipgloss.Color("#E3B25C"),
}

// Ember is a warm orange palette.
var Ember = Theme{
	Name:        "ember",
	Surface:     lipgloss.Color("#1C1715"),
	Border:      lipgloss.Color("#3D302A"),
	BorderFocus: lipgloss.Color("#F28C48"),
	TextDim:     lipgloss.Color("#5E4F47"),
	TextMuted:   lipgloss.Color("#A8958A"),
	TextPrimary: lipgloss.Color("#F6EDE6"),
	Accent:      lipgloss.Color("#F28C48"),
	BarStart:    lipgloss.Color("#C2410C"),
	BarEnd:      lipgloss.Color("#FBBF24"),
	BarTrack:    lipgloss.Color("#2E2420"),
	Success:     lipgloss.Color("#A3C46C"),
	Danger:      lipgloss.Color("#EF4444"),
	Warning:     lipgloss.Color("#FBBF24"),
}

// Light suits light terminal backgrounds.
var Light = Theme{
	Name:        "light",
	Surface:     lipgloss.Color("#FAFAF7"),
	Border:      lipgloss.Color("#D4D4CF"),
	BorderFocus: lipgloss.Color("#2563EB"),
	TextDim:     lipgloss.Color("#A3A39C"),
	TextMuted:   lipgloss.Color("#6B6B64"),
	TextPrimary: lipgloss.Color("#1C1C19"),
	Accent:      lipgloss.Color("#2563EB"),
	BarStart:    lipgloss.Color("#2563EB"),
	BarEnd:      lipgloss.Color("#10B981"),
	BarTrack:    lipgloss.Color("#E5E5E0"),
	Success:     lipgloss.Color("#15803D"),
	Danger:      lipgloss.Color("#B91C1C"),
	Warning:     lipgloss.Color("#B45309"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:        "terminal",
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	BorderFocus: lipgloss.Color("6"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	BarStart:    lipgloss.Color("2"),
	BarEnd:      lipgloss.Color("10"),
	BarTrack:    lipgloss.Color("8"),
	Success:     lipgloss.Color("2"),
	Danger:      lipgloss.Color("1"),
	Warning:     lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{Meadow, Ember, Light, Terminal}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to Meadow.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Meadow
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
