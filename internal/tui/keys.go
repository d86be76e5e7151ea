package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Dashboard  key.Binding
	CalorieLog key.Binding
	Workouts   key.Binding
	Next       key.Binding
	Prev       key.Binding
	Up         key.Binding
	Down       key.Binding
	Activate   key.Binding
	Delete     key.Binding
	EditGoal   key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Dashboard: key.NewBinding(
		key.WithKeys("1", "d"),
		key.WithHelp("1/d", "dashboard"),
	),
	CalorieLog: key.NewBinding(
		key.WithKeys("2", "l"),
		key.WithHelp("2/l", "calorie log"),
	),
	Workouts: key.NewBinding(
		key.WithKeys("3", "w"),
		key.WithHelp("3/w", "workouts"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "previous"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "activate"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "delete entry"),
	),
	EditGoal: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "edit goal"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.CalorieLog, k.Workouts},
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Activate, k.Delete, k.EditGoal, k.Back},
		{k.Help, k.Quit},
	}
}
