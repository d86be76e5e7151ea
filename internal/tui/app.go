// Package tui provides the interactive Bubble Tea dashboard for fitdash.
package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/fitdash/internal/goalsync"
	"github.com/theirongolddev/fitdash/internal/ledger"
	"github.com/theirongolddev/fitdash/internal/notify"
	"github.com/theirongolddev/fitdash/internal/session"
	"github.com/theirongolddev/fitdash/internal/tui/components"
	"github.com/theirongolddev/fitdash/internal/tui/theme"
	"github.com/theirongolddev/fitdash/internal/widget"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const (
	RouteDashboard  = "/dashboard"
	RouteCalorieLog = "/dashboard/calorie_log"
	RouteWorkouts   = "/dashboard/workouts"
)

var navItems = []components.NavItem{
	{Label: "Dashboard", Path: RouteDashboard, Key: "1"},
	{Label: "Calorie Log", Path: RouteCalorieLog, Key: "2"},
	{Label: "Workouts", Path: RouteWorkouts, Key: "3"},
}

// ValidRoute reports whether route is one the dashboard can show.
func ValidRoute(route string) bool {
	for _, it := range navItems {
		if it.Path == route {
			return true
		}
	}
	return false
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minCardWidth     = 34
	minContentHeight = 5

	toastDuration = 4 * time.Second
)

// WorkoutCounter reports how many workouts a user has logged.
type WorkoutCounter interface {
	CountWorkouts(ctx context.Context, userID string) (int, error)
}

// Deps is everything the dashboard needs from the outside. Goals and
// Workouts are required; the rest have defaults.
type Deps struct {
	Session  session.Provider
	Goals    *goalsync.Service
	Workouts WorkoutCounter
	Ledger   *ledger.Ledger
	// Notices must be the queue Goals notifies into, so its toasts show up.
	Notices *notify.Queue
	Log     logrus.FieldLogger

	WorkoutTarget int
	StartRoute    string
	Now           func() time.Time
}

// NavigateMsg switches the dashboard to another route.
type NavigateMsg struct {
	Route string
}

type metricResultMsg struct {
	res widget.Result
}

type noticeMsg notify.Notification

type toastExpiredMsg struct {
	seq int
}

type goalPersistedMsg struct {
	goal int
	err  error
}

// App is the root Bubble Tea model.
type App struct {
	ctx  context.Context
	stop context.CancelFunc

	session session.Provider
	goals   *goalsync.Service
	ledger  *ledger.Ledger
	notices *notify.Queue
	log     logrus.FieldLogger
	now     func() time.Time

	cards []card

	// UI state
	route    string
	focus    int // focused dashboard card
	calLog   calorieLogState
	showHelp bool
	width    int
	height   int

	toast    *notify.Notification
	toastSeq int

	spinner  spinner.Model
	spinning bool
	help     help.Model
}

// NewApp creates the dashboard model. Cancelling ctx, or quitting, cancels
// every fetch in flight.
func NewApp(ctx context.Context, deps Deps) App {
	if deps.Session == nil {
		deps.Session = session.Anonymous
	}
	if deps.Ledger == nil {
		deps.Ledger = ledger.New()
	}
	if deps.Notices == nil {
		deps.Notices = notify.NewQueue(8)
	}
	if deps.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		deps.Log = l
	}
	if deps.WorkoutTarget <= 0 {
		deps.WorkoutTarget = 7
	}
	if !ValidRoute(deps.StartRoute) {
		deps.StartRoute = RouteDashboard
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	ctx, stop := context.WithCancel(ctx)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		ctx:     ctx,
		stop:    stop,
		session: deps.Session,
		goals:   deps.Goals,
		ledger:  deps.Ledger,
		notices: deps.Notices,
		log:     deps.Log,
		now:     deps.Now,
		cards:   dashboardCards(deps),
		route:   deps.StartRoute,
		calLog:  newCalorieLogState(),
		spinner: sp,
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		waitForNotice(a.ctx, a.notices),
		navigate(a.route),
	)
}

// Route returns the current route.
func (a App) Route() string { return a.route }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case NavigateMsg:
		return a.navigate(msg.Route)

	case metricResultMsg:
		for _, c := range a.cards {
			if c.tracker.Name() == msg.res.Name {
				c.tracker.Resolve(msg.res)
			}
		}
		return a, nil

	case noticeMsg:
		n := notify.Notification(msg)
		a.toast = &n
		a.toastSeq++
		return a, tea.Batch(waitForNotice(a.ctx, a.notices), expireToast(a.toastSeq))

	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast = nil
		}
		return a, nil

	case goalPersistedMsg:
		a.calLog.saving = false
		if msg.err != nil {
			a.log.WithField("goal", msg.goal).Debug("goal edit reverted")
		}
		return a, nil

	case spinner.TickMsg:
		if !a.anyLoading() {
			a.spinning = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blinks and the like belong to whichever input has focus.
	if a.route == RouteCalorieLog && a.calLog.editing() {
		return a.updateFocusedInput(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Text inputs get every other key while focused.
	if a.route == RouteCalorieLog && a.calLog.editing() {
		return a.updateCalorieLogInput(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a.quit()
	case key.Matches(msg, keys.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, keys.Dashboard):
		return a.navigate(RouteDashboard)
	case key.Matches(msg, keys.CalorieLog):
		return a.navigate(RouteCalorieLog)
	case key.Matches(msg, keys.Workouts):
		return a.navigate(RouteWorkouts)
	}

	switch a.route {
	case RouteDashboard:
		return a.updateDashboard(msg)
	case RouteCalorieLog:
		return a.updateCalorieLog(msg)
	case RouteWorkouts:
		if key.Matches(msg, keys.Back) {
			return a.navigate(RouteDashboard)
		}
	}
	return a, nil
}

func (a App) quit() (tea.Model, tea.Cmd) {
	for _, c := range a.cards {
		c.tracker.Stop()
	}
	a.stop()
	return a, tea.Quit
}

func (a App) navigate(route string) (tea.Model, tea.Cmd) {
	if !ValidRoute(route) {
		a.log.WithField("route", route).Warn("ignoring unknown route")
		return a, nil
	}
	if route != a.route {
		a.log.WithFields(logrus.Fields{"from": a.route, "to": route}).Debug("navigate")
	}
	a.route = route
	if route != RouteCalorieLog {
		a.calLog.setFocus(focusEntries)
	}
	return a, a.syncSources()
}

// syncSources offers the current route and session to every tracker and
// starts whatever fetches they ask for.
func (a *App) syncSources() tea.Cmd {
	deps := widget.Deps{Route: a.route, Session: a.session.Current()}

	var cmds []tea.Cmd
	for _, c := range a.cards {
		if req, ok := c.tracker.Trigger(a.ctx, deps); ok {
			cmds = append(cmds, runFetch(req))
		}
	}
	if len(cmds) > 0 && !a.spinning {
		a.spinning = true
		cmds = append(cmds, a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (a App) anyLoading() bool {
	for _, c := range a.cards {
		if c.tracker.Phase() == widget.PhaseLoading {
			return true
		}
	}
	return false
}

func runFetch(req widget.Request) tea.Cmd {
	return func() tea.Msg {
		return metricResultMsg{res: req.Run()}
	}
}

func navigate(route string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// waitForNotice blocks until the next notification, or until ctx ends.
func waitForNotice(ctx context.Context, q *notify.Queue) tea.Cmd {
	return func() tea.Msg {
		select {
		case n := <-q.C():
			return noticeMsg(n)
		case <-ctx.Done():
			return nil
		}
	}
}

func expireToast(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return "\n  Terminal too narrow. fitdash needs at least 60 columns.\n"
	}
	if a.showHelp {
		return a.viewHelp()
	}

	w := a.width
	cw := a.contentWidth()

	header := components.RenderNavBar(navItems, a.route, w)
	if a.toast != nil {
		header += "\n" + lipgloss.PlaceHorizontal(w, lipgloss.Right, components.Toast(*a.toast, w))
	}
	status := components.RenderStatusBar(w, a.help.ShortHelpView(keys.ShortHelp()), a.sessionInfo())

	var content string
	switch a.route {
	case RouteDashboard:
		content = a.viewDashboard(cw)
	case RouteCalorieLog:
		content = a.viewCalorieLog(cw)
	case RouteWorkouts:
		content = a.viewWorkouts(cw)
	}

	if a.height > 0 {
		contentH := a.height - lipgloss.Height(header) - lipgloss.Height(status) - 1
		if contentH < minContentHeight {
			contentH = minContentHeight
		}
		content = padHeight(truncateHeight(content, contentH), contentH)
	}
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", content, status)
}

func (a App) sessionInfo() string {
	s := a.session.Current()
	if !s.Valid() {
		return "not signed in"
	}
	return "user " + s.UserID
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	hm := a.help
	hm.ShowAll = true
	body := titleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		hm.FullHelpView(keys.FullHelp()) + "\n\n" +
		dimStyle.Render("Press any key to close")

	return lipgloss.Place(a.width, max(a.height, 1), lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
