// Package cmd implements the fitdash CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/fitdash/internal/cli"
	"github.com/theirongolddev/fitdash/internal/config"
	"github.com/theirongolddev/fitdash/internal/goalsync"
	"github.com/theirongolddev/fitdash/internal/logging"
	"github.com/theirongolddev/fitdash/internal/notify"
	"github.com/theirongolddev/fitdash/internal/session"
	"github.com/theirongolddev/fitdash/internal/tui/theme"
	"github.com/theirongolddev/fitdash/internal/userapi"
	"github.com/theirongolddev/fitdash/internal/widget"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var (
	flagUser    string
	flagAPIURL  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "fitdash",
	Short:         "Fitness progress dashboard",
	Long:          "Track calories, messages and workouts against your goals.",
	RunE:          runSnapshot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User ID (overrides config and FITDASH_USER_ID)")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Fitness API base URL")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// appEnv is what every command needs: config, logger, API client and the
// goal service wired to a notification queue.
type appEnv struct {
	cfg     config.Config
	log     *logrus.Logger
	cleanup func()
	client  *userapi.Client
	session session.Static
	notices *notify.Queue
	goals   *goalsync.Service
}

// newRuntime loads config and builds the shared services. interactive keeps
// logs off the terminal, which the TUI owns.
func newRuntime(interactive bool) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	theme.SetActive(cfg.Appearance.Theme)

	params := logging.Params{
		File:        config.LogPath(cfg),
		Level:       cfg.Logging.Level,
		JSON:        cfg.Logging.JSON,
		SentryDSN:   config.GetSentryDSN(cfg),
		Environment: "cli",
		Release:     "fitdash@" + Version,
	}
	if !interactive && flagVerbose {
		params.Console = os.Stderr
		params.Level = "debug"
	}
	if err := os.MkdirAll(config.StateDir(), 0o755); err != nil && cfg.Logging.File == "" {
		params.File = ""
	}
	log, cleanup, err := logging.Setup(params)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.API.BaseURL
	if flagAPIURL != "" {
		baseURL = flagAPIURL
	}
	client := userapi.NewClient(baseURL, userapi.WithTimeout(cfg.API.Timeout()))

	userID := config.GetUserID(cfg)
	if flagUser != "" {
		userID = strings.TrimSpace(flagUser)
	}

	notices := notify.NewQueue(8)
	goals := goalsync.New(client,
		goalsync.WithLogger(log),
		goalsync.WithNotifier(notices),
		goalsync.WithDefaultGoal(cfg.Goals.DefaultCalorieGoal),
	)

	log.WithFields(logrus.Fields{
		"api":      client.BaseURL(),
		"user_set": userID != "",
	}).Debug("runtime ready")

	return &appEnv{
		cfg:     cfg,
		log:     log,
		cleanup: cleanup,
		client:  client,
		session: session.Static{UserID: userID},
		notices: notices,
		goals:   goals,
	}, nil
}

func (rt *appEnv) userID() string {
	return rt.session.Current().UserID
}

func (rt *appEnv) requireUser() error {
	if rt.userID() == "" {
		return fmt.Errorf("no user configured: pass --user, set FITDASH_USER_ID or run `fitdash setup`")
	}
	return nil
}

// drainNotices prints every pending notification.
func (rt *appEnv) drainNotices() {
	for {
		select {
		case n := <-rt.notices.C():
			mark := "✓"
			if n.Destructive() {
				mark = "✗"
			}
			fmt.Printf("  %s %s: %s\n", mark, n.Title, n.Description)
		default:
			return
		}
	}
}

// runSnapshot prints the dashboard once.
func runSnapshot(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*rt.cfg.API.Timeout())
	defer cancel()

	target := rt.cfg.Goals.WeeklyWorkoutTarget
	workouts := 0
	if uid := rt.userID(); uid != "" {
		// Failures are logged and the defaults shown, as in the TUI.
		_ = rt.goals.FetchGoal(ctx, uid)
		if n, err := rt.client.CountWorkouts(ctx, uid); err != nil {
			rt.log.WithError(err).Error("counting workouts")
		} else {
			workouts = n
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FITNESS DASHBOARD  " + time.Now().Format("Mon Jan 2")))
	fmt.Println()

	row := func(m widget.Metric) []string {
		return []string{
			m.Title,
			fmt.Sprintf("%s / %s", cli.FormatNumber(int64(m.Value)), cli.FormatNumber(int64(m.Max))),
			cli.RenderProgressBar(m.Value, m.Max, 20),
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Progress", "Complete"},
		Rows: [][]string{
			row(widget.Metric{Title: "Message Progress", Value: 75, Max: 100}),
			row(widget.Metric{Title: "Calorie Tracking", Value: 0, Max: rt.goals.Goal()}),
			row(widget.Metric{Title: "Workout Progress", Value: workouts, Max: target}),
		},
	}))

	if rt.userID() == "" {
		fmt.Println("\n  Not signed in: showing defaults. Run `fitdash setup` to set a user.")
	}
	fmt.Println("\n  Run `fitdash tui` to log calories.")
	return nil
}
