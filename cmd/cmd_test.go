package cmd

import (
	"context"
	"testing"

	"github.com/theirongolddev/fitdash/internal/config"
	"github.com/theirongolddev/fitdash/internal/userapi/userapitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T, srv *userapitest.Server, user string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("FITDASH_USER_ID", "")
	t.Setenv("FITDASH_SENTRY_DSN", "")

	flagAPIURL, flagUser = srv.URL, user
	rootCmd.SetContext(context.Background())
	t.Cleanup(func() { flagAPIURL, flagUser = "", "" })
}

func TestApplySetup(t *testing.T) {
	cfg, err := applySetup(config.DefaultConfig(), setupValues{
		UserID:        " u1 ",
		BaseURL:       "https://fit.example/",
		CalorieGoal:   "1800",
		WorkoutTarget: 5,
		Theme:         "ember",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", cfg.Session.UserID)
	assert.Equal(t, "https://fit.example", cfg.API.BaseURL)
	assert.Equal(t, 1800, cfg.Goals.DefaultCalorieGoal)
	assert.Equal(t, 5, cfg.Goals.WeeklyWorkoutTarget)
	assert.Equal(t, "ember", cfg.Appearance.Theme)
}

func TestApplySetup_Rejects(t *testing.T) {
	base := setupValues{BaseURL: "http://localhost:8000", CalorieGoal: "2000"}

	bad := base
	bad.CalorieGoal = "-5"
	_, err := applySetup(config.DefaultConfig(), bad)
	assert.Error(t, err)

	bad = base
	bad.BaseURL = "localhost"
	_, err = applySetup(config.DefaultConfig(), bad)
	assert.Error(t, err)

	cfg, err := applySetup(config.DefaultConfig(), setupValues{BaseURL: "http://x", CalorieGoal: "1", Theme: "nope"})
	require.NoError(t, err)
	assert.Equal(t, "meadow", cfg.Appearance.Theme)
	assert.Equal(t, 7, cfg.Goals.WeeklyWorkoutTarget)
}

func TestGoalSet_PersistsThroughAPI(t *testing.T) {
	srv := userapitest.NewServer()
	defer srv.Close()
	isolate(t, srv, "u1")

	require.NoError(t, runGoalSet(rootCmd, []string{"2400"}))
	got, ok := srv.Goal("u1")
	require.True(t, ok)
	assert.Equal(t, 2400, got)

	assert.Error(t, runGoalSet(rootCmd, []string{"lots"}))
}

func TestGoal_RequiresUser(t *testing.T) {
	srv := userapitest.NewServer()
	defer srv.Close()
	isolate(t, srv, "")

	err := runGoal(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user configured")
	assert.Empty(t, srv.Requests())
}

func TestSnapshot_FailuresFallBackToDefaults(t *testing.T) {
	srv := userapitest.NewServer()
	defer srv.Close()
	isolate(t, srv, "u1")
	srv.FailWith(500)

	assert.NoError(t, runSnapshot(rootCmd, nil))
	assert.Equal(t, []string{"GET /auth/user/u1", "GET /workouts/user/u1"}, srv.Requests())
}
