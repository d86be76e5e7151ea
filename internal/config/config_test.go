package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Goals.DefaultCalorieGoal != 2000 {
		t.Errorf("DefaultCalorieGoal = %d, want 2000", cfg.Goals.DefaultCalorieGoal)
	}
	if cfg.Goals.WeeklyWorkoutTarget != 7 {
		t.Errorf("WeeklyWorkoutTarget = %d, want 7", cfg.Goals.WeeklyWorkoutTarget)
	}
	if cfg.General.DefaultRoute != "/dashboard" {
		t.Errorf("DefaultRoute = %q", cfg.General.DefaultRoute)
	}
	if Exists() {
		t.Error("Exists() = true before Save")
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Session.UserID = "u1"
	cfg.API.BaseURL = "http://fit.example:9000"
	cfg.Goals.WeeklyWorkoutTarget = 5
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "fitdash", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[session]\nuser_id = \"abc\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Session.UserID != "abc" {
		t.Errorf("UserID = %q, want abc", cfg.Session.UserID)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "fitdash", "config.toml")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	_ = os.WriteFile(path, []byte("[goals\n"), 0o600)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetUserID_EnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Session.UserID = " from-file "

	t.Setenv("FITDASH_USER_ID", "")
	if got := GetUserID(cfg); got != "from-file" {
		t.Errorf("GetUserID = %q, want from-file", got)
	}

	t.Setenv("FITDASH_USER_ID", "from-env")
	if got := GetUserID(cfg); got != "from-env" {
		t.Errorf("GetUserID = %q, want from-env", got)
	}
}

func TestGetSentryDSN_EnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.SentryDSN = "https://file@sentry.example/1"

	t.Setenv("FITDASH_SENTRY_DSN", "")
	if got := GetSentryDSN(cfg); got != cfg.Logging.SentryDSN {
		t.Errorf("GetSentryDSN = %q", got)
	}
	t.Setenv("FITDASH_SENTRY_DSN", "https://env@sentry.example/2")
	if got := GetSentryDSN(cfg); got != "https://env@sentry.example/2" {
		t.Errorf("GetSentryDSN = %q", got)
	}
}

func TestAPITimeout(t *testing.T) {
	if got := (APIConfig{}).Timeout(); got != 10*time.Second {
		t.Errorf("zero timeout = %v", got)
	}
	if got := (APIConfig{TimeoutSec: 3}).Timeout(); got != 3*time.Second {
		t.Errorf("Timeout = %v", got)
	}
}

func TestLogPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	cfg := DefaultConfig()
	if got := LogPath(cfg); got != filepath.Join("/tmp/state", "fitdash", "fitdash.log") {
		t.Errorf("LogPath = %q", got)
	}
	cfg.Logging.File = "/var/log/fit.log"
	if got := LogPath(cfg); got != "/var/log/fit.log" {
		t.Errorf("LogPath = %q", got)
	}
}
