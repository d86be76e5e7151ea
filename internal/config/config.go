package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all fitdash configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	API        APIConfig        `toml:"api"`
	Session    SessionConfig    `toml:"session"`
	Goals      GoalsConfig      `toml:"goals"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultRoute string `toml:"default_route"`
}

// APIConfig points at the fitness backend.
type APIConfig struct {
	BaseURL    string `toml:"base_url"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// SessionConfig identifies the signed-in user.
type SessionConfig struct {
	UserID string `toml:"user_id,omitempty"`
}

// GoalsConfig holds targets used before the server answers.
type GoalsConfig struct {
	DefaultCalorieGoal  int `toml:"default_calorie_goal"`
	WeeklyWorkoutTarget int `toml:"weekly_workout_target"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls the log file and error reporting.
type LoggingConfig struct {
	Level     string `toml:"level"`
	File      string `toml:"file,omitempty"`
	JSON      bool   `toml:"json"`
	SentryDSN string `toml:"sentry_dsn,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultRoute: "/dashboard",
		},
		API: APIConfig{
			BaseURL:    "http://localhost:8000",
			TimeoutSec: 10,
		},
		Goals: GoalsConfig{
			DefaultCalorieGoal:  2000,
			WeeklyWorkoutTarget: 7,
		},
		Appearance: AppearanceConfig{
			Theme: "meadow",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Timeout returns the API timeout, falling back to ten seconds.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fitdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fitdash")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// StateDir returns the XDG state directory, home of the default log file.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "fitdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "fitdash")
}

// LogPath returns the configured log file, or fitdash.log in StateDir.
func LogPath(cfg Config) string {
	if cfg.Logging.File != "" {
		return cfg.Logging.File
	}
	return filepath.Join(StateDir(), "fitdash.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetUserID returns the signed-in user from env var or config, in that order.
func GetUserID(cfg Config) string {
	if id := strings.TrimSpace(os.Getenv("FITDASH_USER_ID")); id != "" {
		return id
	}
	return strings.TrimSpace(cfg.Session.UserID)
}

// GetSentryDSN returns the Sentry DSN from env var or config, in that order.
func GetSentryDSN(cfg Config) string {
	if dsn := os.Getenv("FITDASH_SENTRY_DSN"); dsn != "" {
		return dsn
	}
	return cfg.Logging.SentryDSN
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
