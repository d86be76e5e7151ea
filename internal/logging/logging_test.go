package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faultyWriter struct{}

func (faultyWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	sb2 := &strings.Builder{}
	cw := NewCombinedWriter(sb1, sb2)

	n, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", sb1.String())
	assert.Equal(t, "hello", sb2.String())
}

func TestCombinedWriter_Write_WithError(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(faultyWriter{}, sb)

	n, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", sb.String())
	assert.EqualError(t, cw.Err(), "disk full")

	cw = NewCombinedWriter(faultyWriter{}, faultyWriter{})
	n, err = cw.Write([]byte("hello"))
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestCombinedWriter_PartialFailureKeepsLogrusQuiet(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(faultyWriter{}, sb)

	log := logrus.New()
	log.SetOutput(cw)
	log.Info("calorie goal fetched")

	assert.Contains(t, sb.String(), "calorie goal fetched")
	assert.EqualError(t, cw.Err(), "disk full")
}

func TestSetup_WritesConfiguredPathAsIs(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fitdash.txt")

	log, cleanup, err := Setup(Params{File: file})
	require.NoError(t, err)
	log.Info("workout count fetched")
	cleanup()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "workout count fetched")
	_, err = os.Stat(file + ".log")
	assert.True(t, os.IsNotExist(err))
}

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"trace":   logrus.TraceLevel,
		"":        logrus.InfoLevel,
		"bogus":   logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), "level %q", in)
	}
}

func TestSetup_FileAndConsole(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fitdash.log")
	console := &strings.Builder{}

	log, cleanup, err := Setup(Params{File: file, Console: console, Level: "debug"})
	require.NoError(t, err)

	log.WithField("metric", "workouts").Debug("fetch started")
	cleanup()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch started")
	assert.Contains(t, string(data), "metric=workouts")
	assert.Contains(t, console.String(), "fetch started")
}

func TestSetup_NoOutputDiscards(t *testing.T) {
	log, cleanup, err := Setup(Params{JSON: true})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
	log.Info("goes nowhere")
}

func TestSentryHook_Fire(t *testing.T) {
	var got []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			got = append(got, event)
			return nil
		},
	})
	require.NoError(t, err)
	hub := sentry.NewHub(client, sentry.NewScope())

	log := logrus.New()
	log.SetOutput(&strings.Builder{})
	log.AddHook(NewSentryHook(hub, []logrus.Level{logrus.ErrorLevel}))

	log.Warn("not forwarded")
	log.WithError(errors.New("boom")).WithField("user_id", "u1").Error("updating calorie goal")

	require.Len(t, got, 1)
	assert.Equal(t, "updating calorie goal", got[0].Message)
	assert.Equal(t, sentry.LevelError, got[0].Level)
	assert.Equal(t, "boom", got[0].Extra["error"])
	assert.Equal(t, "u1", got[0].Extra["user_id"])
}
