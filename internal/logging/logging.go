// Package logging configures the process logger.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params controls where log entries go.
type Params struct {
	// File is the rotating log file. Empty disables file output.
	File string
	// Console, when set, receives a copy of every entry. The TUI leaves it nil
	// since it owns the terminal.
	Console     io.Writer
	Level       string
	JSON        bool
	SentryDSN   string
	Environment string
	Release     string
}

// Setup builds a logger from params. The returned cleanup flushes pending
// Sentry events and closes the log file; call it before exiting.
func Setup(params Params) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetLevel(GetLevel(params.Level))
	if params.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	var closers []func()
	var writers []io.Writer

	if params.File != "" {
		lj := &lumberjack.Logger{
			Filename:   params.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		}
		writers = append(writers, lj)
		closers = append(closers, func() { _ = lj.Close() })
	}
	if params.Console != nil {
		writers = append(writers, params.Console)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(NewCombinedWriter(writers...))
	}

	if params.SentryDSN != "" {
		client, err := sentry.NewClient(sentry.ClientOptions{
			Dsn:         params.SentryDSN,
			Environment: params.Environment,
			Release:     params.Release,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("sentry client: %w", err)
		}
		hub := sentry.NewHub(client, sentry.NewScope())
		log.AddHook(NewSentryHook(hub, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		}))
		closers = append(closers, func() { hub.Flush(2 * time.Second) })
		log.Debug("sentry error reporting enabled")
	}

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return log, cleanup, nil
}

// GetLevel parses a level name, defaulting to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
