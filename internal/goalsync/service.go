// Package goalsync mirrors the user's server-side daily calorie goal.
//
// The displayed goal only ever changes after the server confirms it: a fetch
// that succeeds, or an update the server accepted. Failed updates leave the
// previous goal in place.
package goalsync

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/theirongolddev/fitdash/internal/notify"

	"github.com/sirupsen/logrus"
)

// DefaultGoal is shown until the first successful fetch.
const DefaultGoal = 2000

// Service fetches and persists the calorie goal. It is safe for concurrent
// use; network calls happen outside the lock.
type Service struct {
	api      UserAPI
	log      logrus.FieldLogger
	notifier notify.Notifier

	mu         sync.Mutex
	goal       int
	nextGen    uint64
	appliedGen uint64
	persistGen uint64
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets where failures are reported.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithNotifier sets where success and error toasts go.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithDefaultGoal overrides DefaultGoal.
func WithDefaultGoal(goal int) Option {
	return func(s *Service) {
		if goal > 0 {
			s.goal = goal
		}
	}
}

// New creates a goal service backed by api.
func New(api UserAPI, opts ...Option) *Service {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Service{
		api:      api,
		log:      quiet,
		notifier: notify.Discard,
		goal:     DefaultGoal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Goal returns the goal currently displayed.
func (s *Service) Goal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}

// FetchGoal reads the goal from the server. Failures are logged and leave
// the displayed goal unchanged. Without a user it does nothing.
func (s *Service) FetchGoal(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	gen := s.begin()
	log := s.log.WithField("user_id", userID)

	user, err := s.api.GetUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("fetching calorie goal")
		return fmt.Errorf("fetch calorie goal: %w", err)
	}

	goal, ok := user.Goal()
	if !ok {
		log.Debug("user has no calorie goal, keeping current")
		return nil
	}
	if !s.apply(gen, goal) {
		log.WithField("goal", goal).Debug("discarding stale calorie goal")
	}
	return nil
}

// PersistGoal stores a new goal on the server. The displayed goal changes
// only once the server accepts it; either way a notification reports the
// outcome. Without a user it does nothing.
func (s *Service) PersistGoal(ctx context.Context, userID string, goal int) error {
	if userID == "" {
		return nil
	}
	gen := s.begin()
	log := s.log.WithFields(logrus.Fields{"user_id": userID, "goal": goal})

	if err := s.api.UpdateCalorieGoal(ctx, userID, goal); err != nil {
		log.WithError(err).Error("updating calorie goal")
		s.notifier.Notify(notify.Notification{
			Title:       "Error",
			Description: "Failed to update calorie goal",
			Variant:     notify.VariantDestructive,
		})
		return fmt.Errorf("update calorie goal: %w", err)
	}

	if !s.applyPersisted(gen, goal) {
		log.Debug("newer calorie goal already saved")
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Success",
		Description: "Calorie goal updated",
		Variant:     notify.VariantDefault,
	})
	return nil
}

// begin hands out the generation of a new operation.
func (s *Service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGen++
	return s.nextGen
}

// apply sets a fetched goal unless an operation that started later has
// already been applied.
func (s *Service) apply(gen uint64, goal int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.appliedGen {
		return false
	}
	s.appliedGen = gen
	s.goal = goal
	return true
}

// applyPersisted sets a goal the server accepted. It wins over every fetch
// started before it completed; only a later-started save supersedes it.
func (s *Service) applyPersisted(gen uint64, goal int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.persistGen {
		return false
	}
	s.persistGen = gen
	s.appliedGen = s.nextGen
	s.goal = goal
	return true
}
