package widget_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/theirongolddev/fitdash/internal/session"
	"github.com/theirongolddev/fitdash/internal/widget"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const dashboard = "/dashboard"

var alice = session.Session{UserID: "alice"}

func countingFetch(calls *int32, r widget.Reading, err error) widget.FetchFunc {
	return func(context.Context, session.Session) (widget.Reading, error) {
		atomic.AddInt32(calls, 1)
		return r, err
	}
}

func TestTracker_StaticNeverFetches(t *testing.T) {
	tr := widget.NewTracker("messages", widget.Static(widget.Reading{Value: 75, Max: 100}), nil)

	_, ok := tr.Trigger(context.Background(), widget.Deps{Route: dashboard, Session: alice})
	assert.False(t, ok)
	assert.Equal(t, widget.PhaseLoaded, tr.Phase())
	assert.Equal(t, widget.Reading{Value: 75, Max: 100}, tr.Reading())
}

func TestTracker_OnMountFetchesOnce(t *testing.T) {
	var calls int32
	src := widget.OnMount(widget.Reading{Max: 2000}, countingFetch(&calls, widget.Reading{Value: 10, Max: 1800}, nil))
	tr := widget.NewTracker("calories", src, nil)

	req, ok := tr.Trigger(context.Background(), widget.Deps{Route: dashboard, Session: alice})
	require.True(t, ok)
	assert.Equal(t, widget.PhaseLoading, tr.Phase())

	assert.True(t, tr.Resolve(req.Run()))
	assert.Equal(t, widget.PhaseLoaded, tr.Phase())
	assert.Equal(t, widget.Reading{Value: 10, Max: 1800}, tr.Reading())

	_, ok = tr.Trigger(context.Background(), widget.Deps{Route: "/dashboard/workouts", Session: alice})
	assert.False(t, ok)
	_, ok = tr.Trigger(context.Background(), widget.Deps{Route: dashboard, Session: session.Session{UserID: "bob"}})
	assert.False(t, ok)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestTracker_OnMountFailureKeepsDefault(t *testing.T) {
	logger, hook := test.NewNullLogger()
	src := widget.OnMount(widget.Reading{Value: 0, Max: 2000}, countingFetch(new(int32), widget.Reading{}, errors.New("boom")))
	tr := widget.NewTracker("calories", src, logger)

	req, ok := tr.Trigger(context.Background(), widget.Deps{Route: dashboard})
	require.True(t, ok)
	assert.True(t, tr.Resolve(req.Run()))

	assert.Equal(t, widget.PhaseFailed, tr.Phase())
	assert.EqualError(t, tr.Err(), "boom")
	assert.Equal(t, widget.Reading{Value: 0, Max: 2000}, tr.Reading())

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "calories", hook.LastEntry().Data["metric"])
}

func TestTracker_OnRouteOnlyOnMatchingRoute(t *testing.T) {
	var calls int32
	src := widget.OnRoute(dashboard, widget.Reading{Max: 7}, countingFetch(&calls, widget.Reading{Value: 5}, nil))
	tr := widget.NewTracker("workouts", src, nil)

	_, ok := tr.Trigger(context.Background(), widget.Deps{Route: "/dashboard/calorie_log", Session: alice})
	assert.False(t, ok)
	assert.Equal(t, widget.PhaseIdle, tr.Phase())

	req, ok := tr.Trigger(context.Background(), widget.Deps{Route: dashboard, Session: alice})
	require.True(t, ok)
	require.True(t, tr.Resolve(req.Run()))

	r := tr.Reading()
	assert.Equal(t, widget.Reading{Value: 5, Max: 7}, r)
	assert.Equal(t, 71, widget.Percentage(r.Value, r.Max))

	// Same snapshot again: nothing to do.
	_, ok = tr.Trigger(context.Background(), widget.Deps{Route: dashboard, Session: alice})
	assert.False(t, ok)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestTracker_OnRouteRefetchesOnDependencyChange(t *testing.T) {
	var calls int32
	src := widget.OnRoute(dashboard, widget.Reading{Max: 7}, countingFetch(&calls, widget.Reading{Value: 3}, nil))
	tr := widget.NewTracker("workouts", src, nil)
	ctx := context.Background()

	run := func(deps widget.Deps) {
		t.Helper()
		req, ok := tr.Trigger(ctx, deps)
		require.True(t, ok)
		require.True(t, tr.Resolve(req.Run()))
	}

	run(widget.Deps{Route: dashboard, Session: alice})
	run(widget.Deps{Route: dashboard, Session: session.Session{UserID: "bob"}})

	_, ok := tr.Trigger(ctx, widget.Deps{Route: "/dashboard/workouts", Session: alice})
	assert.False(t, ok)
	run(widget.Deps{Route: dashboard, Session: alice})

	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestTracker_OnRouteFailureKeepsPreviousValue(t *testing.T) {
	fail := false
	src := widget.OnRoute(dashboard, widget.Reading{Max: 7}, func(context.Context, session.Session) (widget.Reading, error) {
		if fail {
			return widget.Reading{}, errors.New("backend down")
		}
		return widget.Reading{Value: 4}, nil
	})
	tr := widget.NewTracker("workouts", src, nil)
	ctx := context.Background()

	req, _ := tr.Trigger(ctx, widget.Deps{Route: dashboard, Session: alice})
	tr.Resolve(req.Run())

	fail = true
	req, ok := tr.Trigger(ctx, widget.Deps{Route: dashboard, Session: session.Session{UserID: "bob"}})
	require.True(t, ok)
	tr.Resolve(req.Run())

	assert.Equal(t, widget.PhaseFailed, tr.Phase())
	assert.Equal(t, widget.Reading{Value: 4, Max: 7}, tr.Reading())
}

func TestTracker_DiscardsStaleCompletion(t *testing.T) {
	release := make(chan struct{})
	src := widget.OnRoute(dashboard, widget.Reading{Max: 7}, func(ctx context.Context, s session.Session) (widget.Reading, error) {
		if s.UserID == "alice" {
			// Ignores cancellation and answers late.
			<-release
			return widget.Reading{Value: 1}, nil
		}
		return widget.Reading{Value: 6}, nil
	})
	tr := widget.NewTracker("workouts", src, nil)
	ctx := context.Background()

	first, ok := tr.Trigger(ctx, widget.Deps{Route: dashboard, Session: alice})
	require.True(t, ok)
	firstDone := make(chan widget.Result, 1)
	go func() { firstDone <- first.Run() }()

	second, ok := tr.Trigger(ctx, widget.Deps{Route: dashboard, Session: session.Session{UserID: "bob"}})
	require.True(t, ok)
	assert.True(t, tr.Resolve(second.Run()))

	close(release)
	assert.False(t, tr.Resolve(<-firstDone), "stale result must be discarded")
	assert.Equal(t, 6, tr.Reading().Value)
}

func TestTracker_LeavingRouteCancelsInFlight(t *testing.T) {
	src := widget.OnRoute(dashboard, widget.Reading{Max: 7}, func(ctx context.Context, _ session.Session) (widget.Reading, error) {
		<-ctx.Done()
		return widget.Reading{}, ctx.Err()
	})
	tr := widget.NewTracker("workouts", src, nil)

	req, ok := tr.Trigger(context.Background(), widget.Deps{Route: dashboard, Session: alice})
	require.True(t, ok)
	done := make(chan widget.Result, 1)
	go func() { done <- req.Run() }()

	_, ok = tr.Trigger(context.Background(), widget.Deps{Route: "/dashboard/calorie_log", Session: alice})
	assert.False(t, ok)

	res := <-done
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.False(t, tr.Resolve(res))
	assert.Equal(t, widget.PhaseIdle, tr.Phase())
	assert.Equal(t, 0, tr.Reading().Value)
}

func TestTracker_StopCancels(t *testing.T) {
	src := widget.OnMount(widget.Reading{}, func(ctx context.Context, _ session.Session) (widget.Reading, error) {
		<-ctx.Done()
		return widget.Reading{}, ctx.Err()
	})
	tr := widget.NewTracker("calories", src, nil)

	req, ok := tr.Trigger(context.Background(), widget.Deps{})
	require.True(t, ok)
	done := make(chan widget.Result, 1)
	go func() { done <- req.Run() }()

	tr.Stop()
	assert.ErrorIs(t, (<-done).Err, context.Canceled)
}

func TestKindAndPhaseStrings(t *testing.T) {
	assert.Equal(t, "fetch-on-route", widget.KindOnRoute.String())
	assert.Equal(t, "static", widget.KindStatic.String())
	assert.Equal(t, "loading", widget.PhaseLoading.String())
}
