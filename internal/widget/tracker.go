package widget

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Phase is where a tracker is in its fetch cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Request is one fetch started by Tracker.Trigger. Run it off the update loop
// and hand the Result back to Tracker.Resolve.
type Request struct {
	Name string
	Gen  uint64
	Deps Deps

	ctx   context.Context
	fetch FetchFunc
}

// Result is the outcome of a Request.
type Result struct {
	Name    string
	Gen     uint64
	Reading Reading
	Err     error
}

// Run performs the fetch. It blocks and is safe to call from any goroutine.
func (r Request) Run() Result {
	res := Result{Name: r.Name, Gen: r.Gen}
	if r.fetch == nil {
		res.Err = errors.New("widget: source has no fetch function")
		return res
	}
	res.Reading, res.Err = r.fetch(r.ctx, r.Deps.Session)
	if res.Err == nil && r.ctx.Err() != nil {
		res.Err = r.ctx.Err()
	}
	return res
}

// Tracker drives one Source through idle -> loading -> loaded|failed.
//
// Every started fetch gets a generation and its own cancellable context.
// Starting a new fetch, or a change of dependencies, cancels the one in
// flight, and Resolve ignores results from any generation but the latest.
// Tracker is owned by the update loop and is not safe for concurrent use.
type Tracker struct {
	name string
	src  Source
	log  logrus.FieldLogger

	phase   Phase
	resting Phase // phase to fall back to when an in-flight fetch is abandoned
	reading Reading
	err     error

	gen      uint64
	observed bool
	last     Deps
	mounted  bool
	cancel   context.CancelFunc
}

// NewTracker creates a tracker for src. A nil logger discards failures.
func NewTracker(name string, src Source, log logrus.FieldLogger) *Tracker {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	phase := PhaseIdle
	if src.Kind == KindStatic {
		phase = PhaseLoaded
	}
	return &Tracker{
		name:    name,
		src:     src,
		log:     log.WithField("metric", name),
		phase:   phase,
		resting: phase,
		reading: src.Initial,
	}
}

// Name returns the tracker's name.
func (t *Tracker) Name() string { return t.name }

// Kind returns the kind of the underlying source.
func (t *Tracker) Kind() Kind { return t.src.Kind }

// Phase returns the current phase.
func (t *Tracker) Phase() Phase { return t.phase }

// Reading returns the latest applied reading, or the initial one.
func (t *Tracker) Reading() Reading { return t.reading }

// Err returns the error of the last failed fetch, if the last fetch failed.
func (t *Tracker) Err() error { return t.err }

// Trigger is called whenever the dependencies may have changed. It returns a
// Request when the source wants a fetch for deps.
func (t *Tracker) Trigger(parent context.Context, deps Deps) (Request, bool) {
	changed := !t.observed || deps != t.last
	t.observed = true
	t.last = deps

	switch t.src.Kind {
	case KindOnMount:
		if t.mounted {
			return Request{}, false
		}
		t.mounted = true
	case KindOnRoute:
		if !changed {
			return Request{}, false
		}
		// The snapshot moved on: whatever is in flight is stale now.
		t.abandon()
		if deps.Route != t.src.Route {
			return Request{}, false
		}
	default:
		return Request{}, false
	}

	t.abandon()
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.gen++
	t.phase = PhaseLoading

	return Request{
		Name:  t.name,
		Gen:   t.gen,
		Deps:  deps,
		ctx:   ctx,
		fetch: t.src.Fetch,
	}, true
}

// Resolve applies a result and reports whether it was current.
func (t *Tracker) Resolve(res Result) bool {
	if res.Name != t.name || res.Gen != t.gen || t.phase != PhaseLoading {
		t.log.WithField("gen", res.Gen).Debug("discarding stale metric result")
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	if res.Err != nil {
		t.err = res.Err
		t.phase = PhaseFailed
		t.resting = PhaseFailed
		t.log.WithError(res.Err).Error("metric fetch failed")
		return true
	}

	r := res.Reading
	if r.Max == 0 {
		r.Max = t.reading.Max
	}
	t.reading = r
	t.err = nil
	t.phase = PhaseLoaded
	t.resting = PhaseLoaded
	return true
}

// Stop cancels any in-flight fetch.
func (t *Tracker) Stop() {
	t.abandon()
}

// abandon cancels the in-flight fetch, if any, and makes its result stale.
func (t *Tracker) abandon() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
	t.gen++
	t.phase = t.resting
}
