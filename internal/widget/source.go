package widget

import (
	"context"

	"github.com/theirongolddev/fitdash/internal/session"
)

// Kind tags how a Source obtains its value.
type Kind int

const (
	// KindStatic values are fixed when the dashboard is composed.
	KindStatic Kind = iota
	// KindOnMount values are fetched once, the first time the widget is shown.
	KindOnMount
	// KindOnRoute values are fetched while a specific route is active, again
	// whenever the route or the session changes.
	KindOnRoute
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindOnMount:
		return "fetch-on-mount"
	case KindOnRoute:
		return "fetch-on-route"
	}
	return "unknown"
}

// Reading is a value/max pair produced by a source. A zero Max keeps the
// max the source started with.
type Reading struct {
	Value int
	Max   int
}

// FetchFunc obtains a fresh reading for the given session.
type FetchFunc func(ctx context.Context, s session.Session) (Reading, error)

// Source describes where a widget's numbers come from.
type Source struct {
	Kind    Kind
	Initial Reading
	Route   string
	Fetch   FetchFunc
}

// Static returns a source with fixed numbers.
func Static(r Reading) Source {
	return Source{Kind: KindStatic, Initial: r}
}

// OnMount returns a source fetched once on first display.
func OnMount(initial Reading, fetch FetchFunc) Source {
	return Source{Kind: KindOnMount, Initial: initial, Fetch: fetch}
}

// OnRoute returns a source fetched while route is the current route.
func OnRoute(route string, initial Reading, fetch FetchFunc) Source {
	return Source{Kind: KindOnRoute, Initial: initial, Route: route, Fetch: fetch}
}

// Deps is the snapshot of everything a fetch depends on.
type Deps struct {
	Route   string
	Session session.Session
}
