package guard

import (
	"context"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/policy"
	"github.com/dmitrijs2005/biteshare/internal/client/session"
	"github.com/dmitrijs2005/biteshare/internal/timex"
)

// SessionSource is satisfied by *session.Store.
type SessionSource interface {
	Snapshot() session.Session
}

type DecisionKind int

const (
	// Render shows the page at Path.
	Render DecisionKind = iota
	// Redirect replaces the current location with Path.
	Redirect
	// Denied shows the access-denied screen described by Outcome.
	Denied
	// Waiting means the session is still loading.
	Waiting
)

// Location is an entry of the navigation history. From and Message are
// carried to the login page by a redirect.
type Location struct {
	Path    string
	From    string
	Message string
}

type Decision struct {
	Kind     DecisionKind
	Location Location
	Outcome  policy.Outcome
}

type Guard struct {
	sessions   SessionSource
	checkDelay time.Duration
}

// New returns a guard that waits checkDelay before deciding on protected
// routes, mirroring the "checking authentication" screen of the web client.
func New(sessions SessionSource, checkDelay time.Duration) *Guard {
	return &Guard{sessions: sessions, checkDelay: checkDelay}
}

// Check decides what loc renders. The wait before protected decisions is
// abandoned when ctx is cancelled, and no decision is made.
func (g *Guard) Check(ctx context.Context, loc Location) (Decision, error) {
	route, ok := Lookup(loc.Path)
	if !ok {
		return Decision{Kind: Redirect, Location: Location{Path: PathLanding}}, nil
	}

	switch route.Access {
	case Public:
		return Decision{Kind: Render, Location: loc}, nil
	case PublicOnly:
		return g.checkPublicOnly(loc), nil
	}

	if err := timex.Sleep(ctx, g.checkDelay); err != nil {
		return Decision{}, err
	}

	s := g.sessions.Snapshot()
	if s.Loading {
		return Decision{Kind: Waiting, Location: loc}, nil
	}

	o := policy.Decide(route.Role, s)
	switch o.Kind {
	case policy.RedirectToLogin:
		return Decision{
			Kind:     Redirect,
			Location: Location{Path: PathLogin, From: loc.Path, Message: o.Reason},
			Outcome:  o,
		}, nil
	case policy.AccessDenied:
		return Decision{Kind: Denied, Location: loc, Outcome: o}, nil
	}
	return Decision{Kind: Render, Location: loc, Outcome: o}, nil
}

func (g *Guard) checkPublicOnly(loc Location) Decision {
	s := g.sessions.Snapshot()
	if s.Loading {
		return Decision{Kind: Waiting, Location: loc}
	}
	if !s.IsAuthenticated() {
		return Decision{Kind: Render, Location: loc}
	}

	target := loc.From
	if target == "" {
		target = PathHome
	}
	return Decision{Kind: Redirect, Location: Location{Path: target}}
}
