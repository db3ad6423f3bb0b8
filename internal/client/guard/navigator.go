package guard

import (
	"context"
	"fmt"
)

const maxRedirects = 8

// Logouter is satisfied by *session.Store.
type Logouter interface {
	Logout(ctx context.Context) error
}

// Navigator keeps the history stack and follows guard redirects. Redirects
// replace the current entry, as a browser router does.
type Navigator struct {
	guard   *Guard
	auth    Logouter
	history []Location
}

func NewNavigator(g *Guard, auth Logouter) *Navigator {
	return &Navigator{guard: g, auth: auth}
}

// Current returns the location on top of the history, or the landing page
// before the first navigation.
func (n *Navigator) Current() Location {
	if len(n.history) == 0 {
		return Location{Path: PathLanding}
	}
	return n.history[len(n.history)-1]
}

// Go navigates to path.
func (n *Navigator) Go(ctx context.Context, path string) (Decision, error) {
	return n.GoTo(ctx, Location{Path: path})
}

// GoTo pushes loc and resolves it.
func (n *Navigator) GoTo(ctx context.Context, loc Location) (Decision, error) {
	n.history = append(n.history, loc)
	return n.resolve(ctx)
}

// Back drops the current entry and re-evaluates the previous one. With no
// previous entry it goes to the landing page.
func (n *Navigator) Back(ctx context.Context) (Decision, error) {
	if len(n.history) > 0 {
		n.history = n.history[:len(n.history)-1]
	}
	if len(n.history) == 0 {
		n.history = append(n.history, Location{Path: PathLanding})
	}
	return n.resolve(ctx)
}

// Reauthenticate signs out and opens the login page, remembering the
// current location so a successful login resumes there.
func (n *Navigator) Reauthenticate(ctx context.Context) (Decision, error) {
	from := n.Current().Path
	if err := n.auth.Logout(ctx); err != nil {
		return Decision{}, err
	}
	return n.GoTo(ctx, Location{Path: PathLogin, From: from})
}

// AfterLogin picks where a freshly signed-in user lands: the page that sent
// them to login if any, otherwise onboarding or home.
func (n *Navigator) AfterLogin(ctx context.Context, needsOnboarding bool) (Decision, error) {
	target := n.Current().From
	if target == "" || target == PathLogin || target == PathSignup {
		target = PathHome
		if needsOnboarding {
			target = PathOnboarding
		}
	}
	return n.replace(ctx, Location{Path: target})
}

func (n *Navigator) replace(ctx context.Context, loc Location) (Decision, error) {
	if len(n.history) == 0 {
		n.history = append(n.history, loc)
	} else {
		n.history[len(n.history)-1] = loc
	}
	return n.resolve(ctx)
}

func (n *Navigator) resolve(ctx context.Context) (Decision, error) {
	for i := 0; i < maxRedirects; i++ {
		d, err := n.guard.Check(ctx, n.Current())
		if err != nil {
			return Decision{}, err
		}
		if d.Kind != Redirect {
			return d, nil
		}
		n.history[len(n.history)-1] = d.Location
	}
	return Decision{}, fmt.Errorf("too many redirects at %s", n.Current().Path)
}
