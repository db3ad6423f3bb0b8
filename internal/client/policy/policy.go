// Package policy is the single place where role-based access is decided.
// The route guard, the REPL commands and the onboarding page all ask Decide
// instead of comparing roles themselves.
package policy

import (
	"fmt"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/session"
	"github.com/dmitrijs2005/biteshare/internal/common"
)

// LoginReason is shown on the login page after a redirect.
const LoginReason = "Please sign in to access this page"

type Kind int

const (
	Allow Kind = iota
	RedirectToLogin
	AccessDenied
)

func (k Kind) String() string {
	switch k {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	case AccessDenied:
		return "access-denied"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Outcome is the result of a decision. Reason is set for RedirectToLogin;
// RequiredRole and ActualRole are set for AccessDenied.
type Outcome struct {
	Kind         Kind
	Reason       string
	RequiredRole models.Role
	ActualRole   models.Role
}

// Decide applies, in order: signed out redirects to login; a set required
// role that differs from the user's denies access; anything else is allowed.
// Callers render a waiting state for a loading session before asking.
func Decide(required models.Role, s session.Session) Outcome {
	if !s.IsAuthenticated() {
		return Outcome{Kind: RedirectToLogin, Reason: LoginReason}
	}
	if required != models.RoleAny && s.User.Role() != required {
		return Outcome{Kind: AccessDenied, RequiredRole: required, ActualRole: s.User.Role()}
	}
	return Outcome{Kind: Allow}
}

// Err converts a non-allow outcome to the matching sentinel error, so that
// actions outside navigation can report it the usual way.
func (o Outcome) Err() error {
	switch o.Kind {
	case RedirectToLogin:
		return common.ErrUnauthenticated
	case AccessDenied:
		return fmt.Errorf("%w: requires %s role, signed in as %s", common.ErrForbidden, o.RequiredRole, o.ActualRole)
	}
	return nil
}

// Require is Decide followed by Err.
func Require(required models.Role, s session.Session) error {
	return Decide(required, s).Err()
}
