// Package guard decides what a navigation attempt renders. It combines the
// route table, the current session and policy.Decide, and keeps the
// navigation history the REPL moves through.
package guard

import "github.com/dmitrijs2005/biteshare/internal/client/models"

const (
	PathLanding     = "/"
	PathSignup      = "/auth/signup"
	PathLogin       = "/auth/login"
	PathOnboarding  = "/onboarding"
	PathHome        = "/home"
	PathRequests    = "/requests"
	PathDonations   = "/donations"
	PathLeaderboard = "/leaderboard"
)

type Access int

const (
	// Public pages render for everyone.
	Public Access = iota
	// PublicOnly pages send signed-in users away.
	PublicOnly
	// Protected pages go through the role policy.
	Protected
)

type Route struct {
	Path   string
	Access Access
	Role   models.Role
}

// Routes is the navigation surface of the client.
var Routes = []Route{
	{Path: PathLanding, Access: Public},
	{Path: PathSignup, Access: PublicOnly},
	{Path: PathLogin, Access: PublicOnly},
	{Path: PathOnboarding, Access: Protected},
	{Path: PathHome, Access: Protected},
	{Path: PathRequests, Access: Protected, Role: models.RoleStudent},
	{Path: PathDonations, Access: Protected, Role: models.RoleDonor},
	{Path: PathLeaderboard, Access: Protected},
}

func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
