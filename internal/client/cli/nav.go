package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/biteshare/internal/client/guard"
)

// Go opens path through the route guard and shows the result.
func (a *App) Go(ctx context.Context, path string) error {
	d, err := a.Navigator.Go(ctx, path)
	if err != nil {
		return err
	}
	return a.render(ctx, d)
}

// Back leaves the current page, typically the access-denied screen.
func (a *App) Back(ctx context.Context) error {
	d, err := a.Navigator.Back(ctx)
	if err != nil {
		return err
	}
	return a.render(ctx, d)
}

// Relogin signs out and opens the login page. Signing in again returns to
// the page relogin was typed on.
func (a *App) Relogin(ctx context.Context) error {
	d, err := a.Navigator.Reauthenticate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return a.render(ctx, d)
}

func (a *App) render(ctx context.Context, d guard.Decision) error {
	switch d.Kind {
	case guard.Waiting:
		fmt.Fprintln(a.out, "Checking authentication...")
		return nil
	case guard.Denied:
		a.deniedPage(d)
		return nil
	case guard.Redirect:
		// The navigator follows redirects; one here means the page moved
		// without being resolved.
		return fmt.Errorf("unresolved redirect to %s", d.Location.Path)
	}

	switch d.Location.Path {
	case guard.PathLanding:
		a.landingPage()
	case guard.PathLogin:
		a.loginPage(d.Location)
	case guard.PathSignup:
		a.signupPage()
	case guard.PathOnboarding:
		return a.runOnboarding(ctx)
	case guard.PathHome:
		return a.homePage(ctx)
	case guard.PathRequests:
		return a.requestsPage(ctx, "")
	case guard.PathDonations:
		return a.donationsPage(ctx)
	case guard.PathLeaderboard:
		return a.leaderboardPage(ctx)
	}
	return nil
}
