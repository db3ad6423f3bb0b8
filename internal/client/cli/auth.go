package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/biteshare/internal/client/forms"
	"github.com/dmitrijs2005/biteshare/internal/client/guard"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/onboarding"
	"github.com/dmitrijs2005/biteshare/internal/common"
)

// enterAuthPage makes sure the login or signup page is current. A page that
// is already open keeps its resume destination. It reports false when the
// guard sent the user elsewhere, for example because they are signed in.
func (a *App) enterAuthPage(ctx context.Context, path string) (bool, error) {
	if a.Navigator.Current().Path == path {
		return true, nil
	}

	d, err := a.Navigator.Go(ctx, path)
	if err != nil {
		return false, err
	}
	if d.Kind == guard.Render && d.Location.Path == path {
		return true, nil
	}
	fmt.Fprintln(a.out, "You are already signed in.")
	return false, a.render(ctx, d)
}

// Login prompts for credentials and signs in. On success the user lands on
// the page that sent them to login, or on onboarding or home.
func (a *App) Login(ctx context.Context) error {
	if ok, err := a.enterAuthPage(ctx, guard.PathLogin); !ok {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fmt.Fprintln(a.out, "Signing in...")
	u, err := a.Auth.Login(ctx, forms.LoginForm{Email: email, Password: string(password)})
	if err != nil {
		return err
	}
	return a.afterLogin(ctx, u)
}

// Signup registers a new account and starts its onboarding.
func (a *App) Signup(ctx context.Context) error {
	if ok, err := a.enterAuthPage(ctx, guard.PathSignup); !ok {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "I am a (student/donor)", a.out)
	if err != nil {
		return err
	}

	u, err := a.Auth.Signup(ctx, forms.SignupForm{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     role,
	})
	if err != nil {
		return err
	}
	return a.afterLogin(ctx, u)
}

// Demo signs in as a seeded demo account without prompting.
func (a *App) Demo(ctx context.Context, role string) error {
	r, err := models.ParseRole(strings.ToLower(role))
	if err != nil {
		return err
	}
	if ok, err := a.enterAuthPage(ctx, guard.PathLogin); !ok {
		return err
	}

	u, err := a.Auth.DemoLogin(ctx, r)
	if err != nil {
		return err
	}
	return a.afterLogin(ctx, u)
}

func (a *App) afterLogin(ctx context.Context, u *models.User) error {
	fmt.Fprintf(a.out, "Signed in as %s (%s).\n", u.Name, u.Role())
	d, err := a.Navigator.AfterLogin(ctx, onboarding.NeedsOnboarding(u))
	if err != nil {
		return err
	}
	return a.render(ctx, d)
}

// Logout signs out and returns to the landing page.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrUnauthenticated
	}
	if err := a.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return a.Go(ctx, guard.PathLanding)
}

func (a *App) Whoami(ctx context.Context) error {
	u := a.Sessions.Snapshot().User
	if u == nil {
		return common.ErrUnauthenticated
	}

	tw := a.table()
	fmt.Fprintf(tw, "Name\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	fmt.Fprintf(tw, "Role\t%s\n", u.Role())
	fmt.Fprintf(tw, "Karma\t%d\n", u.KarmaPoints)
	if p, ok := u.StudentProfile(); ok && p.StudentID != "" {
		fmt.Fprintf(tw, "Student ID\t%s\n", p.StudentID)
	}
	if p, ok := u.DonorProfile(); ok && !p.Preferences.Empty() {
		fmt.Fprintf(tw, "Preferences\t%s\n", p.Preferences)
	}
	return tw.Flush()
}
