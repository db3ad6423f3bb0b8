package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/biteshare/internal/client/guard"
	"github.com/dmitrijs2005/biteshare/internal/client/karma"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/onboarding"
)

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func (a *App) heading(title string) {
	fmt.Fprintf(a.out, "\n== %s ==\n", title)
}

func (a *App) landingPage() {
	a.heading("BiteShare")
	fmt.Fprintln(a.out, "Students share what they need; donors help with food, money and essentials.")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Type 'go /home' to open your dashboard.")
		return
	}
	fmt.Fprintln(a.out, "Type 'signup' to join, 'login' to sign in, or 'demo donor' / 'demo student' to look around.")
}

func (a *App) loginPage(loc guard.Location) {
	a.heading("Sign in")
	if loc.Message != "" {
		fmt.Fprintln(a.out, loc.Message)
	}
	if loc.From != "" {
		fmt.Fprintf(a.out, "You will continue to %s after signing in.\n", loc.From)
	}
	fmt.Fprintln(a.out, "Type 'login' to sign in, 'demo <donor|student>' for a demo account, or 'signup' to register.")
}

func (a *App) signupPage() {
	a.heading("Create an account")
	fmt.Fprintln(a.out, "Type 'signup' to register as a student or a donor.")
}

func (a *App) deniedPage(d guard.Decision) {
	a.heading("Access denied")
	fmt.Fprintf(a.out, "%s requires the %s role. You are signed in as a %s.\n",
		d.Location.Path, d.Outcome.RequiredRole, d.Outcome.ActualRole)
	fmt.Fprintln(a.out, "Type 'back' to return or 'relogin' to sign in with another account.")
}

func (a *App) homePage(ctx context.Context) error {
	u := a.Sessions.Snapshot().User
	if u == nil {
		return nil
	}

	a.heading("Home")
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	if onboarding.NeedsOnboarding(u) {
		fmt.Fprintln(a.out, "Your profile is incomplete. Type 'go /onboarding' to finish it.")
	}

	tw := a.table()
	fmt.Fprintf(tw, "Role\t%s\n", u.Role())
	fmt.Fprintf(tw, "Karma\t%d\n", u.KarmaPoints)

	switch u.Role() {
	case models.RoleStudent:
		counts, err := a.Requests.Counts(ctx)
		if err != nil {
			return err
		}
		for _, st := range []models.RequestStatus{models.StatusPending, models.StatusAccepted, models.StatusFulfilled} {
			fmt.Fprintf(tw, "Requests %s\t%d\n", st, counts[st])
		}
	case models.RoleDonor:
		stats, err := a.Donations.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "Donations made\t%d\n", stats.Donations)
		fmt.Fprintf(tw, "Total given\t%d\n", stats.TotalAmount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if u.Role() == models.RoleStudent {
		fmt.Fprintln(a.out, "Pages: /requests, /leaderboard")
	} else {
		fmt.Fprintln(a.out, "Pages: /donations, /leaderboard")
	}
	return nil
}

func (a *App) requestsPage(ctx context.Context, status models.RequestStatus) error {
	reqs, err := a.Requests.ListMine(ctx, status)
	if err != nil {
		return err
	}

	title := "My requests"
	if status != "" {
		title += " (" + string(status) + ")"
	}
	a.heading(title)
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "No requests yet. Type 'new' to create one.")
		return nil
	}

	if err := a.printRequests(reqs, false); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Commands: new, list [status], fulfill <id>")
	return nil
}

func (a *App) donationsPage(ctx context.Context) error {
	open, err := a.Requests.ListOpen(ctx)
	if err != nil {
		return err
	}

	a.heading("Open requests")
	if len(open) == 0 {
		fmt.Fprintln(a.out, "Nothing needs help right now.")
	} else if err := a.printRequests(open, true); err != nil {
		return err
	}

	history, err := a.Donations.History(ctx)
	if err != nil {
		return err
	}

	a.heading("My donations")
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No donations yet.")
	} else {
		tw := a.table()
		fmt.Fprintln(tw, "DATE\tREQUEST\tAMOUNT\tKARMA\tMESSAGE")
		for _, d := range history {
			fmt.Fprintf(tw, "%s\t%s\t%d\t+%d\t%s\n",
				d.CreatedAt.Local().Format("2006-01-02"), d.RequestTitle, d.Amount, d.Karma, d.Message)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "Commands: donate <id>")
	return nil
}

func (a *App) printRequests(reqs []*models.Request, withStudent bool) error {
	tw := a.table()
	header := "ID\tTYPE\tTITLE\tURGENCY\tSTATUS\tNEEDS"
	if withStudent {
		header += "\tSTUDENT"
	}
	fmt.Fprintln(tw, header)

	for _, r := range reqs {
		needs := strings.Join(r.Items, ", ")
		if r.Type == models.CategoryMoney {
			needs = fmt.Sprintf("$%d", r.Amount)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s", r.ID, r.Type, r.Title, r.Urgency, r.Status, needs)
		if withStudent {
			fmt.Fprintf(tw, "\t%s", r.StudentName)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func (a *App) leaderboardPage(ctx context.Context) error {
	entries, err := a.Leaderboard.Top(ctx)
	if err != nil {
		return err
	}

	a.heading("Leaderboard")
	tw := a.table()
	fmt.Fprintln(tw, "RANK\tNAME\tKARMA\t")
	for _, e := range entries {
		mark := ""
		if e.Current {
			mark = "<- you"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.Rank, e.Name, e.KarmaPoints, mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	a.heading("How karma works")
	for _, r := range karma.Rules() {
		fmt.Fprintf(a.out, "  %-10s +%d per %s\n", r.Category, r.Points, r.Unit)
	}
	return nil
}
