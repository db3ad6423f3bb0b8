package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/biteshare/internal/client/forms"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/policy"
	"github.com/dmitrijs2005/biteshare/internal/client/services"
)

// NewRequest prompts for an assistance request and files it.
func (a *App) NewRequest(ctx context.Context) error {
	if err := policy.Require(models.RoleStudent, a.Sessions.Snapshot()); err != nil {
		return err
	}

	var f forms.RequestForm
	var err error

	if f.Type, err = getSimpleText(a.reader, "Type (food/money/essentials)", a.out); err != nil {
		return err
	}
	if f.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if f.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if f.Urgency, err = getSimpleText(a.reader, "Urgency (low/medium/high)", a.out); err != nil {
		return err
	}

	if models.Category(strings.ToLower(f.Type)) == models.CategoryMoney {
		if f.Amount, err = GetNumber(a.reader, "Amount needed", a.out); err != nil {
			return err
		}
	} else {
		if f.Items, err = GetMultiline(a.reader, "Items needed, one per line", a.out); err != nil {
			return err
		}
	}

	r, err := a.Requests.Create(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request %s created.\n", r.ID)
	return nil
}

// List shows the student's requests, optionally filtered by status.
func (a *App) List(ctx context.Context, status string) error {
	st, err := models.ParseStatusFilter(status)
	if err != nil {
		return err
	}
	return a.requestsPage(ctx, st)
}

func (a *App) Fulfill(ctx context.Context, id string) error {
	if err := a.Requests.Fulfill(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request %s marked as fulfilled.\n", id)
	return nil
}

// Donate prompts for the amount and an optional note, then records the
// donation.
func (a *App) Donate(ctx context.Context, id string) error {
	if err := policy.Require(models.RoleDonor, a.Sessions.Snapshot()); err != nil {
		return err
	}

	r, err := a.Requests.Get(ctx, id)
	if err != nil {
		return err
	}

	if !r.Open() {
		return fmt.Errorf("request %s is %s: %w", r.ID, r.Status, services.ErrRequestClosed)
	}

	prompt := "How many meals?"
	switch r.Type {
	case models.CategoryMoney:
		prompt = fmt.Sprintf("Amount to give (requested $%d)", r.Amount)
	case models.CategoryEssentials:
		prompt = "How many packages?"
	}

	var f forms.DonationForm
	if f.Amount, err = GetNumber(a.reader, prompt, a.out); err != nil {
		return err
	}
	if f.Message, err = getSimpleText(a.reader, "Message for the student (optional)", a.out); err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Donate %d to %q?", f.Amount, r.Title), a.out)
	if err != nil || !ok {
		return err
	}

	points, err := a.Donations.Donate(ctx, id, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Thank you! You earned %d karma points.\n", points)
	return nil
}
