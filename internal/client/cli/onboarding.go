package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/biteshare/internal/client/guard"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/onboarding"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/filex"
)

// runOnboarding walks the user through profile completion and opens home
// when it is done.
func (a *App) runOnboarding(ctx context.Context) error {
	flow, err := a.Onboarding.Start(ctx)
	if err != nil {
		return err
	}

	a.heading("Complete your profile")
	for flow.Step() != onboarding.Complete {
		var err error
		switch flow.Step() {
		case onboarding.Start:
			err = a.onboardingStart(flow)
		case onboarding.Verify:
			err = a.onboardingVerify(ctx, flow)
		case onboarding.ChoosePreferences:
			err = a.onboardingPreferences(ctx, flow)
		}

		if errors.Is(err, common.ErrValidation) {
			fmt.Fprintln(a.out, describe(err))
			continue
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, "Profile saved.")
	return a.Go(ctx, guard.PathHome)
}

func (a *App) onboardingStart(flow *onboarding.Flow) error {
	fmt.Fprintln(a.out, "Step 1 of 2: as a student you can ask donors for food, money and essentials.")
	fmt.Fprintln(a.out, "Next you will verify your student status.")
	if _, err := getSimpleText(a.reader, "Press Enter to continue", a.out); err != nil {
		return err
	}
	return flow.Advance()
}

func (a *App) onboardingVerify(ctx context.Context, flow *onboarding.Flow) error {
	fmt.Fprintln(a.out, "Step 2 of 2: verify your student status.")

	prompt := "Student ID"
	if id := flow.StudentID(); id != "" {
		prompt += fmt.Sprintf(" [%s]", id)
	}
	id, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if id != "" {
		if err := flow.SetStudentID(id); err != nil {
			return err
		}
	}

	path, err := getSimpleText(a.reader, "Path to an ID photo (optional, Enter to skip)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		name, data, err := filex.ReadAttachment(path, a.MaxAttachmentSize)
		if err != nil {
			fmt.Fprintln(a.out, describe(err))
		} else if err := flow.Attach(onboarding.Attachment{Name: name, Data: data}); err != nil {
			return err
		}
	}

	answer, err := getSimpleText(a.reader, "Type 'submit' to finish or 'back' to return", a.out)
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "back") {
		return flow.Back()
	}
	return a.Onboarding.Submit(ctx, flow)
}

func (a *App) onboardingPreferences(ctx context.Context, flow *onboarding.Flow) error {
	fmt.Fprintln(a.out, "Choose what you would like to donate:")
	prefs := flow.Preferences()
	for _, c := range models.Categories {
		mark := " "
		if prefs.Has(c) {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %s\n", mark, c)
	}

	answer, err := getSimpleText(a.reader, "Type a category to toggle it, or 'done' to finish", a.out)
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "done") {
		return a.Onboarding.Submit(ctx, flow)
	}

	c, err := models.ParseCategory(answer)
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return nil
	}
	return flow.Toggle(c)
}
