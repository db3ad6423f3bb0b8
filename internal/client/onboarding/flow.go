// Package onboarding implements the one-time profile completion that follows
// a user's first sign-in.
//
// Students go Start -> Verify -> Complete and may step back from Verify to
// Start without losing what they typed. Donors have a single
// ChoosePreferences step before Complete. Running the flow again after
// completion is allowed and overwrites the stored profile.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/biteshare/internal/client/forms"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
)

type Step int

const (
	Start Step = iota
	Verify
	ChoosePreferences
	Complete
)

func (s Step) String() string {
	switch s {
	case Start:
		return "start"
	case Verify:
		return "verify"
	case ChoosePreferences:
		return "choose-preferences"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

var ErrInvalidTransition = errors.New("not allowed at this step")

// NeedsOnboarding reports whether u has not filled in its role profile yet.
func NeedsOnboarding(u *models.User) bool {
	return u != nil && (u.Profile() == nil || !u.Profile().Complete())
}

// Completer is satisfied by *session.Store.
type Completer interface {
	CompleteProfile(ctx context.Context, p models.Profile) error
}

// Attachment is an optional file picked during verification. It is never
// inspected.
type Attachment struct {
	Name string
	Data []byte
}

type Flow struct {
	role       models.Role
	step       Step
	studentID  string
	attachment *Attachment
	prefs      models.PreferenceSet
}

// New starts a flow for u, pre-filled with its current profile.
func New(u *models.User) *Flow {
	f := &Flow{role: u.Role()}
	switch p := u.Profile().(type) {
	case models.StudentProfile:
		f.studentID = p.StudentID
	case models.DonorProfile:
		f.prefs = p.Preferences.Clone()
	}

	if f.role == models.RoleDonor {
		f.step = ChoosePreferences
	} else {
		f.step = Start
	}
	return f
}

func (f *Flow) Step() Step                        { return f.step }
func (f *Flow) Role() models.Role                 { return f.role }
func (f *Flow) StudentID() string                 { return f.studentID }
func (f *Flow) Preferences() models.PreferenceSet { return f.prefs.Clone() }
func (f *Flow) Attachment() *Attachment           { return f.attachment }

// Advance moves a student from Start to Verify.
func (f *Flow) Advance() error {
	if f.step != Start {
		return f.badStep("advance")
	}
	f.step = Verify
	return nil
}

// Back returns a student from Verify to Start. Entered data is kept.
func (f *Flow) Back() error {
	if f.step != Verify {
		return f.badStep("go back")
	}
	f.step = Start
	return nil
}

func (f *Flow) SetStudentID(id string) error {
	if f.step != Verify {
		return f.badStep("set student id")
	}
	f.studentID = strings.TrimSpace(id)
	return nil
}

func (f *Flow) Attach(a Attachment) error {
	if f.step != Verify {
		return f.badStep("attach a file")
	}
	f.attachment = &a
	return nil
}

func (f *Flow) Toggle(c models.Category) error {
	if f.step != ChoosePreferences {
		return f.badStep("toggle preferences")
	}
	if !c.Valid() {
		return fmt.Errorf("unknown preference %q", c)
	}
	f.prefs = f.prefs.Toggle(c)
	return nil
}

// CanSubmit reports whether Submit would pass validation.
func (f *Flow) CanSubmit() bool {
	return f.Validate() == nil
}

// Validate returns the error Submit would fail with before reaching c.
func (f *Flow) Validate() error {
	_, err := f.profile()
	return err
}

// Submit validates the step, hands the profile to c and completes the flow.
func (f *Flow) Submit(ctx context.Context, c Completer) error {
	p, err := f.profile()
	if err != nil {
		return err
	}
	if err := c.CompleteProfile(ctx, p); err != nil {
		return err
	}
	f.step = Complete
	return nil
}

func (f *Flow) profile() (models.Profile, error) {
	switch f.step {
	case Verify:
		if err := forms.Validate(forms.StudentVerificationForm{StudentID: f.studentID}); err != nil {
			return nil, err
		}
		return models.StudentProfile{StudentID: f.studentID}, nil
	case ChoosePreferences:
		if err := forms.Validate(forms.PreferencesForm{Preferences: f.prefs}); err != nil {
			return nil, err
		}
		return models.DonorProfile{Preferences: f.prefs.Clone()}, nil
	}
	return nil, f.badStep("submit")
}

func (f *Flow) badStep(action string) error {
	return fmt.Errorf("cannot %s during %s: %w", action, f.step, ErrInvalidTransition)
}
