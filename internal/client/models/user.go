package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/biteshare/internal/common"
)

var ErrInvalidUser = errors.New("invalid user record")

// User is an authenticated person. Role and the profile variant are tied
// together: SetProfile refuses a profile of the other role.
type User struct {
	ID          string
	Email       string
	Name        string
	KarmaPoints int

	role    Role
	profile Profile
}

func NewUser(id, email, name string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidUser, role)
	}
	return &User{
		ID:      id,
		Email:   email,
		Name:    name,
		role:    role,
		profile: emptyProfile(role),
	}, nil
}

func (u *User) Role() Role { return u.role }

func (u *User) Profile() Profile { return u.profile }

// SetProfile attaches p. A profile belonging to another role is rejected
// with common.ErrForbidden.
func (u *User) SetProfile(p Profile) error {
	if p == nil || p.Role() != u.role {
		return fmt.Errorf("%w: %s profile on %s account", common.ErrForbidden, profileRole(p), u.role)
	}
	u.profile = p.clone()
	return nil
}

func (u *User) StudentProfile() (StudentProfile, bool) {
	p, ok := u.profile.(StudentProfile)
	return p, ok
}

func (u *User) DonorProfile() (DonorProfile, bool) {
	p, ok := u.profile.(DonorProfile)
	return p, ok
}

// AddKarma increases the balance. Non-positive amounts are ignored.
func (u *User) AddKarma(amount int) {
	if amount > 0 {
		u.KarmaPoints += amount
	}
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.profile != nil {
		c.profile = u.profile.clone()
	}
	return &c
}

func profileRole(p Profile) Role {
	if p == nil {
		return RoleAny
	}
	return p.Role()
}

// userJSON is the flat wire form of a user, shared by the persisted session
// record and the account directory.
type userJSON struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        Role       `json:"role"`
	KarmaPoints int        `json:"karmaPoints"`
	StudentID   string     `json:"studentId,omitempty"`
	Preferences []Category `json:"preferences,omitempty"`
}

func (u *User) MarshalJSON() ([]byte, error) {
	j := userJSON{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.role,
		KarmaPoints: u.KarmaPoints,
	}
	switch p := u.profile.(type) {
	case StudentProfile:
		j.StudentID = p.StudentID
	case DonorProfile:
		j.Preferences = p.Preferences
	}
	return json.Marshal(j)
}

// UnmarshalJSON rejects records that cannot describe a valid user: unknown
// role, negative karma, or fields of the other role's profile.
func (u *User) UnmarshalJSON(b []byte) error {
	var j userJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if j.ID == "" || !j.Role.Valid() || j.KarmaPoints < 0 {
		return ErrInvalidUser
	}

	nu, _ := NewUser(j.ID, j.Email, j.Name, j.Role)
	nu.KarmaPoints = j.KarmaPoints

	switch j.Role {
	case RoleStudent:
		if len(j.Preferences) > 0 {
			return fmt.Errorf("%w: student with preferences", ErrInvalidUser)
		}
		nu.profile = StudentProfile{StudentID: j.StudentID}
	case RoleDonor:
		if j.StudentID != "" {
			return fmt.Errorf("%w: donor with student id", ErrInvalidUser)
		}
		prefs, err := NewPreferenceSet(j.Preferences...)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidUser, err)
		}
		nu.profile = DonorProfile{Preferences: prefs}
	}

	*u = *nu
	return nil
}
