package models

// Profile is the role-specific part of a user. Exactly one implementation
// exists per role.
type Profile interface {
	Role() Role
	// Complete reports whether onboarding has filled the profile in.
	Complete() bool
	clone() Profile
}

type StudentProfile struct {
	StudentID string
}

func (StudentProfile) Role() Role       { return RoleStudent }
func (p StudentProfile) Complete() bool { return p.StudentID != "" }
func (p StudentProfile) clone() Profile { return p }

type DonorProfile struct {
	Preferences PreferenceSet
}

func (DonorProfile) Role() Role       { return RoleDonor }
func (p DonorProfile) Complete() bool { return !p.Preferences.Empty() }
func (p DonorProfile) clone() Profile { return DonorProfile{Preferences: p.Preferences.Clone()} }

func emptyProfile(r Role) Profile {
	if r == RoleDonor {
		return DonorProfile{}
	}
	return StudentProfile{}
}
