package session

import "github.com/dmitrijs2005/biteshare/internal/client/models"

// Session is a snapshot of the store. Authentication is derived from the
// presence of a user, so the two can never disagree.
type Session struct {
	User    *models.User
	Loading bool
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// Role returns the user's role, or models.RoleAny when signed out.
func (s Session) Role() models.Role {
	if s.User == nil {
		return models.RoleAny
	}
	return s.User.Role()
}
