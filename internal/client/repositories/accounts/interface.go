// Package accounts is the local account directory: users together with the
// password verifiers that let them sign in on this installation.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
)

type Repository interface {
	// Create fails with common.ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, a *models.Account) error
	// GetByEmail matches case-insensitively; common.ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// UpdateUser overwrites the mutable user fields (name, karma, profile).
	UpdateUser(ctx context.Context, u *models.User) error
	// TopByKarma returns up to limit users ordered by karma, highest first.
	// A negative limit returns all of them.
	TopByKarma(ctx context.Context, limit int) ([]*models.User, error)
}
