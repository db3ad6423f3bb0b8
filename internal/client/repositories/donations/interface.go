// Package donations records donor contributions to requests.
package donations

import (
	"context"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
)

type Repository interface {
	Create(ctx context.Context, d *models.Donation) error
	// ListByDonor returns the donor's history, newest first.
	ListByDonor(ctx context.Context, donorID string) ([]*models.Donation, error)
	// Totals returns how many donations the donor made and their summed amount.
	Totals(ctx context.Context, donorID string) (count int, amount int, err error)
}
