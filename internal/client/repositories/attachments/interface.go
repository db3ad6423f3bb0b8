// Package attachments stores encrypted onboarding files.
package attachments

import (
	"context"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Attachment) error
	// ListByUser returns the user's attachments, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Attachment, error)
	// Delete is a no-op for absent ids.
	Delete(ctx context.Context, id string) error
}
