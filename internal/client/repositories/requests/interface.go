// Package requests persists student assistance requests.
package requests

import (
	"context"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Request) error
	// GetByID returns common.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Request, error)
	// ListByStudent returns the student's requests, newest first. An empty
	// status lists all of them.
	ListByStudent(ctx context.Context, studentID string, status models.RequestStatus) ([]*models.Request, error)
	// ListOpen returns pending and accepted requests, most urgent first.
	ListOpen(ctx context.Context) ([]*models.Request, error)
	SetStatus(ctx context.Context, id string, status models.RequestStatus) error
	CountByStatus(ctx context.Context, studentID string) (map[models.RequestStatus]int, error)
}
