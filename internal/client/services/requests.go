package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/biteshare/internal/client/forms"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/policy"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/dbx"
	"github.com/dmitrijs2005/biteshare/internal/logging"
)

// RequestIDBytes is the number of random bytes in a request id; ids are
// shown hex-encoded.
const RequestIDBytes = 4

type RequestService interface {
	// Create files a new pending request for the signed-in student.
	Create(ctx context.Context, f forms.RequestForm) (*models.Request, error)
	// ListMine lists the student's own requests. An empty status lists all.
	ListMine(ctx context.Context, status models.RequestStatus) ([]*models.Request, error)
	// ListOpen lists the requests donors can act on.
	ListOpen(ctx context.Context) ([]*models.Request, error)
	Get(ctx context.Context, id string) (*models.Request, error)
	// Fulfill marks an accepted request of the student as fulfilled.
	Fulfill(ctx context.Context, id string) error
	Counts(ctx context.Context) (map[models.RequestStatus]int, error)
}

var ErrRequestClosed = errors.New("request is not open")

type requestService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	store SessionStore
	log   logging.Logger
}

func NewRequestService(db *sql.DB, repos repomanager.RepositoryManager, store SessionStore, log logging.Logger) RequestService {
	return &requestService{db: db, repos: repos, store: store, log: log}
}

func (s *requestService) Create(ctx context.Context, f forms.RequestForm) (*models.Request, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleStudent, snap); err != nil {
		return nil, err
	}

	f.Normalize()
	if err := forms.Validate(f); err != nil {
		return nil, err
	}

	id, err := common.MakeRandHexString(RequestIDBytes)
	if err != nil {
		return nil, err
	}

	r := &models.Request{
		ID:          id,
		StudentID:   snap.User.ID,
		StudentName: snap.User.Name,
		Type:        models.Category(f.Type),
		Title:       f.Title,
		Description: f.Description,
		Urgency:     models.Urgency(f.Urgency),
		Status:      models.StatusPending,
		CreatedAt:   now(),
	}
	if r.Type == models.CategoryMoney {
		r.Amount = f.Amount
	} else {
		r.Items = f.Items
	}

	if err := s.repos.Requests(s.db).Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "request created", "request_id", r.ID, "type", r.Type, "urgency", r.Urgency)
	return r, nil
}

func (s *requestService) ListMine(ctx context.Context, status models.RequestStatus) ([]*models.Request, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleStudent, snap); err != nil {
		return nil, err
	}
	return s.repos.Requests(s.db).ListByStudent(ctx, snap.User.ID, status)
}

func (s *requestService) ListOpen(ctx context.Context) ([]*models.Request, error) {
	if err := policy.Require(models.RoleDonor, s.store.Snapshot()); err != nil {
		return nil, err
	}
	return s.repos.Requests(s.db).ListOpen(ctx)
}

// Get returns a request visible to the signed-in user: students see their
// own requests, donors see any.
func (s *requestService) Get(ctx context.Context, id string) (*models.Request, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleAny, snap); err != nil {
		return nil, err
	}

	r, err := s.repos.Requests(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snap.Role() == models.RoleStudent && r.StudentID != snap.User.ID {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (s *requestService) Fulfill(ctx context.Context, id string) error {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleStudent, snap); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Requests(tx)
		r, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r.StudentID != snap.User.ID {
			return common.ErrNotFound
		}
		if r.Status != models.StatusAccepted {
			return fmt.Errorf("only accepted requests can be fulfilled, %s is %s", r.ID, r.Status)
		}
		if err := repo.SetStatus(ctx, r.ID, models.StatusFulfilled); err != nil {
			return err
		}
		s.log.Info(ctx, "request fulfilled", "request_id", r.ID)
		return nil
	})
}

func (s *requestService) Counts(ctx context.Context) (map[models.RequestStatus]int, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleStudent, snap); err != nil {
		return nil, err
	}
	return s.repos.Requests(s.db).CountByStatus(ctx, snap.User.ID)
}
