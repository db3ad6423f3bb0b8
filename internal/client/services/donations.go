package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/biteshare/internal/client/forms"
	"github.com/dmitrijs2005/biteshare/internal/client/karma"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/policy"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/dbx"
	"github.com/dmitrijs2005/biteshare/internal/logging"
)

// DonationRecord is a history line: the donation plus what it went to.
type DonationRecord struct {
	*models.Donation
	RequestTitle string
	Category     models.Category
	Karma        int
}

type DonorStats struct {
	Donations   int
	TotalAmount int
	KarmaPoints int
}

type DonationService interface {
	// Donate records a donation to an open request, accepts the request if
	// it was pending and credits the donor's account with karma, all in one
	// transaction. It returns the points earned. An error after the commit
	// comes with the earned points and means only the session copy is stale.
	Donate(ctx context.Context, requestID string, f forms.DonationForm) (int, error)
	History(ctx context.Context) ([]DonationRecord, error)
	Stats(ctx context.Context) (DonorStats, error)
}

type donationService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	store SessionStore
	log   logging.Logger
}

func NewDonationService(db *sql.DB, repos repomanager.RepositoryManager, store SessionStore, log logging.Logger) DonationService {
	return &donationService{db: db, repos: repos, store: store, log: log}
}

func (s *donationService) Donate(ctx context.Context, requestID string, f forms.DonationForm) (int, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleDonor, snap); err != nil {
		return 0, err
	}

	f.Message = strings.TrimSpace(f.Message)
	if err := forms.Validate(f); err != nil {
		return 0, err
	}

	var points, balance int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		reqs := s.repos.Requests(tx)
		r, err := reqs.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if !r.Open() {
			return fmt.Errorf("%s is %s: %w", r.ID, r.Status, ErrRequestClosed)
		}

		points, err = karma.PointsFor(r.Type, f.Amount)
		if err != nil {
			return err
		}

		d := &models.Donation{
			ID:        newID(),
			DonorID:   snap.User.ID,
			RequestID: r.ID,
			Amount:    f.Amount,
			Message:   f.Message,
			CreatedAt: now(),
		}
		if err := s.repos.Donations(tx).Create(ctx, d); err != nil {
			return err
		}

		accounts := s.repos.Accounts(tx)
		acc, err := accounts.GetByID(ctx, snap.User.ID)
		if err != nil {
			return err
		}
		acc.User.AddKarma(points)
		if err := accounts.UpdateUser(ctx, acc.User); err != nil {
			return err
		}
		balance = acc.User.KarmaPoints

		if r.Status == models.StatusPending {
			return reqs.SetStatus(ctx, r.ID, models.StatusAccepted)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// The account row already holds the new balance. The session catches up
	// to it, which also repairs a session left behind by an earlier failure.
	if delta := balance - s.store.Snapshot().User.KarmaPoints; delta > 0 {
		if err := s.store.CreditKarma(ctx, delta); err != nil {
			s.log.Warn(ctx, "session karma not refreshed", "user_id", snap.User.ID, "error", err)
			return points, fmt.Errorf("donation saved, session not refreshed: %w", err)
		}
	}
	s.log.Info(ctx, "donation recorded", "request_id", requestID, "amount", f.Amount, "karma", points)
	return points, nil
}

func (s *donationService) History(ctx context.Context) ([]DonationRecord, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleDonor, snap); err != nil {
		return nil, err
	}

	ds, err := s.repos.Donations(s.db).ListByDonor(ctx, snap.User.ID)
	if err != nil {
		return nil, err
	}

	reqs := s.repos.Requests(s.db)
	out := make([]DonationRecord, 0, len(ds))
	for _, d := range ds {
		rec := DonationRecord{Donation: d, RequestTitle: "(removed request)"}
		r, err := reqs.GetByID(ctx, d.RequestID)
		switch {
		case errors.Is(err, common.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			rec.RequestTitle = r.Title
			rec.Category = r.Type
			rec.Karma, _ = karma.PointsFor(r.Type, d.Amount)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *donationService) Stats(ctx context.Context) (DonorStats, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleDonor, snap); err != nil {
		return DonorStats{}, err
	}

	count, amount, err := s.repos.Donations(s.db).Totals(ctx, snap.User.ID)
	if err != nil {
		return DonorStats{}, err
	}
	return DonorStats{Donations: count, TotalAmount: amount, KarmaPoints: snap.User.KarmaPoints}, nil
}
