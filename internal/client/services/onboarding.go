package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/onboarding"
	"github.com/dmitrijs2005/biteshare/internal/client/policy"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/biteshare/internal/cryptox"
	"github.com/dmitrijs2005/biteshare/internal/logging"
)

type OnboardingService interface {
	// Start opens a flow for the signed-in user.
	Start(ctx context.Context) (*onboarding.Flow, error)
	// Submit completes the user's profile and stores the optional
	// attachment encrypted with the device key. The attachment is kept only
	// when the profile is saved.
	Submit(ctx context.Context, f *onboarding.Flow) error
	// Attachments lists what the signed-in user uploaded, decrypted.
	Attachments(ctx context.Context) ([]onboarding.Attachment, error)
}

type onboardingService struct {
	db        *sql.DB
	repos     repomanager.RepositoryManager
	store     SessionStore
	deviceKey []byte
	log       logging.Logger
}

func NewOnboardingService(db *sql.DB, repos repomanager.RepositoryManager, store SessionStore, deviceKey []byte, log logging.Logger) OnboardingService {
	return &onboardingService{db: db, repos: repos, store: store, deviceKey: deviceKey, log: log}
}

func (s *onboardingService) Start(ctx context.Context) (*onboarding.Flow, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleAny, snap); err != nil {
		return nil, err
	}
	return onboarding.New(snap.User), nil
}

func (s *onboardingService) Submit(ctx context.Context, f *onboarding.Flow) error {
	snap := s.store.Snapshot()
	if err := policy.Require(f.Role(), snap); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}

	var stored *models.Attachment
	if a := f.Attachment(); a != nil && f.Step() == onboarding.Verify {
		ct, nonce, err := cryptox.Seal(a.Data, s.deviceKey)
		if err != nil {
			return fmt.Errorf("failed to encrypt attachment: %w", err)
		}
		stored = &models.Attachment{
			ID:         newID(),
			UserID:     snap.User.ID,
			Name:       a.Name,
			Ciphertext: ct,
			Nonce:      nonce,
			CreatedAt:  now(),
		}
		if err := s.repos.Attachments(s.db).Create(ctx, stored); err != nil {
			return err
		}
		s.log.Debug(ctx, "attachment stored", "user_id", snap.User.ID, "bytes", len(a.Data))
	}

	if err := f.Submit(ctx, s.store); err != nil {
		if stored != nil {
			if derr := s.repos.Attachments(s.db).Delete(ctx, stored.ID); derr != nil {
				s.log.Error(ctx, "failed to remove attachment of rejected onboarding", "attachment_id", stored.ID, "error", derr)
			}
		}
		return err
	}
	s.log.Info(ctx, "onboarding complete", "user_id", snap.User.ID, "role", f.Role())
	return nil
}

func (s *onboardingService) Attachments(ctx context.Context) ([]onboarding.Attachment, error) {
	snap := s.store.Snapshot()
	if err := policy.Require(models.RoleAny, snap); err != nil {
		return nil, err
	}

	recs, err := s.repos.Attachments(s.db).ListByUser(ctx, snap.User.ID)
	if err != nil {
		return nil, err
	}

	out := make([]onboarding.Attachment, 0, len(recs))
	for _, r := range recs {
		data, err := cryptox.Open(r.Ciphertext, r.Nonce, s.deviceKey)
		if err != nil {
			return nil, fmt.Errorf("attachment %s: %w", r.ID, err)
		}
		out = append(out, onboarding.Attachment{Name: r.Name, Data: data})
	}
	return out, nil
}
