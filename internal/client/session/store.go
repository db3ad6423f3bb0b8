package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/logging"
)

// MirrorFunc receives every user change after it has been persisted to the
// session record. It lets the account directory follow karma and profile
// updates. Mirror failures are logged, not returned.
type MirrorFunc func(ctx context.Context, u *models.User) error

type Option func(*Store)

func WithMirror(fn MirrorFunc) Option {
	return func(s *Store) { s.mirror = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

type Store struct {
	mu     sync.RWMutex
	state  Session
	repo   metadata.Repository
	sealer *Sealer
	mirror MirrorFunc
	log    logging.Logger
}

func NewStore(repo metadata.Repository, sealer *Sealer, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		sealer: sealer,
		log:    logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Snapshot returns a copy that callers may keep and modify freely.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{User: s.state.User.Clone(), Loading: s.state.Loading}
}

// Hydrate restores the persisted record. Missing, unreadable, corrupt and
// unknown-version records all leave the session signed out; bad records are
// removed so they are not reported again.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	s.state = Session{Loading: true}
	s.mu.Unlock()

	u := s.load(ctx)

	s.mu.Lock()
	s.state = Session{User: u}
	s.mu.Unlock()
}

func (s *Store) load(ctx context.Context) *models.User {
	record, err := s.repo.Get(ctx, common.SessionKey)
	if err != nil {
		s.log.Warn(ctx, "session storage unavailable", "error", err)
		return nil
	}
	if record == nil {
		return nil
	}

	u, err := s.sealer.Open(record)
	if err != nil {
		s.log.Warn(ctx, "discarding session record", "error", err)
		if err := s.repo.Delete(ctx, common.SessionKey); err != nil {
			s.log.Warn(ctx, "failed to remove session record", "error", err)
		}
		return nil
	}

	s.log.Debug(ctx, "session restored", "user_id", u.ID, "role", u.Role())
	return u
}

// Login makes u the current user and overwrites the persisted record.
func (s *Store) Login(ctx context.Context, u *models.User) error {
	if u == nil {
		return errors.New("login: nil user")
	}
	u = u.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.state = Session{User: u}
	s.log.Info(ctx, "signed in", "user_id", u.ID, "role", u.Role())
	return nil
}

// Logout signs out and removes the persisted record. Memory is cleared even
// when the record cannot be deleted.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User != nil {
		s.log.Info(ctx, "signed out", "user_id", s.state.User.ID)
	}
	s.state = Session{}

	if err := s.repo.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("failed to remove session record: %w", err)
	}
	return nil
}

// CreditKarma adds amount points to the current user. Only positive amounts
// are accepted.
func (s *Store) CreditKarma(ctx context.Context, amount int) error {
	if amount <= 0 {
		return common.NewValidationError("amount", "must be greater than zero")
	}
	return s.update(ctx, func(u *models.User) error {
		u.AddKarma(amount)
		return nil
	})
}

// CompleteProfile attaches the onboarding result to the current user. A
// profile of the other role fails with common.ErrForbidden.
func (s *Store) CompleteProfile(ctx context.Context, p models.Profile) error {
	return s.update(ctx, func(u *models.User) error {
		return u.SetProfile(p)
	})
}

// update applies fn to a copy of the current user, persists the copy and
// only then swaps it in.
func (s *Store) update(ctx context.Context, fn func(u *models.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return common.ErrUnauthenticated
	}

	u := s.state.User.Clone()
	if err := fn(u); err != nil {
		return err
	}
	if err := s.persist(ctx, u); err != nil {
		return err
	}
	s.state.User = u

	if s.mirror != nil {
		if err := s.mirror(ctx, u.Clone()); err != nil {
			s.log.Warn(ctx, "account directory not updated", "user_id", u.ID, "error", err)
		}
	}
	return nil
}

func (s *Store) persist(ctx context.Context, u *models.User) error {
	record, err := s.sealer.Seal(u)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.SessionKey, record); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
