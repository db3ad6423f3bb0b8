package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/client"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/biteshare/internal/client/seed"
	"github.com/dmitrijs2005/biteshare/internal/client/session"
	"github.com/dmitrijs2005/biteshare/internal/logging"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	store *session.Store
	key   []byte

	auth       AuthService
	onboarding OnboardingService
	requests   RequestService
	donations  DonationService
	board      LeaderboardService
}

// newFixture wires the services over a seeded in-memory database.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := repomanager.NewSQLiteRepositoryManager()
	_, err = seed.Seed(ctx, db, repos, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	key, err := session.LoadDeviceKey(ctx, repos.Metadata(db))
	require.NoError(t, err)
	sealer, err := session.NewSealer(key)
	require.NoError(t, err)

	store := session.NewStore(repos.Metadata(db), sealer, session.WithMirror(repos.Accounts(db).UpdateUser))
	log := logging.Discard()

	return &fixture{
		db:         db,
		repos:      repos,
		store:      store,
		key:        key,
		auth:       NewAuthService(db, repos, store, 0, log),
		onboarding: NewOnboardingService(db, repos, store, key, log),
		requests:   NewRequestService(db, repos, store, log),
		donations:  NewDonationService(db, repos, store, log),
		board:      NewLeaderboardService(db, repos, store),
	}
}

func (f *fixture) demo(t *testing.T, role models.Role) *models.User {
	t.Helper()
	u, err := f.auth.DemoLogin(context.Background(), role)
	require.NoError(t, err)
	return u
}

// flakyStore fails the chosen session updates and delegates the rest.
type flakyStore struct {
	*session.Store
	creditErr   error
	completeErr error
}

func (s *flakyStore) CreditKarma(ctx context.Context, amount int) error {
	if s.creditErr != nil {
		return s.creditErr
	}
	return s.Store.CreditKarma(ctx, amount)
}

func (s *flakyStore) CompleteProfile(ctx context.Context, p models.Profile) error {
	if s.completeErr != nil {
		return s.completeErr
	}
	return s.Store.CompleteProfile(ctx, p)
}
