package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/client"
	"github.com/dmitrijs2005/biteshare/internal/client/config"
	"github.com/dmitrijs2005/biteshare/internal/client/guard"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/biteshare/internal/client/seed"
	"github.com/dmitrijs2005/biteshare/internal/client/services"
	"github.com/dmitrijs2005/biteshare/internal/client/session"
	"github.com/dmitrijs2005/biteshare/internal/filex"
	"github.com/dmitrijs2005/biteshare/internal/logging"
)

// Open prepares the data directory and database, restores the saved
// session and returns an App reading from stdin. Call Close when done.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, cfg.DBFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	app, err := open(ctx, cfg, log, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.closer = db.Close
	return app, nil
}

func open(ctx context.Context, cfg *config.Config, log logging.Logger, db *sql.DB) (*App, error) {
	repos := repomanager.NewSQLiteRepositoryManager()

	if cfg.SeedDemo {
		seeded, err := seed.Seed(ctx, db, repos, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		if seeded {
			log.Info(ctx, "demo data seeded")
		}
	}

	key, err := session.LoadDeviceKey(ctx, repos.Metadata(db))
	if err != nil {
		return nil, err
	}
	sealer, err := session.NewSealer(key)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(repos.Metadata(db), sealer,
		session.WithMirror(repos.Accounts(db).UpdateUser),
		session.WithLogger(log.With("component", "session")),
	)
	store.Hydrate(ctx)

	return NewApp(Deps{
		Sessions:    store,
		Navigator:   guard.NewNavigator(guard.New(store, cfg.AuthCheckDelay), store),
		Auth:        services.NewAuthService(db, repos, store, cfg.LoginDelay, log),
		Onboarding:  services.NewOnboardingService(db, repos, store, key, log),
		Requests:    services.NewRequestService(db, repos, store, log),
		Donations:   services.NewDonationService(db, repos, store, log),
		Leaderboard: services.NewLeaderboardService(db, repos, store),
		Log:         log,

		MaxAttachmentSize: cfg.MaxAttachmentSize,
	}, os.Stdin, os.Stdout), nil
}

// Close releases the database.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}
