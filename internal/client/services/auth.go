package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/forms"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/biteshare/internal/client/seed"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/cryptox"
	"github.com/dmitrijs2005/biteshare/internal/logging"
	"github.com/dmitrijs2005/biteshare/internal/timex"
)

// AuthService signs users up, in and out against the local account
// directory.
type AuthService interface {
	// Signup creates an account and signs it in. A taken email fails with
	// common.ErrAlreadyExists.
	Signup(ctx context.Context, f forms.SignupForm) (*models.User, error)
	// Login verifies the password after the artificial login delay. Unknown
	// emails and wrong passwords both fail with common.ErrInvalidCredentials.
	Login(ctx context.Context, f forms.LoginForm) (*models.User, error)
	// DemoLogin signs in as the seeded account of the given role.
	DemoLogin(ctx context.Context, role models.Role) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	db         *sql.DB
	repos      repomanager.RepositoryManager
	store      SessionStore
	loginDelay time.Duration
	log        logging.Logger
}

func NewAuthService(db *sql.DB, repos repomanager.RepositoryManager, store SessionStore, loginDelay time.Duration, log logging.Logger) AuthService {
	return &authService{db: db, repos: repos, store: store, loginDelay: loginDelay, log: log}
}

func (a *authService) Signup(ctx context.Context, f forms.SignupForm) (*models.User, error) {
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
	f.Role = strings.ToLower(strings.TrimSpace(f.Role))
	if err := forms.Validate(f); err != nil {
		return nil, err
	}

	u, err := models.NewUser(newID(), f.Email, f.Name, models.Role(f.Role))
	if err != nil {
		return nil, err
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	key := cryptox.DeriveKey([]byte(f.Password), salt)
	defer common.WipeByteArray(key)

	acc := &models.Account{
		User:      u,
		Salt:      salt,
		Verifier:  cryptox.MakeVerifier(key),
		CreatedAt: now(),
	}
	if err := a.repos.Accounts(a.db).Create(ctx, acc); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "account created", "user_id", u.ID, "role", u.Role())

	if err := a.store.Login(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *authService) Login(ctx context.Context, f forms.LoginForm) (*models.User, error) {
	f.Email = strings.TrimSpace(f.Email)
	if err := forms.Validate(f); err != nil {
		return nil, err
	}

	if err := timex.Sleep(ctx, a.loginDelay); err != nil {
		return nil, err
	}

	acc, err := a.repos.Accounts(a.db).GetByEmail(ctx, f.Email)
	if errors.Is(err, common.ErrNotFound) {
		a.log.Debug(ctx, "login for unknown email")
		return nil, common.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !cryptox.CheckPassword([]byte(f.Password), acc.Salt, acc.Verifier) {
		a.log.Debug(ctx, "login with wrong password", "user_id", acc.User.ID)
		return nil, common.ErrInvalidCredentials
	}

	if err := a.store.Login(ctx, acc.User); err != nil {
		return nil, err
	}
	return acc.User, nil
}

func (a *authService) DemoLogin(ctx context.Context, role models.Role) (*models.User, error) {
	email, ok := seed.DemoEmail(role)
	if !ok {
		return nil, fmt.Errorf("no demo account for role %q", role)
	}

	acc, err := a.repos.Accounts(a.db).GetByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("demo accounts are not seeded: %w", err)
	}
	if err != nil {
		return nil, err
	}

	if err := a.store.Login(ctx, acc.User); err != nil {
		return nil, err
	}
	return acc.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Logout(ctx)
}
