// Package services contains the application services of the BiteShare
// client. Each service checks access with the role policy, validates its
// form, and works on repositories bound to the database or a transaction.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/session"
	"github.com/google/uuid"
)

// SessionStore is the part of *session.Store the services use.
type SessionStore interface {
	Snapshot() session.Session
	Login(ctx context.Context, u *models.User) error
	Logout(ctx context.Context) error
	CreditKarma(ctx context.Context, amount int) error
	CompleteProfile(ctx context.Context, p models.Profile) error
}

// clock and id generators are swappable in tests.
var (
	now   = func() time.Time { return time.Now().UTC() }
	newID = func() string { return uuid.NewString() }
)
