package guard

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/policy"
	"github.com/dmitrijs2005/biteshare/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	s session.Session
}

func (f *fakeSessions) Snapshot() session.Session { return f.s }

func (f *fakeSessions) Logout(context.Context) error {
	f.s = session.Session{}
	return nil
}

func user(t *testing.T, role models.Role) *models.User {
	t.Helper()
	u, err := models.NewUser("id-"+string(role), string(role)+"@example.com", "Test "+string(role), role)
	require.NoError(t, err)
	return u
}

func signedIn(t *testing.T, role models.Role) *fakeSessions {
	return &fakeSessions{s: session.Session{User: user(t, role)}}
}

func protectedPaths() []string {
	var out []string
	for _, r := range Routes {
		if r.Access == Protected {
			out = append(out, r.Path)
		}
	}
	return out
}

func TestCheck_SignedOutRedirectsToLogin(t *testing.T) {
	g := New(&fakeSessions{}, 0)

	for _, path := range protectedPaths() {
		d, err := g.Check(context.Background(), Location{Path: path})
		require.NoError(t, err)
		assert.Equal(t, Redirect, d.Kind, path)
		assert.Equal(t, Location{Path: PathLogin, From: path, Message: policy.LoginReason}, d.Location)
	}
}

func TestCheck_RoleMismatchNeverAllowed(t *testing.T) {
	f := gofakeit.New(3)
	for i := 0; i < 50; i++ {
		role := models.RoleStudent
		if f.Bool() {
			role = models.RoleDonor
		}
		g := New(signedIn(t, role), 0)

		for _, r := range Routes {
			if r.Access != Protected || r.Role == models.RoleAny {
				continue
			}
			d, err := g.Check(context.Background(), Location{Path: r.Path})
			require.NoError(t, err)
			if r.Role == role {
				assert.Equal(t, Render, d.Kind)
			} else {
				assert.Equal(t, Denied, d.Kind)
				assert.Equal(t, r.Role, d.Outcome.RequiredRole)
				assert.Equal(t, role, d.Outcome.ActualRole)
			}
		}
	}
}

func TestCheck_AlexOnRequests(t *testing.T) {
	alex, err := models.NewUser("1", "donor@example.com", "Alex Johnson", models.RoleDonor)
	require.NoError(t, err)
	alex.KarmaPoints = 45
	g := New(&fakeSessions{s: session.Session{User: alex}}, 0)

	d, err := g.Check(context.Background(), Location{Path: PathRequests})
	require.NoError(t, err)
	assert.Equal(t, Denied, d.Kind)
	assert.Equal(t, models.RoleStudent, d.Outcome.RequiredRole)
	assert.Equal(t, models.RoleDonor, d.Outcome.ActualRole)
}

func TestCheck_AnyAuthenticatedRoutes(t *testing.T) {
	for _, role := range []models.Role{models.RoleStudent, models.RoleDonor} {
		g := New(signedIn(t, role), 0)
		for _, path := range []string{PathOnboarding, PathHome, PathLeaderboard} {
			d, err := g.Check(context.Background(), Location{Path: path})
			require.NoError(t, err)
			assert.Equal(t, Render, d.Kind, path)
		}
	}
}

func TestCheck_PublicOnly(t *testing.T) {
	ctx := context.Background()

	d, err := New(&fakeSessions{}, 0).Check(ctx, Location{Path: PathLogin})
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)

	g := New(signedIn(t, models.RoleDonor), 0)
	d, err = g.Check(ctx, Location{Path: PathSignup})
	require.NoError(t, err)
	assert.Equal(t, Redirect, d.Kind)
	assert.Equal(t, PathHome, d.Location.Path)

	d, err = g.Check(ctx, Location{Path: PathLogin, From: PathDonations})
	require.NoError(t, err)
	assert.Equal(t, Location{Path: PathDonations}, d.Location)
}

func TestCheck_UnmatchedAndPublic(t *testing.T) {
	g := New(&fakeSessions{}, time.Hour)

	d, err := g.Check(context.Background(), Location{Path: "/nowhere"})
	require.NoError(t, err)
	assert.Equal(t, Decision{Kind: Redirect, Location: Location{Path: PathLanding}}, d)

	d, err = g.Check(context.Background(), Location{Path: PathLanding})
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)
}

func TestCheck_Loading(t *testing.T) {
	g := New(&fakeSessions{s: session.Session{Loading: true}}, 0)

	for _, path := range []string{PathHome, PathLogin} {
		d, err := g.Check(context.Background(), Location{Path: path})
		require.NoError(t, err)
		assert.Equal(t, Waiting, d.Kind, path)
	}
}

func TestCheck_DelayIsCancellable(t *testing.T) {
	g := New(signedIn(t, models.RoleDonor), time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Check(ctx, Location{Path: PathHome})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCheck_WaitsBeforeDeciding(t *testing.T) {
	g := New(signedIn(t, models.RoleDonor), 30*time.Millisecond)

	start := time.Now()
	d, err := g.Check(context.Background(), Location{Path: PathHome})
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
