package guard

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNav(f *fakeSessions) *Navigator {
	return NewNavigator(New(f, 0), f)
}

func TestNavigator_RedirectToLoginThenResume(t *testing.T) {
	ctx := context.Background()
	sessions := &fakeSessions{}
	n := newNav(sessions)

	d, err := n.Go(ctx, PathLeaderboard)
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)
	assert.Equal(t, PathLogin, d.Location.Path)
	assert.Equal(t, PathLeaderboard, n.Current().From)

	sessions.s = session.Session{User: user(t, models.RoleStudent)}
	d, err = n.AfterLogin(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)
	assert.Equal(t, PathLeaderboard, d.Location.Path)
}

func TestNavigator_AfterLoginWithoutFrom(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		needsOnboarding bool
		want            string
	}{
		{needsOnboarding: true, want: PathOnboarding},
		{needsOnboarding: false, want: PathHome},
	} {
		sessions := &fakeSessions{}
		n := newNav(sessions)
		_, err := n.Go(ctx, PathLogin)
		require.NoError(t, err)

		sessions.s = session.Session{User: user(t, models.RoleDonor)}
		d, err := n.AfterLogin(ctx, tc.needsOnboarding)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.Location.Path)
	}
}

func TestNavigator_DeniedBackAndRelogin(t *testing.T) {
	ctx := context.Background()
	sessions := signedIn(t, models.RoleDonor)
	n := newNav(sessions)

	_, err := n.Go(ctx, PathHome)
	require.NoError(t, err)

	d, err := n.Go(ctx, PathRequests)
	require.NoError(t, err)
	assert.Equal(t, Denied, d.Kind)

	d, err = n.Back(ctx)
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)
	assert.Equal(t, PathHome, d.Location.Path)

	_, err = n.Go(ctx, PathRequests)
	require.NoError(t, err)
	d, err = n.Reauthenticate(ctx)
	require.NoError(t, err)
	assert.False(t, sessions.Snapshot().IsAuthenticated())
	assert.Equal(t, Render, d.Kind)
	assert.Equal(t, Location{Path: PathLogin, From: PathRequests}, d.Location)
}

func TestNavigator_UnmatchedGoesToLanding(t *testing.T) {
	n := newNav(&fakeSessions{})

	d, err := n.Go(context.Background(), "/admin")
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)
	assert.Equal(t, PathLanding, n.Current().Path)
}

func TestNavigator_BackOnEmptyHistory(t *testing.T) {
	n := newNav(&fakeSessions{})

	d, err := n.Back(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PathLanding, d.Location.Path)
	assert.Equal(t, PathLanding, n.Current().Path)
}

func TestNavigator_SignedInLoginRedirectsHome(t *testing.T) {
	n := newNav(signedIn(t, models.RoleStudent))

	d, err := n.Go(context.Background(), PathLogin)
	require.NoError(t, err)
	assert.Equal(t, Render, d.Kind)
	assert.Equal(t, PathHome, d.Location.Path)
}
