package cli

import (
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/biteshare/internal/client/config"
	"github.com/dmitrijs2005/biteshare/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()
	cfg.AuthCheckDelay = 0
	cfg.LoginDelay = 0

	app, err := Open(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	app.out = io.Discard

	assert.False(t, app.isLoggedIn())
	require.NoError(t, app.Demo(ctx, "donor"))
	require.NoError(t, app.Close())

	app, err = Open(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	snap := app.Sessions.Snapshot()
	require.True(t, snap.IsAuthenticated())
	assert.Equal(t, "Alex Johnson", snap.User.Name)
	assert.Equal(t, 45, snap.User.KarmaPoints)
	assert.Equal(t, "(Alex Johnson, donor) /", app.status())
}

func TestOpen_WithoutSeed(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()
	cfg.SeedDemo = false

	app, err := Open(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	app.out = io.Discard

	assert.Error(t, app.Demo(ctx, "student"))
}
