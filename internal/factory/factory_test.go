package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/clubstore/internal/repository"
	"github.com/mwhitfield/clubstore/internal/seed"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, app.Store)
	require.NotNil(t, app.Teams)
	require.NotNil(t, app.Auth)
	require.NotNil(t, app.Seeder)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	assert.Error(t, err)
}

func TestNewRequiresRedisConfigForRedis(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

// TestSeededApplicationFlow walks the main consumer path: seed, read the
// baseline, create and resolve a player, then log in as the admin.
func TestSeededApplicationFlow(t *testing.T) {
	app, err := New(Config{StorageType: StorageTypeMemory})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, app.Seeder.Initialize(ctx))

	teams, err := app.Teams.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, teams)

	player, err := app.Players.Save(ctx, repository.PlayerDraft{
		FirstName: "Nadia",
		LastName:  "Ferreira",
		TeamID:    teams[0].ID,
		Email:     "nadia@example.com",
		Phone:     "555-0199",
	})
	require.NoError(t, err)

	name, err := app.Players.TeamName(ctx, player.TeamID)
	require.NoError(t, err)
	assert.Equal(t, teams[0].Name, name)

	user, err := app.Auth.Login(ctx, seed.AdminUsername, seed.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, seed.AdminUsername, user.Username)

	current, err := app.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, app.Auth.Logout(ctx))
	current, err = app.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
