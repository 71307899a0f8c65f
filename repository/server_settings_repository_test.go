package repository

import (
	"context"
	"testing"

	"killboard/models"
	"killboard/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerSettingsRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewServerSettingsRepository(testDB.DB)
	ctx := context.Background()

	settings, err := repo.GetOrCreate(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, int64(100), settings.GuildID)
	assert.Equal(t, "en", settings.Language)
	assert.Nil(t, settings.KillboardChannelID)

	// Second call returns the existing row
	again, err := repo.GetOrCreate(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, settings.GuildID, again.GuildID)
}

func TestServerSettingsRepository_UpdateUpserts(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewServerSettingsRepository(testDB.DB)
	ctx := context.Background()

	channelID := int64(555)
	err := repo.Update(ctx, &models.ServerSettings{
		GuildID:            200,
		KillboardChannelID: &channelID,
		Language:           "de",
	})
	require.NoError(t, err)

	settings, err := repo.GetOrCreate(ctx, 200)
	require.NoError(t, err)
	require.NotNil(t, settings.KillboardChannelID)
	assert.Equal(t, int64(555), *settings.KillboardChannelID)
	assert.Equal(t, "de", settings.Language)

	// Clearing a field persists the nil
	err = repo.Update(ctx, &models.ServerSettings{GuildID: 200, Language: "de"})
	require.NoError(t, err)

	settings, err = repo.GetOrCreate(ctx, 200)
	require.NoError(t, err)
	assert.Nil(t, settings.KillboardChannelID)
}

func TestServerSettingsRepository_ListKillboardChannels(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewServerSettingsRepository(testDB.DB)
	ctx := context.Background()

	channels, err := repo.ListKillboardChannels(ctx)
	require.NoError(t, err)
	assert.Empty(t, channels)

	first := int64(111)
	second := int64(222)
	require.NoError(t, repo.Update(ctx, &models.ServerSettings{GuildID: 1, KillboardChannelID: &first, Language: "en"}))
	require.NoError(t, repo.Update(ctx, &models.ServerSettings{GuildID: 2, KillboardChannelID: &second, Language: "en"}))
	require.NoError(t, repo.Update(ctx, &models.ServerSettings{GuildID: 3, Language: "en"}))

	channels, err = repo.ListKillboardChannels(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{111, 222}, channels)
}
