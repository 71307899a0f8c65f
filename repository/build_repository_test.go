package repository

import (
	"context"
	"testing"

	"killboard/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewBuildRepository(testDB.DB)
	ctx := context.Background()

	build := testutil.CreateTestBuild(100, "claymore-pve", 42)
	require.NoError(t, repo.Create(ctx, build))
	assert.NotZero(t, build.ID)
	assert.False(t, build.CreatedAt.IsZero())

	loaded, err := repo.GetByName(ctx, 100, "claymore-pve")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "T4_2H_CLAYMORE", loaded.Weapon)
	assert.Equal(t, []string{"Charge", "Mighty Swing"}, loaded.Spells)

	missing, err := repo.GetByName(ctx, 100, "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Build names are scoped per server
	otherGuild, err := repo.GetByName(ctx, 200, "claymore-pve")
	require.NoError(t, err)
	assert.Nil(t, otherGuild)
}

func TestBuildRepository_Delete(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewBuildRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.CreateTestBuild(100, "claymore-pve", 42)))

	// Only the creator may delete
	removed, err := repo.Delete(ctx, 100, "claymore-pve", 99)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = repo.Delete(ctx, 100, "claymore-pve", 42)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestBuildRepository_ListByGuild(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewBuildRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.CreateTestBuild(100, "first", 42)))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBuild(100, "second", 42)))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestBuild(200, "other", 42)))

	builds, err := repo.ListByGuild(ctx, 100)
	require.NoError(t, err)
	require.Len(t, builds, 2)
}
