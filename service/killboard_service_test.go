package service

import (
	"context"
	"testing"

	"killboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKillboardService_Info(t *testing.T) {
	ctx := context.Background()
	mockSettings := new(MockServerSettingsRepository)
	mockTrackers := new(MockTrackedEntityRepository)
	mockKills := new(MockKillEventRepository)
	service := NewKillboardService(mockSettings, mockTrackers, mockKills)

	channelID := int64(555)
	mockSettings.On("GetOrCreate", ctx, int64(100)).Return(&models.ServerSettings{
		GuildID:            100,
		KillboardChannelID: &channelID,
		Language:           "en",
	}, nil)
	mockTrackers.On("ListByGuild", ctx, int64(100)).Return([]*models.TrackedEntity{
		{GuildID: 100, EntityID: "P1", EntityName: "Alice", EntityType: models.EntityTypePlayer},
	}, nil)

	settings, tracked, err := service.Info(ctx, 100)

	require.NoError(t, err)
	require.NotNil(t, settings.KillboardChannelID)
	assert.Equal(t, int64(555), *settings.KillboardChannelID)
	require.Len(t, tracked, 1)
	assert.Equal(t, "Alice", tracked[0].EntityName)
}

func TestKillboardService_RecentKills(t *testing.T) {
	ctx := context.Background()
	mockSettings := new(MockServerSettingsRepository)
	mockTrackers := new(MockTrackedEntityRepository)
	mockKills := new(MockKillEventRepository)
	service := NewKillboardService(mockSettings, mockTrackers, mockKills)

	mockKills.On("GetRecentByMember", ctx, "Alice", 5).Return([]*models.KillEvent{
		{EventID: 9001, InvolvedMember: "Alice", IsKill: true},
	}, nil)

	events, err := service.RecentKills(ctx, "Alice", 5)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(9001), events[0].EventID)
	mockKills.AssertExpectations(t)
}
