package service

import (
	"context"
	"testing"

	"killboard/events"
	"killboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_SetKillboardChannel(t *testing.T) {
	ctx := context.Background()
	mockSettings := new(MockServerSettingsRepository)
	mockTrackers := new(MockTrackedEntityRepository)
	service := NewSettingsService(mockSettings, mockTrackers, events.NewBus())

	mockSettings.On("GetOrCreate", ctx, int64(100)).Return(&models.ServerSettings{
		GuildID:  100,
		Language: "en",
	}, nil)
	mockSettings.On("Update", ctx, mock.MatchedBy(func(s *models.ServerSettings) bool {
		return s.GuildID == 100 && s.KillboardChannelID != nil && *s.KillboardChannelID == 555
	})).Return(nil)

	err := service.SetKillboardChannel(ctx, 100, 555)

	require.NoError(t, err)
	mockSettings.AssertExpectations(t)
}

func TestSettingsService_Reset(t *testing.T) {
	ctx := context.Background()
	mockSettings := new(MockServerSettingsRepository)
	mockTrackers := new(MockTrackedEntityRepository)
	service := NewSettingsService(mockSettings, mockTrackers, events.NewBus())

	mockSettings.On("Update", ctx, mock.MatchedBy(func(s *models.ServerSettings) bool {
		return s.GuildID == 100 &&
			s.KillboardChannelID == nil &&
			s.BuilderRoleID == nil &&
			s.StatusChannelID == nil &&
			s.Language == "en"
	})).Return(nil)
	mockTrackers.On("DeleteAllForGuild", ctx, int64(100)).Return(nil)

	err := service.Reset(ctx, 100)

	require.NoError(t, err)
	mockSettings.AssertExpectations(t)
	mockTrackers.AssertExpectations(t)
}

func TestSettingsService_SetLanguage(t *testing.T) {
	ctx := context.Background()
	mockSettings := new(MockServerSettingsRepository)
	mockTrackers := new(MockTrackedEntityRepository)
	service := NewSettingsService(mockSettings, mockTrackers, events.NewBus())

	existing := &models.ServerSettings{GuildID: 100, Language: "en"}
	mockSettings.On("GetOrCreate", ctx, int64(100)).Return(existing, nil)
	mockSettings.On("Update", ctx, mock.MatchedBy(func(s *models.ServerSettings) bool {
		return s.Language == "de"
	})).Return(nil)

	err := service.SetLanguage(ctx, 100, "de")

	require.NoError(t, err)
	assert.Equal(t, "de", existing.Language)
}
