package service

import (
	"context"
	"testing"

	"killboard/albion"
	"killboard/events"
	"killboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrackerService_Track_Player(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTrackedEntityRepository)
	mockSearcher := new(MockEntitySearcher)
	service := NewTrackerService(mockRepo, mockSearcher, events.NewBus())

	mockSearcher.On("Search", ctx, "Tryskelly").Return(&albion.SearchResult{
		Players: []albion.SearchEntry{{ID: "P1", Name: "Tryskelly"}},
	}, nil)
	mockRepo.On("InsertIfAbsent", ctx, mock.MatchedBy(func(e *models.TrackedEntity) bool {
		return e.GuildID == 100 && e.EntityID == "P1" && e.EntityType == models.EntityTypePlayer
	})).Return(true, nil)

	entity, added, err := service.Track(ctx, 100, models.EntityTypePlayer, "Tryskelly")

	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "Tryskelly", entity.EntityName)
	mockRepo.AssertExpectations(t)
	mockSearcher.AssertExpectations(t)
}

func TestTrackerService_Track_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTrackedEntityRepository)
	mockSearcher := new(MockEntitySearcher)
	service := NewTrackerService(mockRepo, mockSearcher, events.NewBus())

	mockSearcher.On("Search", ctx, "nobody").Return(&albion.SearchResult{}, nil)

	entity, added, err := service.Track(ctx, 100, models.EntityTypeGuild, "nobody")

	require.NoError(t, err)
	assert.False(t, added)
	assert.Nil(t, entity)
	mockRepo.AssertNotCalled(t, "InsertIfAbsent")
}

func TestTrackerService_Track_AlreadyTracked(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTrackedEntityRepository)
	mockSearcher := new(MockEntitySearcher)
	service := NewTrackerService(mockRepo, mockSearcher, events.NewBus())

	mockSearcher.On("Search", ctx, "Tryskelly").Return(&albion.SearchResult{
		Players: []albion.SearchEntry{{ID: "P1", Name: "Tryskelly"}},
	}, nil)
	mockRepo.On("InsertIfAbsent", ctx, mock.Anything).Return(false, nil)

	entity, added, err := service.Track(ctx, 100, models.EntityTypePlayer, "Tryskelly")

	require.NoError(t, err)
	assert.False(t, added)
	assert.NotNil(t, entity)
}

func TestTrackerService_Untrack_ByNameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTrackedEntityRepository)
	mockSearcher := new(MockEntitySearcher)
	service := NewTrackerService(mockRepo, mockSearcher, events.NewBus())

	tracked := []*models.TrackedEntity{
		{GuildID: 100, EntityID: "P1", EntityName: "Tryskelly", EntityType: models.EntityTypePlayer},
		{GuildID: 100, EntityID: "G1", EntityName: "Revenant Renegades", EntityType: models.EntityTypeGuild},
	}

	mockRepo.On("ListByGuild", ctx, int64(100)).Return(tracked, nil)
	mockRepo.On("Delete", ctx, int64(100), "P1").Return(true, nil)

	removed, err := service.Untrack(ctx, 100, "tryskelly")

	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "P1", removed.EntityID)
	mockRepo.AssertExpectations(t)
}

func TestTrackerService_Untrack_NoMatch(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTrackedEntityRepository)
	mockSearcher := new(MockEntitySearcher)
	service := NewTrackerService(mockRepo, mockSearcher, events.NewBus())

	mockRepo.On("ListByGuild", ctx, int64(100)).Return([]*models.TrackedEntity{}, nil)

	removed, err := service.Untrack(ctx, 100, "ghost")

	require.NoError(t, err)
	assert.Nil(t, removed)
	mockRepo.AssertNotCalled(t, "Delete")
}
