package service

import (
	"context"

	"killboard/albion"
	"killboard/models"

	"github.com/stretchr/testify/mock"
)

// MockKillEventRepository is a mock implementation of KillEventRepository
type MockKillEventRepository struct {
	mock.Mock
}

func (m *MockKillEventRepository) InsertIfAbsent(ctx context.Context, event *models.KillEvent) (bool, error) {
	args := m.Called(ctx, event)
	return args.Bool(0), args.Error(1)
}

func (m *MockKillEventRepository) GetRecentByMember(ctx context.Context, memberName string, limit int) ([]*models.KillEvent, error) {
	args := m.Called(ctx, memberName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.KillEvent), args.Error(1)
}

// MockGuildMemberRepository is a mock implementation of GuildMemberRepository
type MockGuildMemberRepository struct {
	mock.Mock
}

func (m *MockGuildMemberRepository) UpsertAll(ctx context.Context, members []*models.GuildMember) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

func (m *MockGuildMemberRepository) GetAll(ctx context.Context) ([]*models.GuildMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GuildMember), args.Error(1)
}

// MockServerSettingsRepository is a mock implementation of ServerSettingsRepository
type MockServerSettingsRepository struct {
	mock.Mock
}

func (m *MockServerSettingsRepository) GetOrCreate(ctx context.Context, guildID int64) (*models.ServerSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServerSettings), args.Error(1)
}

func (m *MockServerSettingsRepository) Update(ctx context.Context, settings *models.ServerSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockServerSettingsRepository) ListKillboardChannels(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockTrackedEntityRepository is a mock implementation of TrackedEntityRepository
type MockTrackedEntityRepository struct {
	mock.Mock
}

func (m *MockTrackedEntityRepository) InsertIfAbsent(ctx context.Context, entity *models.TrackedEntity) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackedEntityRepository) Delete(ctx context.Context, guildID int64, entityID string) (bool, error) {
	args := m.Called(ctx, guildID, entityID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackedEntityRepository) DeleteAllForGuild(ctx context.Context, guildID int64) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockTrackedEntityRepository) ListByGuild(ctx context.Context, guildID int64) ([]*models.TrackedEntity, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TrackedEntity), args.Error(1)
}

// MockBuildRepository is a mock implementation of BuildRepository
type MockBuildRepository struct {
	mock.Mock
}

func (m *MockBuildRepository) Create(ctx context.Context, build *models.Build) error {
	args := m.Called(ctx, build)
	return args.Error(0)
}

func (m *MockBuildRepository) GetByName(ctx context.Context, guildID int64, buildName string) (*models.Build, error) {
	args := m.Called(ctx, guildID, buildName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Build), args.Error(1)
}

func (m *MockBuildRepository) Delete(ctx context.Context, guildID int64, buildName string, creatorID int64) (bool, error) {
	args := m.Called(ctx, guildID, buildName, creatorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBuildRepository) ListByGuild(ctx context.Context, guildID int64) ([]*models.Build, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Build), args.Error(1)
}

// MockEntitySearcher is a mock implementation of EntitySearcher
type MockEntitySearcher struct {
	mock.Mock
}

func (m *MockEntitySearcher) Search(ctx context.Context, query string) (*albion.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*albion.SearchResult), args.Error(1)
}
