package poller

import (
	"context"

	"killboard/albion"
	"killboard/models"

	"github.com/stretchr/testify/mock"
)

// MockGameAPI is a mock implementation of GameAPI
type MockGameAPI struct {
	mock.Mock
}

func (m *MockGameAPI) GuildMembers(ctx context.Context, guildID string) ([]albion.Player, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]albion.Player), args.Error(1)
}

func (m *MockGameAPI) PlayerEvents(ctx context.Context, playerID string, limit int) ([]albion.Event, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]albion.Event), args.Error(1)
}

// MockKillEventStore is a mock implementation of KillEventStore
type MockKillEventStore struct {
	mock.Mock
}

func (m *MockKillEventStore) InsertIfAbsent(ctx context.Context, event *models.KillEvent) (bool, error) {
	args := m.Called(ctx, event)
	return args.Bool(0), args.Error(1)
}

// MockRosterStore is a mock implementation of RosterStore
type MockRosterStore struct {
	mock.Mock
}

func (m *MockRosterStore) UpsertAll(ctx context.Context, members []*models.GuildMember) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

// MockChannelResolver is a mock implementation of ChannelResolver
type MockChannelResolver struct {
	mock.Mock
}

func (m *MockChannelResolver) ListKillboardChannels(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier that also records
// every occurrence it was asked to deliver.
type MockNotifier struct {
	mock.Mock
	Sent []Occurrence
}

func (m *MockNotifier) Notify(ctx context.Context, channelID int64, occ Occurrence) error {
	m.Sent = append(m.Sent, occ)
	args := m.Called(ctx, channelID, occ)
	return args.Error(0)
}
