package poller

import (
	"context"
	"fmt"
	"testing"
	"time"

	"killboard/albion"
	"killboard/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type pollerFixture struct {
	api      *MockGameAPI
	kills    *MockKillEventStore
	roster   *MockRosterStore
	channels *MockChannelResolver
	notifier *MockNotifier
	poller   *Poller
}

func newFixture() *pollerFixture {
	f := &pollerFixture{
		api:      new(MockGameAPI),
		kills:    new(MockKillEventStore),
		roster:   new(MockRosterStore),
		channels: new(MockChannelResolver),
		notifier: new(MockNotifier),
	}
	cfg := Config{
		GuildID:         "G1",
		EventFetchLimit: 10,
		SeenKeyCap:      1000,
	}
	f.poller = New(cfg, f.api, f.kills, f.roster, f.channels, f.notifier, metrics.NewManager())
	f.poller.lastCheck = baseTime
	return f
}

func killEventAt(id int64, killerID, killerName, victimID, victimName string, ts time.Time) albion.Event {
	return albion.Event{
		EventID:             id,
		Killer:              albion.EventParticipant{ID: killerID, Name: killerName},
		Victim:              albion.EventParticipant{ID: victimID, Name: victimName},
		TotalVictimKillFame: 1000,
		TimeStamp:           ts,
	}
}

func TestPoller_TickAnnouncesAndStoresNewKill(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	roster := []albion.Player{{ID: "P1", Name: "Alice", GuildID: "G1"}}
	feed := []albion.Event{
		killEventAt(9001, "P1", "Alice", "P9", "Stranger", baseTime.Add(time.Minute)),
	}

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(roster, nil)
	f.roster.On("UpsertAll", ctx, mock.Anything).Return(nil)
	f.api.On("PlayerEvents", ctx, "P1", 10).Return(feed, nil)
	f.kills.On("InsertIfAbsent", ctx, mock.Anything).Return(true, nil)
	f.notifier.On("Notify", ctx, int64(555), mock.Anything).Return(nil)

	f.poller.runTick(ctx)

	require.Len(t, f.notifier.Sent, 1)
	occ := f.notifier.Sent[0]
	assert.True(t, occ.IsKill)
	assert.Equal(t, "Alice", occ.MemberName)
	assert.Equal(t, int64(9001), occ.Event.EventID)
	f.kills.AssertNumberOfCalls(t, "InsertIfAbsent", 1)

	record := occ.Record()
	assert.Equal(t, int64(9001), record.EventID)
	assert.Equal(t, "Alice", record.InvolvedMember)
	assert.True(t, record.IsKill)
	assert.Equal(t, int64(1000), record.Fame)
}

func TestPoller_SecondTickIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	roster := []albion.Player{{ID: "P1", Name: "Alice", GuildID: "G1"}}
	feed := []albion.Event{
		killEventAt(9001, "P1", "Alice", "P9", "Stranger", baseTime.Add(time.Minute)),
	}

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(roster, nil)
	f.roster.On("UpsertAll", ctx, mock.Anything).Return(nil)
	f.api.On("PlayerEvents", ctx, "P1", 10).Return(feed, nil)
	f.kills.On("InsertIfAbsent", ctx, mock.Anything).Return(true, nil)
	f.notifier.On("Notify", ctx, int64(555), mock.Anything).Return(nil)

	f.poller.runTick(ctx)
	// The feed returns the same event again on the next tick. Even though
	// lastCheck has advanced past its timestamp, the key set alone is
	// enough to drop it.
	f.poller.lastCheck = baseTime
	f.poller.runTick(ctx)

	assert.Len(t, f.notifier.Sent, 1)
	f.kills.AssertNumberOfCalls(t, "InsertIfAbsent", 1)
}

func TestPoller_StaleEventsAreDropped(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	roster := []albion.Player{{ID: "P1", Name: "Alice", GuildID: "G1"}}
	feed := []albion.Event{
		killEventAt(8000, "P1", "Alice", "P9", "Stranger", baseTime.Add(-time.Hour)),
	}

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(roster, nil)
	f.roster.On("UpsertAll", ctx, mock.Anything).Return(nil)
	f.api.On("PlayerEvents", ctx, "P1", 10).Return(feed, nil)

	f.poller.runTick(ctx)

	assert.Empty(t, f.notifier.Sent)
	f.kills.AssertNotCalled(t, "InsertIfAbsent")
}

func TestPoller_NoChannelsAbortsTick(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{}, nil)

	f.poller.runTick(ctx)

	f.api.AssertNotCalled(t, "GuildMembers")
	assert.Equal(t, baseTime, f.poller.lastCheck, "aborted tick must not advance lastCheck")
}

func TestPoller_RosterFetchFailureAbortsTick(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(nil, fmt.Errorf("api down"))

	f.poller.runTick(ctx)

	f.api.AssertNotCalled(t, "PlayerEvents")
	assert.Equal(t, baseTime, f.poller.lastCheck)
}

func TestPoller_MemberFetchFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	roster := []albion.Player{
		{ID: "P1", Name: "Alice", GuildID: "G1"},
		{ID: "P2", Name: "Bob", GuildID: "G1"},
	}
	feed := []albion.Event{
		killEventAt(9002, "P2", "Bob", "P9", "Stranger", baseTime.Add(time.Minute)),
	}

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(roster, nil)
	f.roster.On("UpsertAll", ctx, mock.Anything).Return(nil)
	f.api.On("PlayerEvents", ctx, "P1", 10).Return(nil, fmt.Errorf("timeout"))
	f.api.On("PlayerEvents", ctx, "P2", 10).Return(feed, nil)
	f.kills.On("InsertIfAbsent", ctx, mock.Anything).Return(true, nil)
	f.notifier.On("Notify", ctx, int64(555), mock.Anything).Return(nil)

	f.poller.runTick(ctx)

	require.Len(t, f.notifier.Sent, 1)
	assert.Equal(t, "Bob", f.notifier.Sent[0].MemberName)
	assert.True(t, f.poller.lastCheck.After(baseTime), "a tick with partial failures still completes")
}

func TestPoller_NotifyNotGatedOnInsert(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	roster := []albion.Player{{ID: "P1", Name: "Alice", GuildID: "G1"}}
	feed := []albion.Event{
		killEventAt(9001, "P1", "Alice", "P9", "Stranger", baseTime.Add(time.Minute)),
	}

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(roster, nil)
	f.roster.On("UpsertAll", ctx, mock.Anything).Return(nil)
	f.api.On("PlayerEvents", ctx, "P1", 10).Return(feed, nil)
	// Row already present, e.g. after a restart wiped the key set.
	f.kills.On("InsertIfAbsent", ctx, mock.Anything).Return(false, nil)
	f.notifier.On("Notify", ctx, int64(555), mock.Anything).Return(nil)

	f.poller.runTick(ctx)

	assert.Len(t, f.notifier.Sent, 1)
}

func TestPoller_MalformedEventsAreDropped(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	roster := []albion.Player{{ID: "P1", Name: "Alice", GuildID: "G1"}}
	feed := []albion.Event{
		{EventID: 9005, TimeStamp: baseTime.Add(time.Minute)}, // no participants
		killEventAt(9006, "P1", "Alice", "P9", "Stranger", baseTime.Add(time.Minute)),
	}

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(roster, nil)
	f.roster.On("UpsertAll", ctx, mock.Anything).Return(nil)
	f.api.On("PlayerEvents", ctx, "P1", 10).Return(feed, nil)
	f.kills.On("InsertIfAbsent", ctx, mock.Anything).Return(true, nil)
	f.notifier.On("Notify", ctx, int64(555), mock.Anything).Return(nil)

	f.poller.runTick(ctx)

	require.Len(t, f.notifier.Sent, 1)
	assert.Equal(t, int64(9006), f.notifier.Sent[0].Event.EventID)
}

func TestClassify(t *testing.T) {
	rosterNames := map[string]string{"P1": "Alice", "P2": "Bob"}

	t.Run("member as killer", func(t *testing.T) {
		occs := classify(killEventAt(1, "P1", "Alice", "P9", "Stranger", baseTime), rosterNames)
		require.Len(t, occs, 1)
		assert.True(t, occs[0].IsKill)
		assert.Equal(t, "Alice", occs[0].MemberName)
	})

	t.Run("member as victim", func(t *testing.T) {
		occs := classify(killEventAt(2, "P9", "Stranger", "P2", "Bob", baseTime), rosterNames)
		require.Len(t, occs, 1)
		assert.False(t, occs[0].IsKill)
		assert.Equal(t, "Bob", occs[0].MemberName)
	})

	t.Run("no member involved", func(t *testing.T) {
		occs := classify(killEventAt(3, "P8", "A", "P9", "B", baseTime), rosterNames)
		assert.Empty(t, occs)
	})

	t.Run("guild infight yields kill and death", func(t *testing.T) {
		occs := classify(killEventAt(4, "P1", "Alice", "P2", "Bob", baseTime), rosterNames)
		require.Len(t, occs, 2)
		assert.True(t, occs[0].IsKill)
		assert.Equal(t, "Alice", occs[0].MemberName)
		assert.False(t, occs[1].IsKill)
		assert.Equal(t, "Bob", occs[1].MemberName)
	})
}

func TestPoller_GuildInfightAnnouncedOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	roster := []albion.Player{
		{ID: "P1", Name: "Alice", GuildID: "G1"},
		{ID: "P2", Name: "Bob", GuildID: "G1"},
	}
	infight := killEventAt(9010, "P1", "Alice", "P2", "Bob", baseTime.Add(time.Minute))

	f.channels.On("ListKillboardChannels", ctx).Return([]int64{555}, nil)
	f.api.On("GuildMembers", ctx, "G1").Return(roster, nil)
	f.roster.On("UpsertAll", ctx, mock.Anything).Return(nil)
	// Both members' feeds carry the same event.
	f.api.On("PlayerEvents", ctx, "P1", 10).Return([]albion.Event{infight}, nil)
	f.api.On("PlayerEvents", ctx, "P2", 10).Return([]albion.Event{infight}, nil)
	f.kills.On("InsertIfAbsent", ctx, mock.Anything).Return(true, nil).Once()
	f.kills.On("InsertIfAbsent", ctx, mock.Anything).Return(false, nil)
	f.notifier.On("Notify", ctx, int64(555), mock.Anything).Return(nil)

	f.poller.runTick(ctx)

	// Admitted once via Alice's feed, classified for both members there,
	// then dropped as a duplicate when Bob's feed repeats it.
	require.Len(t, f.notifier.Sent, 2)
	assert.True(t, f.notifier.Sent[0].IsKill)
	assert.False(t, f.notifier.Sent[1].IsKill)
}
