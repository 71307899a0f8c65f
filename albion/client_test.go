package albion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(WithBaseURLs(srv.URL, srv.URL, srv.URL))
	c.minInterval = 0
	return c, srv
}

func TestSearch(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Revenant Renegades", r.URL.Query().Get("q"))
		w.Write([]byte(`{
			"players": [{"Id": "P1", "Name": "Tryskelly"}],
			"guilds": [{"Id": "G1", "Name": "Revenant Renegades", "AllianceName": "ARCH"}]
		}`))
	}))
	defer srv.Close()

	result, err := c.Search(context.Background(), "Revenant Renegades")
	require.NoError(t, err)
	require.Len(t, result.Players, 1)
	require.Len(t, result.Guilds, 1)
	assert.Equal(t, "P1", result.Players[0].ID)
	assert.Equal(t, "Revenant Renegades", result.Guilds[0].Name)
}

func TestGuildMembers(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/guilds/G1/members", r.URL.Path)
		w.Write([]byte(`[
			{"Id": "P1", "Name": "Alice", "GuildId": "G1"},
			{"Id": "P2", "Name": "Bob", "GuildId": "G1"}
		]`))
	}))
	defer srv.Close()

	members, err := c.GuildMembers(context.Background(), "G1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, "G1", members[1].GuildID)
}

func TestPlayerEventsDropsMalformedEntries(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/P1/events", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`[
			{
				"EventId": 100,
				"Killer": {"Id": "P1", "Name": "Alice"},
				"Victim": {"Id": "P9", "Name": "Bob"},
				"TotalVictimKillFame": 1000,
				"TimeStamp": "2024-05-01T12:00:00.000000Z"
			},
			{
				"EventId": 101,
				"Killer": {"Id": "", "Name": ""},
				"Victim": {"Id": "P9", "Name": "Bob"},
				"TimeStamp": "2024-05-01T12:01:00.000000Z"
			}
		]`))
	}))
	defer srv.Close()

	events, err := c.PlayerEvents(context.Background(), "P1", 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(100), events[0].EventID)
	assert.Equal(t, int64(1000), events[0].TotalVictimKillFame)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), events[0].TimeStamp.UTC())
}

func TestItemPrices(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices/T4_SWORD", r.URL.Path)
		w.Write([]byte(`[
			{"item_id": "T4_SWORD", "city": "Caerleon", "sell_price_min": 5000, "sell_price_min_date": "2024-05-01T12:00:00", "buy_price_max": 4200}
		]`))
	}))
	defer srv.Close()

	quotes, err := c.ItemPrices(context.Background(), "T4_SWORD", nil)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Caerleon", quotes[0].City)
	assert.Equal(t, int64(5000), quotes[0].SellPriceMin)

	parsed, ok := ParseDataTime(quotes[0].SellPriceMinDate)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), parsed)
}

func TestGetErrorStatus(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := c.Search(context.Background(), "anyone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGetCancelledDuringRateLimitWait(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"players": [], "guilds": []}`))
	}))
	defer srv.Close()
	c.minInterval = 5 * time.Second

	// First request claims the interval slot
	_, err := c.Search(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err = c.Search(ctx, "second")
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEventValidate(t *testing.T) {
	valid := Event{
		EventID:   1,
		Killer:    EventParticipant{ID: "P1", Name: "Alice"},
		Victim:    EventParticipant{ID: "P2", Name: "Bob"},
		TimeStamp: time.Now(),
	}
	assert.NoError(t, valid.Validate())

	missingID := valid
	missingID.EventID = 0
	assert.Error(t, missingID.Validate())

	missingVictim := valid
	missingVictim.Victim.ID = ""
	assert.Error(t, missingVictim.Validate())
}
