package albion

import (
	"fmt"
	"time"
)

// SearchResult is the response of the gameinfo search endpoint
type SearchResult struct {
	Players []SearchEntry `json:"players"`
	Guilds  []SearchEntry `json:"guilds"`
}

// SearchEntry is one player or guild hit in a search result
type SearchEntry struct {
	ID           string `json:"Id"`
	Name         string `json:"Name"`
	GuildName    string `json:"GuildName,omitempty"`
	AllianceName string `json:"AllianceName,omitempty"`
	KillFame     int64  `json:"KillFame,omitempty"`
	DeathFame    int64  `json:"DeathFame,omitempty"`
}

// Guild is the detail response for a single guild
type Guild struct {
	ID           string   `json:"Id"`
	Name         string   `json:"Name"`
	AllianceName string   `json:"AllianceName"`
	Founded      string   `json:"Founded"`
	MemberCount  int      `json:"MemberCount"`
	Fame         int64    `json:"Fame"`
	Members      []Player `json:"members"`
}

// Player is a player as returned by the gameinfo API
type Player struct {
	ID           string  `json:"Id"`
	Name         string  `json:"Name"`
	GuildID      string  `json:"GuildId"`
	GuildName    string  `json:"GuildName"`
	AllianceName string  `json:"AllianceName"`
	KillFame     int64   `json:"KillFame"`
	DeathFame    int64   `json:"DeathFame"`
	FameRatio    float64 `json:"FameRatio"`
}

// EventParticipant is the killer or victim of a kill event
type EventParticipant struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// Event is one entry of the kill event feed
type Event struct {
	EventID             int64            `json:"EventId"`
	Killer              EventParticipant `json:"Killer"`
	Victim              EventParticipant `json:"Victim"`
	TotalVictimKillFame int64            `json:"TotalVictimKillFame"`
	TimeStamp           time.Time        `json:"TimeStamp"`
}

// Validate rejects malformed event payloads before they reach the poller.
// The upstream feed occasionally returns entries with missing participants.
func (e *Event) Validate() error {
	if e.EventID == 0 {
		return fmt.Errorf("event missing EventId")
	}
	if e.Killer.ID == "" {
		return fmt.Errorf("event %d missing killer", e.EventID)
	}
	if e.Victim.ID == "" {
		return fmt.Errorf("event %d missing victim", e.EventID)
	}
	if e.TimeStamp.IsZero() {
		return fmt.Errorf("event %d missing timestamp", e.EventID)
	}
	return nil
}

// PriceQuote is one city's market data for an item. The data API emits
// zone-less timestamps, so the date fields stay strings until formatting.
type PriceQuote struct {
	ItemID           string `json:"item_id"`
	City             string `json:"city"`
	Quality          int    `json:"quality"`
	SellPriceMin     int64  `json:"sell_price_min"`
	SellPriceMinDate string `json:"sell_price_min_date"`
	BuyPriceMax      int64  `json:"buy_price_max"`
	BuyPriceMaxDate  string `json:"buy_price_max_date"`
}

// GoldPrice is one sample of the gold/silver exchange rate
type GoldPrice struct {
	Price     int64  `json:"price"`
	Timestamp string `json:"timestamp"`
}

// ParseDataTime parses the zone-less timestamps of the market data API,
// treating them as UTC.
func ParseDataTime(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
