// Package albion wraps the public Albion Online REST APIs used by the bot:
// the gameinfo API (search, guilds, players, kill events), the community
// market data API (item and gold prices) and the item render service.
package albion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// GameinfoBaseURL is the official game data API
	GameinfoBaseURL = "https://gameinfo.albiononline.com/api/gameinfo"
	// DataBaseURL is the community-run market data API
	DataBaseURL = "https://www.albion-online-data.com/api/v2/stats"
	// RenderBaseURL serves item icons
	RenderBaseURL = "https://render.albiononline.com/v1"
)

// DefaultLocations are the royal city markets queried for prices
var DefaultLocations = []string{"Caerleon", "Bridgewatch", "Lymhurst", "Martlock", "Thetford", "Fort Sterling"}

// Client is an Albion Online API client with request spacing to respect
// upstream rate limits
type Client struct {
	gameinfoURL string
	dataURL     string
	renderURL   string
	httpClient  *http.Client

	// Simple rate limiter
	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithBaseURLs overrides the upstream endpoints, used by tests
func WithBaseURLs(gameinfo, data, render string) Option {
	return func(c *Client) {
		c.gameinfoURL = gameinfo
		c.dataURL = data
		c.renderURL = render
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Albion API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		gameinfoURL: GameinfoBaseURL,
		dataURL:     DataBaseURL,
		renderURL:   RenderBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// ~5 requests per second between any two calls
		minInterval: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// waitInterval spaces requests minInterval apart. The caller's slot is
// claimed under the lock, then the wait itself runs unlocked so a cancelled
// context aborts it immediately.
func (c *Client) waitInterval(ctx context.Context) error {
	c.mu.Lock()
	now := time.Now()
	next := c.lastRequest.Add(c.minInterval)
	if next.Before(now) {
		next = now
	}
	c.lastRequest = next
	c.mu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// get performs a rate-limited GET request and decodes the JSON response
func (c *Client) get(ctx context.Context, rawURL string, result interface{}) error {
	if err := c.waitInterval(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("rate limited by upstream (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
	}

	return nil
}

// Search looks up players and guilds by name
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	var result SearchResult
	u := fmt.Sprintf("%s/search?q=%s", c.gameinfoURL, url.QueryEscape(query))
	if err := c.get(ctx, u, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Guild fetches detailed guild information including the member roster
func (c *Client) Guild(ctx context.Context, guildID string) (*Guild, error) {
	var guild Guild
	u := fmt.Sprintf("%s/guilds/%s", c.gameinfoURL, url.PathEscape(guildID))
	if err := c.get(ctx, u, &guild); err != nil {
		return nil, err
	}
	return &guild, nil
}

// GuildMembers fetches the current member roster of a guild
func (c *Client) GuildMembers(ctx context.Context, guildID string) ([]Player, error) {
	var members []Player
	u := fmt.Sprintf("%s/guilds/%s/members", c.gameinfoURL, url.PathEscape(guildID))
	if err := c.get(ctx, u, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Player fetches detailed player statistics
func (c *Client) Player(ctx context.Context, playerID string) (*Player, error) {
	var player Player
	u := fmt.Sprintf("%s/players/%s", c.gameinfoURL, url.PathEscape(playerID))
	if err := c.get(ctx, u, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// PlayerEvents fetches a player's most recent kill events, newest first.
// Malformed entries are dropped at this boundary so the poller only ever
// sees validated events.
func (c *Client) PlayerEvents(ctx context.Context, playerID string, limit int) ([]Event, error) {
	var events []Event
	u := fmt.Sprintf("%s/players/%s/events?limit=%d&offset=0", c.gameinfoURL, url.PathEscape(playerID), limit)
	if err := c.get(ctx, u, &events); err != nil {
		return nil, err
	}

	valid := events[:0]
	for i := range events {
		if err := events[i].Validate(); err != nil {
			continue
		}
		valid = append(valid, events[i])
	}
	return valid, nil
}

// ItemPrices fetches current market prices for an item across the given
// locations (DefaultLocations when none are given)
func (c *Client) ItemPrices(ctx context.Context, itemID string, locations []string) ([]PriceQuote, error) {
	if len(locations) == 0 {
		locations = DefaultLocations
	}
	var quotes []PriceQuote
	u := fmt.Sprintf("%s/prices/%s?locations=%s",
		c.dataURL, url.PathEscape(itemID), url.QueryEscape(strings.Join(locations, ",")))
	if err := c.get(ctx, u, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// GoldPrices fetches the most recent gold price samples
func (c *Client) GoldPrices(ctx context.Context, count int) ([]GoldPrice, error) {
	var prices []GoldPrice
	u := fmt.Sprintf("%s/gold?count=%d", c.dataURL, count)
	if err := c.get(ctx, u, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// ItemImageURL returns the render service URL for an item icon
func (c *Client) ItemImageURL(itemID string, quality int) string {
	if quality < 1 || quality > 5 {
		quality = 1
	}
	return fmt.Sprintf("%s/item/%s?quality=%d&size=217", c.renderURL, url.PathEscape(itemID), quality)
}
