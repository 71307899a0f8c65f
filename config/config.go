package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string

	// Database configuration
	DatabaseURL string

	// Albion configuration
	AlbionGuildID string

	// Poller configuration
	PollInterval     time.Duration
	MemberFetchDelay time.Duration
	EventFetchLimit  int
	SeenKeyCap       int

	// Metrics endpoint address, e.g. ":9090". Empty disables the endpoint.
	MetricsAddr string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Albion
		AlbionGuildID: os.Getenv("ALBION_GUILD_ID"),

		// Poller settings with defaults
		PollInterval:     2 * time.Minute,
		MemberFetchDelay: 500 * time.Millisecond,
		EventFetchLimit:  10,
		SeenKeyCap:       1000,

		MetricsAddr: os.Getenv("METRICS_ADDR"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if interval := os.Getenv("POLL_INTERVAL_SECONDS"); interval != "" {
		if parsed, err := strconv.Atoi(interval); err == nil && parsed > 0 {
			config.PollInterval = time.Duration(parsed) * time.Second
		}
	}
	if delay := os.Getenv("MEMBER_FETCH_DELAY_MS"); delay != "" {
		if parsed, err := strconv.Atoi(delay); err == nil && parsed >= 0 {
			config.MemberFetchDelay = time.Duration(parsed) * time.Millisecond
		}
	}
	if limit := os.Getenv("EVENT_FETCH_LIMIT"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil && parsed > 0 {
			config.EventFetchLimit = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.AlbionGuildID == "" {
			return nil, fmt.Errorf("ALBION_GUILD_ID is required")
		}
	}

	return config, nil
}
