package models

import "time"

// GuildMember is a roster entry cached from the Albion API. The cache is
// refreshed wholesale on every poll cycle.
type GuildMember struct {
	ID          string
	Name        string
	GuildID     string
	LastUpdated time.Time
}
