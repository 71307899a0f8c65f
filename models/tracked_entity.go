package models

import "time"

// Entity types that can be tracked on a killboard
const (
	EntityTypePlayer = "player"
	EntityTypeGuild  = "guild"
)

// TrackedEntity is a player or guild a Discord server monitors.
// Uniqueness is (GuildID, EntityID).
type TrackedEntity struct {
	ID         int64
	GuildID    int64
	EntityID   string
	EntityName string
	EntityType string
	CreatedAt  time.Time
}
