package models

import "time"

// Build is a user-authored equipment loadout scoped to a Discord server.
// Build names are unique per server; uniqueness is enforced at the
// application layer with a check-then-insert.
type Build struct {
	ID          int64
	GuildID     int64
	BuildName   string
	CreatorID   int64
	Weapon      string
	Helmet      string
	Armor       string
	Shoes       string
	Cape        string
	OffHand     string
	Bag         string
	Mount       string
	Food        string
	Potion      string
	Spells      []string
	Description string
	CreatedAt   time.Time
}
