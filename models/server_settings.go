package models

// ServerSettings represents per-Discord-server configuration
type ServerSettings struct {
	GuildID            int64
	KillboardChannelID *int64
	Language           string
	BuilderRoleID      *int64
	StatusChannelID    *int64
}
