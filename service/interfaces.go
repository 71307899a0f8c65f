package service

import (
	"context"

	"killboard/albion"
	"killboard/models"
)

// KillEventRepository defines the interface for kill event data access
type KillEventRepository interface {
	// InsertIfAbsent stores an event keyed by event ID; the bool reports
	// whether a new row was created
	InsertIfAbsent(ctx context.Context, event *models.KillEvent) (bool, error)

	// GetRecentByMember returns the most recent stored events involving a member
	GetRecentByMember(ctx context.Context, memberName string, limit int) ([]*models.KillEvent, error)
}

// GuildMemberRepository defines the interface for the roster cache
type GuildMemberRepository interface {
	// UpsertAll refreshes the roster cache with the latest member list
	UpsertAll(ctx context.Context, members []*models.GuildMember) error

	// GetAll returns every cached roster entry
	GetAll(ctx context.Context) ([]*models.GuildMember, error)
}

// ServerSettingsRepository defines the interface for per-server settings
type ServerSettingsRepository interface {
	// GetOrCreate retrieves settings, creating defaults if absent
	GetOrCreate(ctx context.Context, guildID int64) (*models.ServerSettings, error)

	// Update replaces the stored settings row
	Update(ctx context.Context, settings *models.ServerSettings) error

	// ListKillboardChannels returns every configured killboard channel
	ListKillboardChannels(ctx context.Context) ([]int64, error)
}

// TrackedEntityRepository defines the interface for tracker data access
type TrackedEntityRepository interface {
	// InsertIfAbsent adds a tracker, reporting whether a new row was created
	InsertIfAbsent(ctx context.Context, entity *models.TrackedEntity) (bool, error)

	// Delete removes a tracker by key, reporting whether anything was removed
	Delete(ctx context.Context, guildID int64, entityID string) (bool, error)

	// DeleteAllForGuild removes every tracker of a server
	DeleteAllForGuild(ctx context.Context, guildID int64) error

	// ListByGuild returns all trackers of a server
	ListByGuild(ctx context.Context, guildID int64) ([]*models.TrackedEntity, error)
}

// BuildRepository defines the interface for custom build data access
type BuildRepository interface {
	// Create stores a new build
	Create(ctx context.Context, build *models.Build) error

	// GetByName retrieves a build by server and name, or nil when absent
	GetByName(ctx context.Context, guildID int64, buildName string) (*models.Build, error)

	// Delete removes a build when the creator matches
	Delete(ctx context.Context, guildID int64, buildName string, creatorID int64) (bool, error)

	// ListByGuild returns a server's builds, most recent first
	ListByGuild(ctx context.Context, guildID int64) ([]*models.Build, error)
}

// EntitySearcher is the slice of the Albion client the tracker service needs
type EntitySearcher interface {
	Search(ctx context.Context, query string) (*albion.SearchResult, error)
}

// SettingsService defines the interface for server settings operations
type SettingsService interface {
	// GetSettings retrieves a server's settings, creating defaults if absent
	GetSettings(ctx context.Context, guildID int64) (*models.ServerSettings, error)

	// SetKillboardChannel sets the kill/death feed destination
	SetKillboardChannel(ctx context.Context, guildID, channelID int64) error

	// SetLanguage sets the server language
	SetLanguage(ctx context.Context, guildID int64, language string) error

	// SetBuilderRole sets the role allowed to manage builds
	SetBuilderRole(ctx context.Context, guildID, roleID int64) error

	// SetStatusChannel sets the status feed destination
	SetStatusChannel(ctx context.Context, guildID, channelID int64) error

	// Reset clears killboard configuration and removes all trackers
	Reset(ctx context.Context, guildID int64) error
}

// TrackerService defines the interface for killboard tracker operations
type TrackerService interface {
	// Track resolves a name upstream and starts tracking the best match.
	// Returns the tracked entity and whether it was newly added.
	Track(ctx context.Context, guildID int64, entityType, name string) (*models.TrackedEntity, bool, error)

	// Untrack stops tracking an entity resolved by case-insensitive name.
	// Returns the removed entity, or nil when no tracker matched.
	Untrack(ctx context.Context, guildID int64, name string) (*models.TrackedEntity, error)

	// List returns all trackers of a server
	List(ctx context.Context, guildID int64) ([]*models.TrackedEntity, error)
}

// BuildService defines the interface for custom build operations
type BuildService interface {
	// CreateBuild stores a build, rejecting duplicate names per server
	CreateBuild(ctx context.Context, build *models.Build) error

	// GetBuild retrieves a build by name, or nil when absent
	GetBuild(ctx context.Context, guildID int64, name string) (*models.Build, error)

	// RemoveBuild deletes a build when the caller created it
	RemoveBuild(ctx context.Context, guildID int64, name string, creatorID int64) (bool, error)

	// ListBuilds returns a server's builds, most recent first
	ListBuilds(ctx context.Context, guildID int64) ([]*models.Build, error)
}

// KillboardService defines the interface for killboard queries
type KillboardService interface {
	// Info aggregates a server's settings and trackers
	Info(ctx context.Context, guildID int64) (*models.ServerSettings, []*models.TrackedEntity, error)

	// RecentKills returns the most recent stored events for a member
	RecentKills(ctx context.Context, memberName string, limit int) ([]*models.KillEvent, error)
}
