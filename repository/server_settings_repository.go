package repository

import (
	"context"
	"fmt"

	"killboard/database"
	"killboard/models"

	"github.com/jackc/pgx/v5"
)

// ServerSettingsRepository implements per-server settings data access
type ServerSettingsRepository struct {
	q queryable
}

// NewServerSettingsRepository creates a new server settings repository
func NewServerSettingsRepository(db *database.DB) *ServerSettingsRepository {
	return &ServerSettingsRepository{q: db.Pool}
}

// GetOrCreate retrieves settings for a Discord server, creating default
// settings if none exist yet
func (r *ServerSettingsRepository) GetOrCreate(ctx context.Context, guildID int64) (*models.ServerSettings, error) {
	query := `
		SELECT guild_id, killboard_channel_id, language, builder_role_id, status_channel_id
		FROM server_settings
		WHERE guild_id = $1
	`

	var settings models.ServerSettings
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&settings.GuildID,
		&settings.KillboardChannelID,
		&settings.Language,
		&settings.BuilderRoleID,
		&settings.StatusChannelID,
	)
	if err == nil {
		return &settings, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get settings for guild %d: %w", guildID, err)
	}

	insertQuery := `
		INSERT INTO server_settings (guild_id)
		VALUES ($1)
		RETURNING guild_id, killboard_channel_id, language, builder_role_id, status_channel_id
	`

	err = r.q.QueryRow(ctx, insertQuery, guildID).Scan(
		&settings.GuildID,
		&settings.KillboardChannelID,
		&settings.Language,
		&settings.BuilderRoleID,
		&settings.StatusChannelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

// Update replaces the stored settings row for the settings' guild
func (r *ServerSettingsRepository) Update(ctx context.Context, settings *models.ServerSettings) error {
	query := `
		INSERT INTO server_settings (guild_id, killboard_channel_id, language, builder_role_id, status_channel_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (guild_id) DO UPDATE
		SET killboard_channel_id = EXCLUDED.killboard_channel_id,
		    language = EXCLUDED.language,
		    builder_role_id = EXCLUDED.builder_role_id,
		    status_channel_id = EXCLUDED.status_channel_id
	`

	_, err := r.q.Exec(ctx, query,
		settings.GuildID,
		settings.KillboardChannelID,
		settings.Language,
		settings.BuilderRoleID,
		settings.StatusChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings for guild %d: %w", settings.GuildID, err)
	}

	return nil
}

// ListKillboardChannels returns the killboard channel of every server that
// configured one. The poller resolves its notification destinations from
// this at the start of each tick.
func (r *ServerSettingsRepository) ListKillboardChannels(ctx context.Context) ([]int64, error) {
	query := `
		SELECT killboard_channel_id
		FROM server_settings
		WHERE killboard_channel_id IS NOT NULL
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list killboard channels: %w", err)
	}
	defer rows.Close()

	var channels []int64
	for rows.Next() {
		var channelID int64
		if err := rows.Scan(&channelID); err != nil {
			return nil, fmt.Errorf("failed to scan killboard channel: %w", err)
		}
		channels = append(channels, channelID)
	}

	return channels, rows.Err()
}
