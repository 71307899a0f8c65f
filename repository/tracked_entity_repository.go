package repository

import (
	"context"
	"fmt"

	"killboard/database"
	"killboard/models"
)

// TrackedEntityRepository implements tracker data access
type TrackedEntityRepository struct {
	q queryable
}

// NewTrackedEntityRepository creates a new tracked entity repository
func NewTrackedEntityRepository(db *database.DB) *TrackedEntityRepository {
	return &TrackedEntityRepository{q: db.Pool}
}

// InsertIfAbsent adds a tracker for (guildID, entityID), reporting whether a
// new row was created. Tracking an already-tracked entity is a no-op.
func (r *TrackedEntityRepository) InsertIfAbsent(ctx context.Context, entity *models.TrackedEntity) (bool, error) {
	query := `
		INSERT INTO tracked_entities (guild_id, entity_id, entity_name, entity_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id, entity_id) DO NOTHING
	`

	tag, err := r.q.Exec(ctx, query, entity.GuildID, entity.EntityID, entity.EntityName, entity.EntityType)
	if err != nil {
		return false, fmt.Errorf("failed to insert tracked entity %s for guild %d: %w", entity.EntityID, entity.GuildID, err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a tracker by its key, reporting whether anything was removed
func (r *TrackedEntityRepository) Delete(ctx context.Context, guildID int64, entityID string) (bool, error) {
	query := `
		DELETE FROM tracked_entities
		WHERE guild_id = $1 AND entity_id = $2
	`

	tag, err := r.q.Exec(ctx, query, guildID, entityID)
	if err != nil {
		return false, fmt.Errorf("failed to delete tracked entity %s for guild %d: %w", entityID, guildID, err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteAllForGuild removes every tracker of a Discord server
func (r *TrackedEntityRepository) DeleteAllForGuild(ctx context.Context, guildID int64) error {
	query := `DELETE FROM tracked_entities WHERE guild_id = $1`

	if _, err := r.q.Exec(ctx, query, guildID); err != nil {
		return fmt.Errorf("failed to delete trackers for guild %d: %w", guildID, err)
	}

	return nil
}

// ListByGuild returns all trackers of a Discord server
func (r *TrackedEntityRepository) ListByGuild(ctx context.Context, guildID int64) ([]*models.TrackedEntity, error) {
	query := `
		SELECT id, guild_id, entity_id, entity_name, entity_type, created_at
		FROM tracked_entities
		WHERE guild_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked entities for guild %d: %w", guildID, err)
	}
	defer rows.Close()

	var entities []*models.TrackedEntity
	for rows.Next() {
		var entity models.TrackedEntity
		err := rows.Scan(
			&entity.ID,
			&entity.GuildID,
			&entity.EntityID,
			&entity.EntityName,
			&entity.EntityType,
			&entity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tracked entity: %w", err)
		}
		entities = append(entities, &entity)
	}

	return entities, rows.Err()
}
