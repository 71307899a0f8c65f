package repository

import (
	"context"
	"fmt"

	"killboard/database"
	"killboard/models"

	"github.com/jackc/pgx/v5"
)

// BuildRepository implements custom build data access
type BuildRepository struct {
	q queryable
}

// NewBuildRepository creates a new build repository
func NewBuildRepository(db *database.DB) *BuildRepository {
	return &BuildRepository{q: db.Pool}
}

// Create stores a new build. Name uniqueness per server is the caller's
// responsibility (check-then-insert at the service layer).
func (r *BuildRepository) Create(ctx context.Context, build *models.Build) error {
	query := `
		INSERT INTO builds (
			guild_id, build_name, creator_id,
			weapon, helmet, armor, shoes, cape, off_hand, bag, mount, food, potion,
			spells, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	if build.Spells == nil {
		build.Spells = []string{}
	}

	err := r.q.QueryRow(ctx, query,
		build.GuildID,
		build.BuildName,
		build.CreatorID,
		build.Weapon,
		build.Helmet,
		build.Armor,
		build.Shoes,
		build.Cape,
		build.OffHand,
		build.Bag,
		build.Mount,
		build.Food,
		build.Potion,
		build.Spells,
		build.Description,
	).Scan(&build.ID, &build.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create build %q for guild %d: %w", build.BuildName, build.GuildID, err)
	}

	return nil
}

// GetByName retrieves a build by server scope and name, or nil when absent
func (r *BuildRepository) GetByName(ctx context.Context, guildID int64, buildName string) (*models.Build, error) {
	query := `
		SELECT id, guild_id, build_name, creator_id,
		       weapon, helmet, armor, shoes, cape, off_hand, bag, mount, food, potion,
		       spells, description, created_at
		FROM builds
		WHERE guild_id = $1 AND build_name = $2
	`

	var build models.Build
	err := r.q.QueryRow(ctx, query, guildID, buildName).Scan(
		&build.ID,
		&build.GuildID,
		&build.BuildName,
		&build.CreatorID,
		&build.Weapon,
		&build.Helmet,
		&build.Armor,
		&build.Shoes,
		&build.Cape,
		&build.OffHand,
		&build.Bag,
		&build.Mount,
		&build.Food,
		&build.Potion,
		&build.Spells,
		&build.Description,
		&build.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get build %q for guild %d: %w", buildName, guildID, err)
	}

	return &build, nil
}

// Delete removes a build; the creator must match. Reports whether anything
// was removed.
func (r *BuildRepository) Delete(ctx context.Context, guildID int64, buildName string, creatorID int64) (bool, error) {
	query := `
		DELETE FROM builds
		WHERE guild_id = $1 AND build_name = $2 AND creator_id = $3
	`

	tag, err := r.q.Exec(ctx, query, guildID, buildName, creatorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete build %q for guild %d: %w", buildName, guildID, err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByGuild returns a server's builds, most recent first
func (r *BuildRepository) ListByGuild(ctx context.Context, guildID int64) ([]*models.Build, error) {
	query := `
		SELECT id, guild_id, build_name, creator_id,
		       weapon, helmet, armor, shoes, cape, off_hand, bag, mount, food, potion,
		       spells, description, created_at
		FROM builds
		WHERE guild_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds for guild %d: %w", guildID, err)
	}
	defer rows.Close()

	var builds []*models.Build
	for rows.Next() {
		var build models.Build
		err := rows.Scan(
			&build.ID,
			&build.GuildID,
			&build.BuildName,
			&build.CreatorID,
			&build.Weapon,
			&build.Helmet,
			&build.Armor,
			&build.Shoes,
			&build.Cape,
			&build.OffHand,
			&build.Bag,
			&build.Mount,
			&build.Food,
			&build.Potion,
			&build.Spells,
			&build.Description,
			&build.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan build: %w", err)
		}
		builds = append(builds, &build)
	}

	return builds, rows.Err()
}
