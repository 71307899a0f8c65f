package repository

import (
	"context"
	"fmt"

	"killboard/database"
	"killboard/models"
)

// GuildMemberRepository implements the roster cache data access
type GuildMemberRepository struct {
	q queryable
}

// NewGuildMemberRepository creates a new guild member repository
func NewGuildMemberRepository(db *database.DB) *GuildMemberRepository {
	return &GuildMemberRepository{q: db.Pool}
}

// UpsertAll refreshes the roster cache with the latest member list.
// Existing rows are replaced; members absent from the list are retained.
func (r *GuildMemberRepository) UpsertAll(ctx context.Context, members []*models.GuildMember) error {
	query := `
		INSERT INTO guild_members (id, name, guild_id, last_updated)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    guild_id = EXCLUDED.guild_id,
		    last_updated = NOW()
	`

	for _, member := range members {
		if _, err := r.q.Exec(ctx, query, member.ID, member.Name, member.GuildID); err != nil {
			return fmt.Errorf("failed to upsert guild member %s: %w", member.ID, err)
		}
	}

	return nil
}

// GetAll returns every cached roster entry
func (r *GuildMemberRepository) GetAll(ctx context.Context) ([]*models.GuildMember, error) {
	query := `
		SELECT id, name, guild_id, last_updated
		FROM guild_members
		ORDER BY name
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild members: %w", err)
	}
	defer rows.Close()

	var members []*models.GuildMember
	for rows.Next() {
		var member models.GuildMember
		if err := rows.Scan(&member.ID, &member.Name, &member.GuildID, &member.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan guild member: %w", err)
		}
		members = append(members, &member)
	}

	return members, rows.Err()
}
