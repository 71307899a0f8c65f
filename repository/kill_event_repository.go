package repository

import (
	"context"
	"fmt"

	"killboard/database"
	"killboard/models"
)

// KillEventRepository implements kill event data access
type KillEventRepository struct {
	q queryable
}

// NewKillEventRepository creates a new kill event repository
func NewKillEventRepository(db *database.DB) *KillEventRepository {
	return &KillEventRepository{q: db.Pool}
}

// InsertIfAbsent stores a kill event keyed by its upstream event ID.
// A second insert for the same event ID is a no-op; the return value
// reports whether a new row was actually created.
func (r *KillEventRepository) InsertIfAbsent(ctx context.Context, event *models.KillEvent) (bool, error) {
	query := `
		INSERT INTO kill_events (
			event_id, killer_name, killer_id, victim_name, victim_id,
			fame, event_time, involved_member, is_kill
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (event_id) DO NOTHING
	`

	tag, err := r.q.Exec(ctx, query,
		event.EventID,
		event.KillerName,
		event.KillerID,
		event.VictimName,
		event.VictimID,
		event.Fame,
		event.EventTime,
		event.InvolvedMember,
		event.IsKill,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert kill event %d: %w", event.EventID, err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetRecentByMember returns the most recent stored events involving a member
func (r *KillEventRepository) GetRecentByMember(ctx context.Context, memberName string, limit int) ([]*models.KillEvent, error) {
	query := `
		SELECT id, event_id, killer_name, killer_id, victim_name, victim_id,
		       fame, event_time, involved_member, is_kill, created_at
		FROM kill_events
		WHERE involved_member = $1
		ORDER BY event_time DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, memberName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent kills for %s: %w", memberName, err)
	}
	defer rows.Close()

	var events []*models.KillEvent
	for rows.Next() {
		var event models.KillEvent
		err := rows.Scan(
			&event.ID,
			&event.EventID,
			&event.KillerName,
			&event.KillerID,
			&event.VictimName,
			&event.VictimID,
			&event.Fame,
			&event.EventTime,
			&event.InvolvedMember,
			&event.IsKill,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kill event: %w", err)
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
