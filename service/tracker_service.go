package service

import (
	"context"
	"fmt"
	"strings"

	"killboard/albion"
	"killboard/events"
	"killboard/models"
)

// trackerService implements the TrackerService interface
type trackerService struct {
	trackerRepo TrackedEntityRepository
	searcher    EntitySearcher
	eventBus    *events.Bus
}

// NewTrackerService creates a new tracker service
func NewTrackerService(trackerRepo TrackedEntityRepository, searcher EntitySearcher, eventBus *events.Bus) TrackerService {
	return &trackerService{
		trackerRepo: trackerRepo,
		searcher:    searcher,
		eventBus:    eventBus,
	}
}

// Track resolves a name upstream and starts tracking the best match
func (s *trackerService) Track(ctx context.Context, guildID int64, entityType, name string) (*models.TrackedEntity, bool, error) {
	result, err := s.searcher.Search(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to search for %q: %w", name, err)
	}

	var hits []albion.SearchEntry
	switch entityType {
	case models.EntityTypePlayer:
		hits = result.Players
	case models.EntityTypeGuild:
		hits = result.Guilds
	default:
		return nil, false, fmt.Errorf("unknown entity type %q", entityType)
	}

	if len(hits) == 0 {
		return nil, false, nil
	}

	entity := &models.TrackedEntity{
		GuildID:    guildID,
		EntityID:   hits[0].ID,
		EntityName: hits[0].Name,
		EntityType: entityType,
	}

	added, err := s.trackerRepo.InsertIfAbsent(ctx, entity)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add tracker: %w", err)
	}

	if added {
		s.eventBus.Emit(ctx, events.TrackerAddedEvent{
			GuildID:    guildID,
			EntityID:   entity.EntityID,
			EntityName: entity.EntityName,
			EntityType: entityType,
		})
	}

	return entity, added, nil
}

// Untrack stops tracking an entity resolved by case-insensitive name
func (s *trackerService) Untrack(ctx context.Context, guildID int64, name string) (*models.TrackedEntity, error) {
	tracked, err := s.trackerRepo.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	var match *models.TrackedEntity
	for _, entity := range tracked {
		if strings.EqualFold(entity.EntityName, name) {
			match = entity
			break
		}
	}
	if match == nil {
		return nil, nil
	}

	removed, err := s.trackerRepo.Delete(ctx, guildID, match.EntityID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove tracker: %w", err)
	}
	if !removed {
		return nil, nil
	}

	s.eventBus.Emit(ctx, events.TrackerRemovedEvent{
		GuildID:    guildID,
		EntityID:   match.EntityID,
		EntityName: match.EntityName,
	})

	return match, nil
}

// List returns all trackers of a server
func (s *trackerService) List(ctx context.Context, guildID int64) ([]*models.TrackedEntity, error) {
	return s.trackerRepo.ListByGuild(ctx, guildID)
}
