package service

import (
	"context"
	"fmt"

	"killboard/models"
)

// killboardService implements the KillboardService interface
type killboardService struct {
	settingsRepo  ServerSettingsRepository
	trackerRepo   TrackedEntityRepository
	killEventRepo KillEventRepository
}

// NewKillboardService creates a new killboard service
func NewKillboardService(settingsRepo ServerSettingsRepository, trackerRepo TrackedEntityRepository, killEventRepo KillEventRepository) KillboardService {
	return &killboardService{
		settingsRepo:  settingsRepo,
		trackerRepo:   trackerRepo,
		killEventRepo: killEventRepo,
	}
}

// Info aggregates a server's settings and trackers
func (s *killboardService) Info(ctx context.Context, guildID int64) (*models.ServerSettings, []*models.TrackedEntity, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx, guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settings: %w", err)
	}

	tracked, err := s.trackerRepo.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	return settings, tracked, nil
}

// RecentKills returns the most recent stored events for a member
func (s *killboardService) RecentKills(ctx context.Context, memberName string, limit int) ([]*models.KillEvent, error) {
	return s.killEventRepo.GetRecentByMember(ctx, memberName, limit)
}
