package service

import (
	"context"
	"fmt"

	"killboard/events"
	"killboard/models"
)

// settingsService implements the SettingsService interface
type settingsService struct {
	settingsRepo ServerSettingsRepository
	trackerRepo  TrackedEntityRepository
	eventBus     *events.Bus
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo ServerSettingsRepository, trackerRepo TrackedEntityRepository, eventBus *events.Bus) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		trackerRepo:  trackerRepo,
		eventBus:     eventBus,
	}
}

// GetSettings retrieves a server's settings, creating defaults if absent
func (s *settingsService) GetSettings(ctx context.Context, guildID int64) (*models.ServerSettings, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// SetKillboardChannel sets the kill/death feed destination
func (s *settingsService) SetKillboardChannel(ctx context.Context, guildID, channelID int64) error {
	return s.update(ctx, guildID, func(settings *models.ServerSettings) {
		settings.KillboardChannelID = &channelID
	})
}

// SetLanguage sets the server language
func (s *settingsService) SetLanguage(ctx context.Context, guildID int64, language string) error {
	return s.update(ctx, guildID, func(settings *models.ServerSettings) {
		settings.Language = language
	})
}

// SetBuilderRole sets the role allowed to manage builds
func (s *settingsService) SetBuilderRole(ctx context.Context, guildID, roleID int64) error {
	return s.update(ctx, guildID, func(settings *models.ServerSettings) {
		settings.BuilderRoleID = &roleID
	})
}

// SetStatusChannel sets the status feed destination
func (s *settingsService) SetStatusChannel(ctx context.Context, guildID, channelID int64) error {
	return s.update(ctx, guildID, func(settings *models.ServerSettings) {
		settings.StatusChannelID = &channelID
	})
}

// Reset clears killboard configuration and removes all trackers
func (s *settingsService) Reset(ctx context.Context, guildID int64) error {
	settings := &models.ServerSettings{
		GuildID:  guildID,
		Language: "en",
	}
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	if err := s.trackerRepo.DeleteAllForGuild(ctx, guildID); err != nil {
		return fmt.Errorf("failed to clear trackers: %w", err)
	}

	s.eventBus.Emit(ctx, events.KillboardResetEvent{GuildID: guildID})
	return nil
}

func (s *settingsService) update(ctx context.Context, guildID int64, apply func(*models.ServerSettings)) error {
	settings, err := s.settingsRepo.GetOrCreate(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	apply(settings)

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}
