package service

import (
	"context"
	"fmt"

	"killboard/models"
)

// ErrBuildExists is returned when a build name is already taken in a server
var ErrBuildExists = fmt.Errorf("a build with that name already exists")

// buildService implements the BuildService interface
type buildService struct {
	buildRepo BuildRepository
}

// NewBuildService creates a new build service
func NewBuildService(buildRepo BuildRepository) BuildService {
	return &buildService{buildRepo: buildRepo}
}

// CreateBuild stores a build, rejecting duplicate names per server without
// mutating storage
func (s *buildService) CreateBuild(ctx context.Context, build *models.Build) error {
	existing, err := s.buildRepo.GetByName(ctx, build.GuildID, build.BuildName)
	if err != nil {
		return fmt.Errorf("failed to check existing build: %w", err)
	}
	if existing != nil {
		return ErrBuildExists
	}

	if err := s.buildRepo.Create(ctx, build); err != nil {
		return fmt.Errorf("failed to create build: %w", err)
	}

	return nil
}

// GetBuild retrieves a build by name, or nil when absent
func (s *buildService) GetBuild(ctx context.Context, guildID int64, name string) (*models.Build, error) {
	return s.buildRepo.GetByName(ctx, guildID, name)
}

// RemoveBuild deletes a build when the caller created it
func (s *buildService) RemoveBuild(ctx context.Context, guildID int64, name string, creatorID int64) (bool, error) {
	return s.buildRepo.Delete(ctx, guildID, name, creatorID)
}

// ListBuilds returns a server's builds, most recent first
func (s *buildService) ListBuilds(ctx context.Context, guildID int64) ([]*models.Build, error) {
	return s.buildRepo.ListByGuild(ctx, guildID)
}
