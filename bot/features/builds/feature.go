package builds

import (
	"killboard/service"
)

// Feature handles custom build commands
type Feature struct {
	buildService    service.BuildService
	settingsService service.SettingsService
}

// NewFeature creates a new builds feature instance
func NewFeature(buildService service.BuildService, settingsService service.SettingsService) *Feature {
	return &Feature{
		buildService:    buildService,
		settingsService: settingsService,
	}
}
