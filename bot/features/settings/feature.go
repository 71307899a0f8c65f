package settings

import (
	"killboard/service"
)

// Feature handles server configuration commands
type Feature struct {
	settingsService service.SettingsService
}

// NewFeature creates a new settings feature instance
func NewFeature(settingsService service.SettingsService) *Feature {
	return &Feature{settingsService: settingsService}
}
