package killboard

import (
	"killboard/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles killboard management commands
type Feature struct {
	killboardService service.KillboardService
	trackerService   service.TrackerService
	settingsService  service.SettingsService
}

// NewFeature creates a new killboard feature instance
func NewFeature(killboardService service.KillboardService, trackerService service.TrackerService, settingsService service.SettingsService) *Feature {
	return &Feature{
		killboardService: killboardService,
		trackerService:   trackerService,
		settingsService:  settingsService,
	}
}

// HandleCommand routes killboard subcommands to their handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "info":
		f.handleInfo(s, i)
	case "set-channel":
		f.handleSetChannel(s, i)
	case "track":
		f.handleTrack(s, i)
	case "untrack":
		f.handleUntrack(s, i)
	case "remove":
		f.handleRemove(s, i)
	}
}
