package bot

import (
	"context"
	"fmt"
	"strconv"

	"killboard/events"

	log "github.com/sirupsen/logrus"
)

// subscribeToEvents posts a notice to a server's status channel whenever its
// killboard configuration changes
func (b *Bot) subscribeToEvents() {
	b.eventBus.Subscribe(events.EventTypeTrackerAdded, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.TrackerAddedEvent); ok {
			b.postStatusNotice(ctx, e.GuildID, fmt.Sprintf("📡 Now tracking %s **%s**", e.EntityType, e.EntityName))
		}
	})
	b.eventBus.Subscribe(events.EventTypeTrackerRemoved, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.TrackerRemovedEvent); ok {
			b.postStatusNotice(ctx, e.GuildID, fmt.Sprintf("📡 Stopped tracking **%s**", e.EntityName))
		}
	})
	b.eventBus.Subscribe(events.EventTypeKillboardReset, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.KillboardResetEvent); ok {
			b.postStatusNotice(ctx, e.GuildID, "🧹 Killboard configuration has been reset")
		}
	})
}

func (b *Bot) postStatusNotice(ctx context.Context, guildID int64, message string) {
	settings, err := b.settingsService.GetSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to load settings for status notice: %v", err)
		return
	}
	if settings.StatusChannelID == nil {
		return
	}

	channelID := strconv.FormatInt(*settings.StatusChannelID, 10)
	if _, err := b.session.ChannelMessageSend(channelID, message); err != nil {
		log.Errorf("Failed to post status notice: %v", err)
	}
}
