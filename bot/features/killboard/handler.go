package killboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"killboard/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer killboard info response: %v", err)
		return
	}
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error fetching killboard information")
		return
	}

	settings, tracked, err := f.killboardService.Info(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to fetch killboard info: %v", err)
		common.EditWithMessage(s, i, "Error fetching killboard information")
		return
	}

	channelValue := "Not set"
	if settings.KillboardChannelID != nil {
		channelValue = fmt.Sprintf("<#%d>", *settings.KillboardChannelID)
	}

	embed := &discordgo.MessageEmbed{
		Title: "⚔️ Killboard Information",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Channel", Value: channelValue, Inline: true},
			{Name: "Tracked Entities", Value: strconv.Itoa(len(tracked)), Inline: true},
			{Name: "Language", Value: settings.Language, Inline: true},
		},
	}

	if len(tracked) > 0 {
		var lines []string
		for _, t := range tracked {
			lines = append(lines, fmt.Sprintf("%s: %s", t.EntityType, t.EntityName))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Currently Tracking",
			Value: strings.Join(lines, "\n"),
		})
	}

	common.EditWithEmbed(s, i, embed)
}

func (f *Feature) handleSetChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	channel := i.ApplicationCommandData().Options[0].Options[0].ChannelValue(s)
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer set-channel response: %v", err)
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error setting killboard channel")
		return
	}
	channelID, err := strconv.ParseInt(channel.ID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error setting killboard channel")
		return
	}

	if err := f.settingsService.SetKillboardChannel(context.Background(), guildID, channelID); err != nil {
		log.Errorf("Failed to set killboard channel: %v", err)
		common.EditWithMessage(s, i, "Error setting killboard channel")
		return
	}

	common.EditWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Channel Set",
		Description: fmt.Sprintf("Killboard channel set to <#%s>", channel.ID),
		Color:       common.ColorSuccess,
	})
}

func (f *Feature) handleTrack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options[0].Options
	entityType := options[0].StringValue()
	name := options[1].StringValue()

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer track response: %v", err)
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error adding tracker")
		return
	}

	entity, added, err := f.trackerService.Track(context.Background(), guildID, entityType, name)
	if err != nil {
		log.Errorf("Failed to add tracker: %v", err)
		common.EditWithMessage(s, i, "Error adding tracker")
		return
	}
	if entity == nil {
		common.EditWithMessage(s, i, fmt.Sprintf("%s %q not found", entityType, name))
		return
	}
	if !added {
		common.EditWithMessage(s, i, fmt.Sprintf("%s %q is already being tracked", entityType, entity.EntityName))
		return
	}

	common.EditWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Now Tracking",
		Description: fmt.Sprintf("Now tracking %s %q", entityType, entity.EntityName),
		Color:       common.ColorSuccess,
	})
}

func (f *Feature) handleUntrack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Options[0].Options[0].StringValue()
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer untrack response: %v", err)
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error removing tracker")
		return
	}

	removed, err := f.trackerService.Untrack(context.Background(), guildID, name)
	if err != nil {
		log.Errorf("Failed to remove tracker: %v", err)
		common.EditWithMessage(s, i, "Error removing tracker")
		return
	}
	if removed == nil {
		common.EditWithMessage(s, i, fmt.Sprintf("No tracker found for %q", name))
		return
	}

	common.EditWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Tracker Removed",
		Description: fmt.Sprintf("Stopped tracking %q", removed.EntityName),
		Color:       common.ColorSuccess,
	})
}

func (f *Feature) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer killboard remove response: %v", err)
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error resetting killboard")
		return
	}

	if err := f.settingsService.Reset(context.Background(), guildID); err != nil {
		log.Errorf("Failed to reset killboard: %v", err)
		common.EditWithMessage(s, i, "Error resetting killboard")
		return
	}

	common.EditWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Killboard Reset",
		Description: "All killboard settings and trackers have been removed",
		Color:       common.ColorSuccess,
	})
}
