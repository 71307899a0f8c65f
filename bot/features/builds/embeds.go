package builds

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"killboard/bot/common"
	"killboard/models"

	"github.com/bwmarrin/discordgo"
)

func buildDetailEmbed(s *discordgo.Session, build *models.Build) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ %s", build.BuildName),
		Description: common.OrNone(build.Description),
		Color:       common.ColorInfo,
		Timestamp:   build.CreatedAt.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Weapon", Value: common.OrNone(build.Weapon), Inline: true},
			{Name: "Helmet", Value: common.OrNone(build.Helmet), Inline: true},
			{Name: "Armor", Value: common.OrNone(build.Armor), Inline: true},
			{Name: "Shoes", Value: common.OrNone(build.Shoes), Inline: true},
			{Name: "Off-hand", Value: common.OrNone(build.OffHand), Inline: true},
			{Name: "Cape", Value: common.OrNone(build.Cape), Inline: true},
			{Name: "Mount", Value: common.OrNone(build.Mount), Inline: true},
			{Name: "Food", Value: common.OrNone(build.Food), Inline: true},
			{Name: "Potion", Value: common.OrNone(build.Potion), Inline: true},
		},
	}

	if len(build.Spells) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Spells",
			Value: strings.Join(build.Spells, ", "),
		})
	}

	creatorName := "Unknown"
	if user, err := s.User(strconv.FormatInt(build.CreatorID, 10)); err == nil {
		creatorName = user.Username
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Created by %s", creatorName)}

	return embed
}

func buildCreatedEmbed(build *models.Build, creatorName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ Build Created",
		Description: fmt.Sprintf("Build %q has been saved!", build.BuildName),
		Color:       common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Build ID", Value: strconv.FormatInt(build.ID, 10), Inline: true},
			{Name: "Creator", Value: creatorName, Inline: true},
		},
	}
}
