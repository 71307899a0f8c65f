package lookup

import (
	"fmt"
	"time"

	"killboard/albion"
	"killboard/bot/common"

	"github.com/bwmarrin/discordgo"
)

func buildPlayerEmbed(player *albion.Player) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("👤 %s", player.Name),
		Color:     common.ColorInfo,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guild", Value: common.OrNone(player.GuildName), Inline: true},
			{Name: "Alliance", Value: common.OrNone(player.AllianceName), Inline: true},
			{Name: "Kill Fame", Value: common.FormatNumber(player.KillFame), Inline: true},
			{Name: "Death Fame", Value: common.FormatNumber(player.DeathFame), Inline: true},
			{Name: "Fame Ratio", Value: fmt.Sprintf("%.2f", player.FameRatio), Inline: true},
		},
	}
}

func buildGuildEmbed(guild *albion.Guild) *discordgo.MessageEmbed {
	founded := guild.Founded
	if t, err := time.Parse(time.RFC3339, guild.Founded); err == nil {
		founded = t.Format("2006-01-02")
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("🏰 %s", guild.Name),
		Color:     common.ColorInfo,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Alliance", Value: common.OrNone(guild.AllianceName), Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "Founded", Value: founded, Inline: true},
			{Name: "Fame", Value: common.FormatNumber(guild.Fame), Inline: false},
		},
	}
}
