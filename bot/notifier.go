package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"killboard/bot/common"
	"killboard/poller"

	"github.com/bwmarrin/discordgo"
)

// KillNotifier delivers poller occurrences to Discord channels
type KillNotifier struct {
	session *discordgo.Session
}

// NewKillNotifier creates a notifier backed by a Discord session
func NewKillNotifier(session *discordgo.Session) *KillNotifier {
	return &KillNotifier{session: session}
}

// Notify posts a kill or death embed to the given channel
func (n *KillNotifier) Notify(ctx context.Context, channelID int64, occ poller.Occurrence) error {
	_, err := n.session.ChannelMessageSendEmbed(strconv.FormatInt(channelID, 10), buildOccurrenceEmbed(occ))
	if err != nil {
		return fmt.Errorf("failed to send kill notification: %w", err)
	}
	return nil
}

func buildOccurrenceEmbed(occ poller.Occurrence) *discordgo.MessageEmbed {
	var title, description string
	var color int
	if occ.IsKill {
		title = "⚔️ Kill"
		description = fmt.Sprintf("**%s** killed **%s**", occ.Event.Killer.Name, occ.Event.Victim.Name)
		color = common.ColorSuccess
	} else {
		title = "💀 Death"
		description = fmt.Sprintf("**%s** was killed by **%s**", occ.Event.Victim.Name, occ.Event.Killer.Name)
		color = common.ColorError
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   occ.Event.TimeStamp.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Fame", Value: common.FormatNumber(occ.Event.TotalVictimKillFame), Inline: true},
			{Name: "Member", Value: occ.MemberName, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Event %d", occ.Event.EventID),
		},
	}
}
