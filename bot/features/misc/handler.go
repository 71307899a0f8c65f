package misc

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"killboard/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var eightBallAnswers = []string{
	"Yes", "No", "Maybe", "Definitely", "Absolutely not",
	"Ask again later", "I doubt it", "Very likely", "Unlikely",
	"Signs point to yes", "Cannot predict now", "Most likely",
}

func (f *Feature) targetUser(i *discordgo.InteractionCreate, s *discordgo.Session) *discordgo.User {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			return opt.UserValue(s)
		}
	}
	return i.Member.User
}

// HandleAvatar handles the /avatar command
func (f *Feature) HandleAvatar(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := f.targetUser(i, s)

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Avatar", user.Username),
		Color: common.ColorInfo,
		Image: &discordgo.MessageEmbedImage{URL: user.AvatarURL("512")},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send avatar response: %v", err)
	}
}

// HandleUser handles the /user command
func (f *Feature) HandleUser(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := f.targetUser(i, s)

	isBot := "No"
	if user.Bot {
		isBot = "Yes"
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("👤 %s", user.Username),
		Color:     common.ColorInfo,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "ID", Value: user.ID, Inline: true},
			{Name: "Bot", Value: isBot, Inline: true},
		},
	}

	if created, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Created",
			Value:  common.FormatDiscordTimestamp(created, "R"),
			Inline: true,
		})
	}

	if member, err := s.GuildMember(i.GuildID, user.ID); err == nil {
		if !member.JoinedAt.IsZero() {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "Joined Server",
				Value:  common.FormatDiscordTimestamp(member.JoinedAt, "R"),
				Inline: true,
			})
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Roles",
			Value:  strconv.Itoa(len(member.Roles)),
			Inline: true,
		})
	}

	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send user response: %v", err)
	}
}

// HandleServer handles the /server command
func (f *Feature) HandleServer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
		if err != nil {
			common.RespondWithError(s, i, "Failed to fetch server information")
			return
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("🏰 %s", guild.Name),
		Color:     common.ColorInfo,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Members", Value: strconv.Itoa(guild.MemberCount), Inline: true},
			{Name: "Channels", Value: strconv.Itoa(len(guild.Channels)), Inline: true},
			{Name: "Roles", Value: strconv.Itoa(len(guild.Roles)), Inline: true},
			{Name: "Owner", Value: fmt.Sprintf("<@%s>", guild.OwnerID), Inline: true},
			{Name: "Boost Level", Value: strconv.Itoa(int(guild.PremiumTier)), Inline: true},
		},
	}

	if created, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Created",
			Value:  common.FormatDiscordTimestamp(created, "R"),
			Inline: true,
		})
	}

	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send server response: %v", err)
	}
}

// HandleBotInfo handles the /bot-info command
func (f *Feature) HandleBotInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:     "🤖 Bot Information",
		Color:     common.ColorInfo,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: s.State.User.AvatarURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bot Name", Value: s.State.User.Username, Inline: true},
			{Name: "Servers", Value: strconv.Itoa(len(s.State.Guilds)), Inline: true},
			{Name: "Started", Value: common.FormatDiscordTimestamp(f.startedAt, "R"), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Albion Online killboard and market companion"},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send bot info: %v", err)
	}
}

// Handle8Ball handles the /8ball command
func (f *Feature) Handle8Ball(s *discordgo.Session, i *discordgo.InteractionCreate) {
	question := i.ApplicationCommandData().Options[0].StringValue()
	answer := eightBallAnswers[rand.Intn(len(eightBallAnswers))]

	embed := &discordgo.MessageEmbed{
		Title: "🎱 Magic 8-Ball",
		Color: 0x000000,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Question", Value: question},
			{Name: "Answer", Value: answer},
		},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send 8ball response: %v", err)
	}
}

// HandleRandomColor handles the /random-color command
func (f *Feature) HandleRandomColor(s *discordgo.Session, i *discordgo.InteractionCreate) {
	color := rand.Intn(0x1000000)
	hex := fmt.Sprintf("#%06X", color)

	embed := &discordgo.MessageEmbed{
		Title:       "🎨 Random Color",
		Description: fmt.Sprintf("**%s**", hex),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Hex", Value: hex, Inline: true},
			{Name: "RGB", Value: fmt.Sprintf("%d, %d, %d", (color>>16)&255, (color>>8)&255, color&255), Inline: true},
		},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send random color: %v", err)
	}
}

// HandleUTC handles the /utc command. The game runs on UTC.
func (f *Feature) HandleUTC(s *discordgo.Session, i *discordgo.InteractionCreate) {
	now := time.Now().UTC()

	embed := &discordgo.MessageEmbed{
		Title:       "🕐 Albion Online Time (UTC)",
		Description: fmt.Sprintf("**%s**", now.Format("2006-01-02 15:04:05")),
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "UTC Timestamp", Value: common.FormatDiscordTimestamp(now, "F")},
		},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send utc response: %v", err)
	}
}
