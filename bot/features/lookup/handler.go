package lookup

import (
	"context"
	"fmt"

	"killboard/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandlePlayer handles the /player command
func (f *Feature) HandlePlayer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Options[0].StringValue()
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer player response: %v", err)
		return
	}
	ctx := context.Background()

	result, err := f.client.Search(ctx, name)
	if err != nil {
		log.Errorf("Player search failed: %v", err)
		common.EditWithMessage(s, i, "Error fetching player data")
		return
	}
	if len(result.Players) == 0 {
		common.EditWithMessage(s, i, fmt.Sprintf("Player %q not found", name))
		return
	}

	player, err := f.client.Player(ctx, result.Players[0].ID)
	if err != nil {
		log.Errorf("Player fetch failed: %v", err)
		common.EditWithMessage(s, i, "Error fetching player data")
		return
	}

	common.EditWithEmbed(s, i, buildPlayerEmbed(player))
}

// HandleGuild handles the /guild command
func (f *Feature) HandleGuild(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Options[0].StringValue()
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer guild response: %v", err)
		return
	}
	ctx := context.Background()

	result, err := f.client.Search(ctx, name)
	if err != nil {
		log.Errorf("Guild search failed: %v", err)
		common.EditWithMessage(s, i, "Error fetching guild data")
		return
	}
	if len(result.Guilds) == 0 {
		common.EditWithMessage(s, i, fmt.Sprintf("Guild %q not found", name))
		return
	}

	guild, err := f.client.Guild(ctx, result.Guilds[0].ID)
	if err != nil {
		log.Errorf("Guild fetch failed: %v", err)
		common.EditWithMessage(s, i, "Error fetching guild data")
		return
	}

	common.EditWithEmbed(s, i, buildGuildEmbed(guild))
}
