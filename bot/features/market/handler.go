package market

import (
	"context"
	"fmt"

	"killboard/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandlePrice handles the /price command
func (f *Feature) HandlePrice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	query := i.ApplicationCommandData().Options[0].StringValue()
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer price response: %v", err)
		return
	}
	ctx := context.Background()

	itemID := f.catalog.FindItemID(query)
	if itemID == "" {
		suggestions := f.catalog.Suggestions(query)
		if len(suggestions) == 0 {
			common.EditWithMessage(s, i, fmt.Sprintf("No items found matching %q. Try common items like `chestnut planks` or raw identifiers like `T4_SWORD`.", query))
			return
		}
		common.EditWithEmbed(s, i, buildSuggestionsEmbed(query, suggestions))
		return
	}

	prices, err := f.client.ItemPrices(ctx, itemID, nil)
	if err != nil {
		log.Errorf("Failed to fetch prices for %s: %v", itemID, err)
		common.EditWithMessage(s, i, "Error fetching price data")
		return
	}

	common.EditWithEmbed(s, i, buildPriceEmbed(query, prices))
}

// HandleGold handles the /gold command
func (f *Feature) HandleGold(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer gold response: %v", err)
		return
	}

	quotes, err := f.client.GoldPrices(context.Background(), 1)
	if err != nil || len(quotes) == 0 {
		if err != nil {
			log.Errorf("Failed to fetch gold price: %v", err)
		}
		common.EditWithMessage(s, i, "No gold price data available")
		return
	}

	common.EditWithEmbed(s, i, buildGoldEmbed(quotes[len(quotes)-1]))
}

// HandlePremium handles the /premium command
func (f *Feature) HandlePremium(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer premium response: %v", err)
		return
	}

	prices, err := f.client.ItemPrices(context.Background(), "PREMIUM", nil)
	if err != nil {
		log.Errorf("Failed to fetch premium prices: %v", err)
		common.EditWithMessage(s, i, "Error fetching premium prices")
		return
	}

	common.EditWithEmbed(s, i, buildPremiumEmbed(prices))
}

// HandleImage handles the /image command
func (f *Feature) HandleImage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	query := options[0].StringValue()
	quality := 1
	if len(options) > 1 {
		quality = int(options[1].IntValue())
	}

	itemID := f.catalog.FindItemID(query)
	if itemID == "" {
		common.RespondWithError(s, i, fmt.Sprintf("Item %q not found. Try exact names like \"chestnut planks\" or identifiers like \"T4_SWORD\".", query))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🖼️ %s", query),
		Description: fmt.Sprintf("Quality: %d | Item ID: %s", quality, itemID),
		Color:       common.ColorInfo,
		Image: &discordgo.MessageEmbedImage{
			URL: f.client.ItemImageURL(itemID, quality),
		},
	}
	if err := common.RespondWithEmbed(s, i, embed, false); err != nil {
		log.Errorf("Failed to send item image: %v", err)
	}
}
