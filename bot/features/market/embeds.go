package market

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"killboard/albion"
	"killboard/bot/common"
	"killboard/items"

	"github.com/bwmarrin/discordgo"
)

func buildPriceEmbed(itemName string, prices []albion.PriceQuote) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("💰 %s Prices", itemName),
		Color:     common.ColorInfo,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	var quotes []albion.PriceQuote
	for _, p := range prices {
		if p.SellPriceMin > 0 {
			quotes = append(quotes, p)
		}
	}
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].SellPriceMin < quotes[j].SellPriceMin
	})

	if len(quotes) == 0 {
		embed.Description = "No current market orders found"
		return embed
	}
	if len(quotes) > 6 {
		quotes = quotes[:6]
	}

	for _, quote := range quotes {
		value := fmt.Sprintf("Sell: %s\nBuy: %s",
			common.FormatNumber(quote.SellPriceMin), common.FormatNumber(quote.BuyPriceMax))
		if updated, ok := albion.ParseDataTime(quote.SellPriceMinDate); ok {
			value += fmt.Sprintf("\nUpdated: %s", common.FormatDiscordTimestamp(updated, "R"))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   quote.City,
			Value:  value,
			Inline: true,
		})
	}

	return embed
}

func buildSuggestionsEmbed(query string, suggestions []items.Suggestion) *discordgo.MessageEmbed {
	var lines []string
	for n, s := range suggestions {
		lines = append(lines, fmt.Sprintf("%d. **%s** (`%s`)", n+1, s.Name, s.ID))
	}

	return &discordgo.MessageEmbed{
		Title: "🔍 Did you mean?",
		Description: fmt.Sprintf("Multiple items found matching %q:\n\n%s\n\nTry the exact name: `/price %s`",
			query, strings.Join(lines, "\n"), suggestions[0].Name),
		Color: common.ColorInfo,
	}
}

func buildGoldEmbed(quote albion.GoldPrice) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "💰 Live Gold Price",
		Color:     common.ColorGold,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Current Price", Value: fmt.Sprintf("%s silver", common.FormatNumber(quote.Price)), Inline: true},
		},
	}
	if updated, ok := albion.ParseDataTime(quote.Timestamp); ok {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Last Updated",
			Value:  common.FormatDiscordTimestamp(updated, "R"),
			Inline: true,
		})
	}
	return embed
}

func buildPremiumEmbed(prices []albion.PriceQuote) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "💎 Premium Prices",
		Description: "Current premium subscription prices across markets",
		Color:       common.ColorPurple,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if len(prices) == 0 {
		embed.Description = "No premium price data available"
		return embed
	}
	if len(prices) > 6 {
		prices = prices[:6]
	}

	for _, quote := range prices {
		value := "N/A"
		if quote.SellPriceMin > 0 {
			value = fmt.Sprintf("%s silver", common.FormatNumber(quote.SellPriceMin))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   quote.City,
			Value:  value,
			Inline: true,
		})
	}

	return embed
}
