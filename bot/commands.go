package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	one := 1.0
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "price",
			Description: "Search for any item price",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item name",
					Required:    true,
				},
			},
		},
		{
			Name:        "gold",
			Description: "Get live price of Gold",
		},
		{
			Name:        "premium",
			Description: "Get live price of in-game premium",
		},
		{
			Name:        "image",
			Description: "Provides high quality image of any item",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "quality",
					Description: "Quality (1-5)",
					MinValue:    &one,
					MaxValue:    5,
				},
			},
		},
		{
			Name:        "player",
			Description: "Find any player statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "player",
					Description: "Player name",
					Required:    true,
				},
			},
		},
		{
			Name:        "guild",
			Description: "Find any guild information",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guild",
					Description: "Guild name",
					Required:    true,
				},
			},
		},
		{
			Name:        "build",
			Description: "Choose a build to display",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Build name",
					Required:    true,
				},
			},
		},
		{
			Name:        "new-build",
			Description: "Creates a new Albion build",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Build name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "weapon",
					Description: "Weapon",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "helmet",
					Description: "Helmet",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "armor",
					Description: "Armor",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "shoes",
					Description: "Shoes",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Build description",
				},
			},
		},
		{
			Name:        "remove-build",
			Description: "Removes an Albion build",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Build name",
					Required:    true,
				},
			},
		},
		{
			Name:        "randomator",
			Description: "Get a random build with spells",
		},
		{
			Name:        "killboard",
			Description: "Killboard management",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "info",
					Description: "Display killboard information",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set-channel",
					Description: "Set channel for kills/deaths feed",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel for killboard",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "track",
					Description: "Track players or guilds",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "Type to track",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Player", Value: "player"},
								{Name: "Guild", Value: "guild"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Player or guild name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "untrack",
					Description: "Remove specific trackers",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Player or guild name to untrack",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Reset killboard in this server",
				},
			},
		},
		{
			Name:        "set-language",
			Description: "Set bot language for your server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "language",
					Description: "Language code",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "English", Value: "en"},
						{Name: "Deutsch", Value: "de"},
						{Name: "Français", Value: "fr"},
						{Name: "Español", Value: "es"},
						{Name: "Русский", Value: "ru"},
					},
				},
			},
		},
		{
			Name:        "set-builder-role",
			Description: "Set role to manage builds",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Role for build management",
					Required:    true,
				},
			},
		},
		{
			Name:        "server-status",
			Description: "Live Albion Online servers status feed",
		},
		{
			Name:        "avatar",
			Description: "Shows user profile picture",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to show avatar for",
				},
			},
		},
		{
			Name:        "user",
			Description: "Shows information about a specific user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to show info for",
				},
			},
		},
		{
			Name:        "server",
			Description: "Shows information about this server",
		},
		{
			Name:        "bot-info",
			Description: "Shows bot information",
		},
		{
			Name:        "8ball",
			Description: "Answer questions with random yes/no",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "Your question",
					Required:    true,
				},
			},
		},
		{
			Name:        "random-color",
			Description: "Generates a random HEX color",
		},
		{
			Name:        "utc",
			Description: "Get the current Albion Online time",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}

	return nil
}
