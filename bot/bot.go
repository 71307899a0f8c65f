package bot

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"killboard/albion"
	"killboard/bot/features/builds"
	"killboard/bot/features/killboard"
	"killboard/bot/features/lookup"
	"killboard/bot/features/market"
	"killboard/bot/features/misc"
	"killboard/bot/features/settings"
	"killboard/events"
	"killboard/items"
	"killboard/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token string
}

type Bot struct {
	config          Config
	session         *discordgo.Session
	settingsService service.SettingsService
	eventBus        *events.Bus

	market    *market.Feature
	lookup    *lookup.Feature
	builds    *builds.Feature
	killboard *killboard.Feature
	settings  *settings.Feature
	misc      *misc.Feature
}

func New(config Config, client *albion.Client, catalog *items.Catalog, settingsService service.SettingsService, trackerService service.TrackerService, buildService service.BuildService, killboardService service.KillboardService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:          config,
		session:         dg,
		settingsService: settingsService,
		eventBus:        eventBus,
		market:          market.NewFeature(client, catalog),
		lookup:          lookup.NewFeature(client),
		builds:          builds.NewFeature(buildService, settingsService),
		killboard:       killboard.NewFeature(killboardService, trackerService, settingsService),
		settings:        settings.NewFeature(settingsService),
		misc:            misc.NewFeature(),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	bot.subscribeToEvents()

	log.Infof("Bot connected as %s", dg.State.User.Username)
	return bot, nil
}

// Session exposes the underlying Discord session for the notifier
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "price":
		b.market.HandlePrice(s, i)
	case "gold":
		b.market.HandleGold(s, i)
	case "premium":
		b.market.HandlePremium(s, i)
	case "image":
		b.market.HandleImage(s, i)
	case "player":
		b.lookup.HandlePlayer(s, i)
	case "guild":
		b.lookup.HandleGuild(s, i)
	case "build":
		b.builds.HandleBuild(s, i)
	case "new-build":
		b.builds.HandleNewBuild(s, i)
	case "remove-build":
		b.builds.HandleRemoveBuild(s, i)
	case "randomator":
		b.builds.HandleRandomator(s, i)
	case "killboard":
		b.killboard.HandleCommand(s, i)
	case "set-language":
		b.settings.HandleSetLanguage(s, i)
	case "set-builder-role":
		b.settings.HandleSetBuilderRole(s, i)
	case "server-status":
		b.settings.HandleServerStatus(s, i)
	case "avatar":
		b.misc.HandleAvatar(s, i)
	case "user":
		b.misc.HandleUser(s, i)
	case "server":
		b.misc.HandleServer(s, i)
	case "bot-info":
		b.misc.HandleBotInfo(s, i)
	case "8ball":
		b.misc.Handle8Ball(s, i)
	case "random-color":
		b.misc.HandleRandomColor(s, i)
	case "utc":
		b.misc.HandleUTC(s, i)
	}
}
