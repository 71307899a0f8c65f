package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"killboard/albion"
	"killboard/bot"
	"killboard/config"
	"killboard/database"
	"killboard/events"
	"killboard/items"
	"killboard/metrics"
	"killboard/poller"
	"killboard/repository"
	"killboard/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting killboard bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize upstream API client and item catalog
	albionClient := albion.NewClient()
	catalog := items.NewCatalog()

	// Initialize repositories
	killEventRepo := repository.NewKillEventRepository(db)
	guildMemberRepo := repository.NewGuildMemberRepository(db)
	settingsRepo := repository.NewServerSettingsRepository(db)
	trackerRepo := repository.NewTrackedEntityRepository(db)
	buildRepo := repository.NewBuildRepository(db)

	// Initialize services
	log.Println("Initializing services...")
	settingsService := service.NewSettingsService(settingsRepo, trackerRepo, eventBus)
	trackerService := service.NewTrackerService(trackerRepo, albionClient, eventBus)
	buildService := service.NewBuildService(buildRepo)
	killboardService := service.NewKillboardService(settingsRepo, trackerRepo, killEventRepo)
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{Token: cfg.DiscordToken}, albionClient, catalog, settingsService, trackerService, buildService, killboardService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Initialize metrics endpoint
	metricsManager := metrics.NewManager()
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsManager.Handler())
		go func() {
			log.Printf("Metrics endpoint listening on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && err != http.ErrServerClosed {
				log.Printf("Metrics endpoint error: %v", err)
			}
		}()
	}

	// Start the kill event poller
	pollerConfig := poller.Config{
		GuildID:          cfg.AlbionGuildID,
		Interval:         cfg.PollInterval,
		MemberFetchDelay: cfg.MemberFetchDelay,
		EventFetchLimit:  cfg.EventFetchLimit,
		SeenKeyCap:       cfg.SeenKeyCap,
		StartupDelay:     5 * time.Second,
	}
	notifier := bot.NewKillNotifier(discordBot.Session())
	eventPoller := poller.New(pollerConfig, albionClient, killEventRepo, guildMemberRepo, settingsRepo, notifier, metricsManager)
	go eventPoller.Start(ctx)

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	log.Println("Closing database connection...")
	db.Close()
	log.Println("Shutdown complete")

	return nil
}
