package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"ratmas/internal/common/clock"
	"ratmas/internal/common/uuid"
	"ratmas/internal/config"
	"ratmas/internal/handlers/discord"
	eventRepo "ratmas/internal/repositories/event"
	pairingRepo "ratmas/internal/repositories/pairing"
	participantRepo "ratmas/internal/repositories/participant"
	eventService "ratmas/internal/services/event"
	"ratmas/internal/services/messaging"
	"ratmas/internal/shuffle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	evRepo, err := eventRepo.NewRedis(&eventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	partRepo, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	pairRepo, err := pairingRepo.NewRedis(&pairingRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create pairing repository: %v", err)
	}

	// Initialize the messaging service
	messagingSvc, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// The Discord session is shared: DMs and role lookups flow through the
	// adapter, interactions through the bot
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	adapter, err := discord.NewSessionAdapter(session)
	if err != nil {
		log.Fatalf("Failed to create session adapter: %v", err)
	}

	// Initialize the event service
	eventSvc, err := eventService.New(&eventService.Config{
		EventRepo:        evRepo,
		ParticipantRepo:  partRepo,
		PairingRepo:      pairRepo,
		Shuffler:         shuffle.New(&shuffle.Config{}),
		Clock:            &clock.DefaultClock{},
		UUIDGenerator:    uuid.New(),
		Messenger:        adapter,
		MemberFetcher:    adapter,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create event service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		EventService:     eventSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
