package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/config"
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/handlers/discord"
	"github.com/KirkDiggler/liarsdice/internal/repositories/game"
	"github.com/KirkDiggler/liarsdice/internal/repositories/history"
	"github.com/KirkDiggler/liarsdice/internal/repositories/notification"
	scoreRepo "github.com/KirkDiggler/liarsdice/internal/repositories/score"
	userRepo "github.com/KirkDiggler/liarsdice/internal/repositories/user"
	gameService "github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
	scoreService "github.com/KirkDiggler/liarsdice/internal/services/score"
	userService "github.com/KirkDiggler/liarsdice/internal/services/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	historyRepo, err := history.NewRedis(&history.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create history repository: %v", err)
	}

	scores, err := scoreRepo.NewRedis(&scoreRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create score repository: %v", err)
	}

	notificationRepo, err := notification.NewRedis(&notification.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create notification repository: %v", err)
	}

	systemClock := clock.New()

	// Initialize services
	scoreSvc, err := scoreService.New(&scoreService.Config{
		ScoreRepo: scores,
		UserRepo:  users,
		Clock:     systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create score service: %v", err)
	}

	userSvc, err := userService.New(&userService.Config{
		UserRepo:      users,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:       cfg.MaxPlayers,
		GameRepo:         gameRepo,
		UserRepo:         users,
		HistoryRepo:      historyRepo,
		NotificationRepo: notificationRepo,
		ScoreService:     scoreSvc,
		DiceRoller:       dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:            systemClock,
		UUIDGenerator:    uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	liarsDiceCmd, err := discord.NewLiarsDiceCommand(&discord.CommandConfig{
		GameService:          gameSvc,
		UserService:          userSvc,
		ScoreService:         scoreSvc,
		MessagingService:     messagingSvc,
		DefaultDicePerPlayer: cfg.DefaultDicePerPlayer,
		DefaultDieFaces:      cfg.DefaultDieFaces,
		DefaultWildFace:      cfg.DefaultWildFace,
	})
	if err != nil {
		log.Fatalf("Failed to create liarsdice command: %v", err)
	}

	bot, err := discord.New(session, &discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Commands:      []discord.CommandHandler{liarsDiceCmd},
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Session:          session,
		NotificationRepo: notificationRepo,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Clock:            systemClock,
		ReminderInterval: cfg.ReminderInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	go notifier.Run(ctx)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stop()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
