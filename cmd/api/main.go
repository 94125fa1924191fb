package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/config"
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/handlers/api"
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

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

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

	// API games still queue turn notifications, the bot delivers them
	notificationRepo, err := notification.NewRedis(&notification.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create notification repository: %v", err)
	}

	systemClock := clock.New()

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

	jwtService, err := api.NewJWTService(&api.JWTConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.JWTTTL,
		Clock:  systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create JWT service: %v", err)
	}

	handler, err := api.New(&api.Config{
		GameService:          gameSvc,
		UserService:          userSvc,
		ScoreService:         scoreSvc,
		MessagingService:     messagingSvc,
		JWTService:           jwtService,
		DefaultDicePerPlayer: cfg.DefaultDicePerPlayer,
		DefaultDieFaces:      cfg.DefaultDieFaces,
		DefaultWildFace:      cfg.DefaultWildFace,
	})
	if err != nil {
		log.Fatalf("Failed to create API handler: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler.Register(router)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %d", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}
