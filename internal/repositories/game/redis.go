package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix      = "game:"
	channelKeyPrefix   = "channel:"
	activeGamesKey     = "active_games"
	userGamesKeyPrefix = "user_games:"
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrGameAlreadyExists is returned when creating a game whose ID is taken
	ErrGameAlreadyExists = errors.New("game already exists")

	// ErrVersionConflict is returned when the stored game changed since it was read
	ErrVersionConflict = errors.New("game was modified concurrently")
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateGame persists a new game to Redis
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	game := input.Game.Clone()
	game.Version = 1

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	gameKey := gameKeyPrefix + game.ID

	txf := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, gameKey).Result()
		if err != nil {
			return fmt.Errorf("failed to check game: %w", err)
		}
		if exists > 0 {
			return ErrGameAlreadyExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0) // No expiration for now

			// Point the channel at its newest game
			if game.ChannelID != "" {
				pipe.Set(ctx, channelKeyPrefix+game.ChannelID, game.ID, 0)
			}

			if game.Status.IsInProgress() {
				pipe.SAdd(ctx, activeGamesKey, game.ID)
			}

			// Index the game for each seated user
			for _, slot := range game.Slots {
				pipe.ZAdd(ctx, userGamesKeyPrefix+slot.UserID, redis.Z{
					Score:  float64(game.CreatedAt.UnixNano()),
					Member: game.ID,
				})
			}
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txf, gameKey); err != nil {
		if errors.Is(err, ErrGameAlreadyExists) {
			return err
		}
		if errors.Is(err, redis.TxFailedErr) {
			return ErrGameAlreadyExists
		}
		return fmt.Errorf("failed to create game: %w", err)
	}

	input.Game.Version = game.Version
	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	// Get the game from Redis
	gameKey := gameKeyPrefix + input.GameID
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return unmarshalGame(gameJSON)
}

// GetGameByChannel retrieves a game by channel ID from Redis
func (r *redisRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	// Get the game ID from the channel-to-game mapping
	channelKey := channelKeyPrefix + input.ChannelID
	gameID, err := r.client.Get(ctx, channelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for channel: %w", err)
	}

	// Get the game using the game ID
	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// UpdateGame persists a game with a compare-and-swap on its version
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	next := input.Game.Clone()
	next.Version = input.Game.Version + 1

	gameJSON, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	gameKey := gameKeyPrefix + next.ID

	txf := func(tx *redis.Tx) error {
		storedJSON, err := tx.Get(ctx, gameKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrGameNotFound
			}
			return fmt.Errorf("failed to get game: %w", err)
		}

		stored, err := unmarshalGame(storedJSON)
		if err != nil {
			return err
		}

		if stored.Version != input.Game.Version {
			return ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0)

			// Keep the active games set in step with the status
			if next.Status.IsInProgress() {
				pipe.SAdd(ctx, activeGamesKey, next.ID)
			} else {
				pipe.SRem(ctx, activeGamesKey, next.ID)
			}
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, gameKey)
	switch {
	case err == nil:
	case errors.Is(err, ErrGameNotFound), errors.Is(err, ErrVersionConflict):
		return err
	case errors.Is(err, redis.TxFailedErr):
		return ErrVersionConflict
	default:
		return fmt.Errorf("failed to update game: %w", err)
	}

	input.Game.Version = next.Version
	return nil
}

// GetActiveGames retrieves all active games from Redis
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	// Get all active game IDs from the set
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	games, err := r.getGames(ctx, gameIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

// GetGamesForUser retrieves the games a user is seated in from Redis
func (r *redisRepository) GetGamesForUser(ctx context.Context, input *GetGamesForUserInput) (*GetGamesForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	gameIDs, err := r.client.ZRange(ctx, userGamesKeyPrefix+input.UserID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game IDs for user: %w", err)
	}

	games, err := r.getGames(ctx, gameIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get games for user: %w", err)
	}

	return &GetGamesForUserOutput{
		Games: games,
	}, nil
}

// getGames loads games in the order of gameIDs, skipping IDs that no longer exist
func (r *redisRepository) getGames(ctx context.Context, gameIDs []string) ([]*models.Game, error) {
	// If there are no games, return an empty slice
	if len(gameIDs) == 0 {
		return []*models.Game{}, nil
	}

	// Get all games in one round trip using a pipeline
	pipe := r.client.Pipeline()
	gameCommands := make([]*redis.StringCmd, 0, len(gameIDs))

	for _, gameID := range gameIDs {
		gameCommands = append(gameCommands, pipe.Get(ctx, gameKeyPrefix+gameID))
	}

	// A missing key surfaces as redis.Nil from Exec; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for i, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Game was deleted between getting the IDs and fetching the game
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		game, err := unmarshalGame(gameJSON)
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	return games, nil
}

func unmarshalGame(gameJSON string) (*models.Game, error) {
	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}
	return &game, nil
}
