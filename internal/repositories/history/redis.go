package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	bidKeyPrefix      = "bid:"
	gameBidsKeyPrefix = "game_bids:"
)

// ErrEntryExists is returned when a turn already has a history entry
var ErrEntryExists = errors.New("history entry already exists for turn")

// Config holds configuration for the Redis bid history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed bid history repository
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

// AddEntry stores the entry and indexes it under its game by turn
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.GameID == "" {
		return errors.New("entry game ID cannot be empty")
	}

	if entry.Turn < 1 {
		return fmt.Errorf("entry turn must be positive, got %d", entry.Turn)
	}

	// Marshal the entry to JSON
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	// Entries are immutable once written
	stored, err := r.client.SetNX(ctx, bidKey(entry.GameID, entry.Turn), entryJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to store history entry: %w", err)
	}
	if !stored {
		return ErrEntryExists
	}

	// Add to the game's sorted set, scored by turn
	err = r.client.ZAdd(ctx, gameBidsKeyPrefix+entry.GameID, redis.Z{
		Score:  float64(entry.Turn),
		Member: strconv.Itoa(entry.Turn),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to index history entry: %w", err)
	}

	return nil
}

// GetEntriesForGame retrieves all history entries of a game
func (r *redisRepository) GetEntriesForGame(ctx context.Context, input *GetEntriesForGameInput) (*GetEntriesForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	// Get turn numbers ascending
	turns, err := r.client.ZRange(ctx, gameBidsKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history for game: %w", err)
	}

	if len(turns) == 0 {
		return &GetEntriesForGameOutput{
			Entries: []*models.BidHistoryEntry{},
		}, nil
	}

	// Get all entries using a pipeline
	pipe := r.client.Pipeline()
	entryCommands := make([]*redis.StringCmd, 0, len(turns))

	for _, turn := range turns {
		entryCommands = append(entryCommands, pipe.Get(ctx, bidKeyPrefix+input.GameID+":"+turn))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get history entries: %w", err)
	}

	entries := make([]*models.BidHistoryEntry, 0, len(turns))
	for i, cmd := range entryCommands {
		entryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get history entry for turn %s: %w", turns[i], err)
		}

		var entry models.BidHistoryEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}

		entries = append(entries, &entry)
	}

	return &GetEntriesForGameOutput{
		Entries: entries,
	}, nil
}

func bidKey(gameID string, turn int) string {
	return fmt.Sprintf("%s%s:%d", bidKeyPrefix, gameID, turn)
}
