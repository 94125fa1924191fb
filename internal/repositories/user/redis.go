package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix     = "user:"
	userNameKeyPrefix = "user_name:"
)

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrNameTaken is returned when another user already holds the name
	ErrNameTaken = errors.New("user name already taken")
)

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
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

// CreateUser reserves the user's name and persists the user
func (r *redisRepository) CreateUser(ctx context.Context, input *CreateUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	user := input.User
	if user.ID == "" || user.Name == "" {
		return errors.New("user ID and name cannot be empty")
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// Reserve the name first so two creations cannot share it
	reserved, err := r.client.SetNX(ctx, nameKey(user.Name), user.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve user name: %w", err)
	}
	if !reserved {
		return ErrNameTaken
	}

	if err := r.client.Set(ctx, userKeyPrefix+user.ID, userJSON, 0).Err(); err != nil {
		// Release the reservation so the name can be retried
		r.client.Del(ctx, nameKey(user.Name))
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// SaveUser persists a user to Redis
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	user := input.User

	// Ensure the user has an ID
	if user.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	// Marshal the user to JSON
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	pipe := r.client.Pipeline()

	// Save the user
	pipe.Set(ctx, userKeyPrefix+user.ID, userJSON, 0) // No expiration for now

	// Claim the name only if nobody holds it yet
	if user.Name != "" {
		pipe.SetNX(ctx, nameKey(user.Name), user.ID, 0)
	}

	// Execute the pipeline
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	// Get the user from Redis
	userJSON, err := r.client.Get(ctx, userKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return unmarshalUser(userJSON)
}

// GetUserByName retrieves a user through the name index
func (r *redisRepository) GetUserByName(ctx context.Context, input *GetUserByNameInput) (*models.User, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and name cannot be empty")
	}

	userID, err := r.client.Get(ctx, nameKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user ID for name: %w", err)
	}

	return r.GetUser(ctx, &GetUserInput{
		UserID: userID,
	})
}

// GetUsers retrieves users by ID from Redis
func (r *redisRepository) GetUsers(ctx context.Context, input *GetUsersInput) (*GetUsersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &GetUsersOutput{
		Users: make([]*models.User, 0, len(input.UserIDs)),
	}

	// If there are no users, return an empty slice
	if len(input.UserIDs) == 0 {
		return output, nil
	}

	// Get all user records in one round trip using a pipeline
	pipe := r.client.Pipeline()
	userCommands := make([]*redis.StringCmd, 0, len(input.UserIDs))

	for _, userID := range input.UserIDs {
		userCommands = append(userCommands, pipe.Get(ctx, userKeyPrefix+userID))
	}

	// Execute the pipeline
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	// Process the results
	for i, cmd := range userCommands {
		userJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				output.Missing = append(output.Missing, input.UserIDs[i])
				continue
			}
			return nil, fmt.Errorf("failed to get user %s: %w", input.UserIDs[i], err)
		}

		user, err := unmarshalUser(userJSON)
		if err != nil {
			return nil, err
		}

		output.Users = append(output.Users, user)
	}

	return output, nil
}

func nameKey(name string) string {
	return userNameKeyPrefix + strings.ToLower(strings.TrimSpace(name))
}

func unmarshalUser(userJSON string) (*models.User, error) {
	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}
