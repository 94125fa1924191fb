package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/redis/go-redis/v9"
)

// queueKey is the Redis list holding pending notifications
const queueKey = "notifications"

// Config holds configuration for the Redis notification repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using a Redis list
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed notification queue
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

// Enqueue pushes a notification onto the queue
func (r *redisRepository) Enqueue(ctx context.Context, input *EnqueueInput) error {
	if input == nil || input.Notification == nil {
		return errors.New("input and notification cannot be nil")
	}

	if input.Notification.RecipientID == "" {
		return errors.New("notification recipient cannot be empty")
	}

	notificationJSON, err := json.Marshal(input.Notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := r.client.LPush(ctx, queueKey, notificationJSON).Err(); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	return nil
}

// Dequeue pops the oldest notification from the queue
func (r *redisRepository) Dequeue(ctx context.Context, input *DequeueInput) (*DequeueOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var notificationJSON string
	if input.Timeout <= 0 {
		value, err := r.client.RPop(ctx, queueKey).Result()
		if err != nil {
			if err == redis.Nil {
				return &DequeueOutput{}, nil
			}
			return nil, fmt.Errorf("failed to dequeue notification: %w", err)
		}
		notificationJSON = value
	} else {
		// BRPop replies with the list name followed by the value
		values, err := r.client.BRPop(ctx, input.Timeout, queueKey).Result()
		if err != nil {
			if err == redis.Nil {
				return &DequeueOutput{}, nil
			}
			return nil, fmt.Errorf("failed to dequeue notification: %w", err)
		}
		if len(values) != 2 {
			return nil, fmt.Errorf("unexpected dequeue reply of %d values", len(values))
		}
		notificationJSON = values[1]
	}

	var notification models.TurnNotification
	if err := json.Unmarshal([]byte(notificationJSON), &notification); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	return &DequeueOutput{
		Notification: &notification,
	}, nil
}

// Len returns the queue length
func (r *redisRepository) Len(ctx context.Context) (int64, error) {
	n, err := r.client.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return n, nil
}
