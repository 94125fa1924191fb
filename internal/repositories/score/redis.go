package score

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoreKeyPrefix      = "score:"
	scoredGameKeyPrefix = "scored_game:"
	scoreIndexKey       = "score_index"
	scoreSequenceKey    = "score_seq"

	// Hash fields of a score record
	fieldGamesPlayed     = "games_played"
	fieldWins            = "wins"
	fieldCumulativeScore = "cumulative_score"
	fieldCreatedSeq      = "created_seq"
	fieldCreatedAt       = "created_at"
)

var (
	// ErrScoreNotFound is returned when a user has no score record
	ErrScoreNotFound = errors.New("score record not found")
)

// applyResultScript marks the game scored and updates every record atomically
var applyResultScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('SET', KEYS[1], ARGV[3])

for i = 5, #KEYS do
	local playerID = ARGV[i - 1]
	if not redis.call('ZSCORE', KEYS[2], playerID) then
		local seq = redis.call('INCR', KEYS[3])
		redis.call('HSET', KEYS[i], '` + fieldCreatedSeq + `', seq, '` + fieldCreatedAt + `', ARGV[2])
		redis.call('ZADD', KEYS[2], 'NX', seq, playerID)
	end
	redis.call('HINCRBY', KEYS[i], '` + fieldGamesPlayed + `', 1)
end

redis.call('HINCRBY', KEYS[4], '` + fieldWins + `', 1)
redis.call('HINCRBY', KEYS[4], '` + fieldCumulativeScore + `', ARGV[1])
return 1
`)

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
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

// ApplyGameResult increments counters for a finished game inside one transaction
func (r *redisRepository) ApplyGameResult(ctx context.Context, input *ApplyGameResultInput) (*ApplyGameResultOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	if input.WinnerID == "" {
		return nil, errors.New("winner ID cannot be empty")
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	// KEYS: marker, index, sequence, winner record, player records
	// ARGV: points, timestamp, winner ID, player IDs aligned with the player records
	keys := []string{
		scoredGameKeyPrefix + input.GameID,
		scoreIndexKey,
		scoreSequenceKey,
		scoreKeyPrefix + input.WinnerID,
	}
	args := []interface{}{input.Points, timestamp.UnixNano(), input.WinnerID}
	for _, playerID := range input.PlayerIDs {
		keys = append(keys, scoreKeyPrefix+playerID)
		args = append(args, playerID)
	}

	applied, err := applyResultScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to apply game result: %w", err)
	}

	return &ApplyGameResultOutput{
		Applied: applied == 1,
	}, nil
}

// GetScoreRecord retrieves a user's score record from Redis
func (r *redisRepository) GetScoreRecord(ctx context.Context, input *GetScoreRecordInput) (*models.ScoreRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, scoreKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score record: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrScoreNotFound
	}

	return parseRecord(input.UserID, fields)
}

// GetScoreRecords retrieves all score records ordered by creation
func (r *redisRepository) GetScoreRecords(ctx context.Context, input *GetScoreRecordsInput) (*GetScoreRecordsOutput, error) {
	userIDs, err := r.client.ZRange(ctx, scoreIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score index: %w", err)
	}

	if len(userIDs) == 0 {
		return &GetScoreRecordsOutput{
			Records: []*models.ScoreRecord{},
		}, nil
	}

	pipe := r.client.Pipeline()
	recordCommands := make([]*redis.MapStringStringCmd, 0, len(userIDs))

	for _, userID := range userIDs {
		recordCommands = append(recordCommands, pipe.HGetAll(ctx, scoreKeyPrefix+userID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	records := make([]*models.ScoreRecord, 0, len(userIDs))
	for i, cmd := range recordCommands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get score record %s: %w", userIDs[i], err)
		}

		if len(fields) == 0 {
			// Record removed after the index was read
			continue
		}

		record, err := parseRecord(userIDs[i], fields)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return &GetScoreRecordsOutput{
		Records: records,
	}, nil
}

func parseRecord(userID string, fields map[string]string) (*models.ScoreRecord, error) {
	record := &models.ScoreRecord{
		UserID: userID,
	}

	ints := map[string]*int{
		fieldGamesPlayed:     &record.GamesPlayed,
		fieldWins:            &record.Wins,
		fieldCumulativeScore: &record.CumulativeScore,
	}
	for field, dst := range ints {
		value, ok := fields[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for %s: %w", field, userID, err)
		}
		*dst = n
	}

	if value, ok := fields[fieldCreatedSeq]; ok {
		seq, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for %s: %w", fieldCreatedSeq, userID, err)
		}
		record.CreatedSeq = seq
	}

	if value, ok := fields[fieldCreatedAt]; ok {
		nanos, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for %s: %w", fieldCreatedAt, userID, err)
		}
		record.CreatedAt = time.Unix(0, nanos).UTC()
	}

	return record, nil
}
