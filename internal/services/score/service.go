package score

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/models"
	scoreRepo "github.com/KirkDiggler/liarsdice/internal/repositories/score"
	userRepo "github.com/KirkDiggler/liarsdice/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	scoreRepo scoreRepo.Repository
	userRepo  userRepo.Repository
	clock     clock.Clock
}

// New creates a new score service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		scoreRepo: cfg.ScoreRepo,
		userRepo:  cfg.UserRepo,
		clock:     cfg.Clock,
	}, nil
}

// RecordGameEnd applies a finished game's result to the players' records
func (s *service) RecordGameEnd(ctx context.Context, input *RecordGameEndInput) (*RecordGameEndOutput, error) {
	if input == nil || input.Game == nil {
		return nil, ErrNilGame
	}

	game := input.Game

	// Self-play never touches shared rankings
	if game.PlayerCount <= 1 {
		return &RecordGameEndOutput{Recorded: false}, nil
	}

	if !game.Status.IsFinished() {
		return nil, ErrGameNotFinished
	}

	winner := game.Winner()
	if winner == nil {
		return nil, ErrNoWinner
	}

	playerIDs := make([]string, 0, len(game.Slots))
	for _, slot := range game.Slots {
		playerIDs = append(playerIDs, slot.UserID)
	}

	output, err := s.scoreRepo.ApplyGameResult(ctx, &scoreRepo.ApplyGameResultInput{
		GameID:    game.ID,
		PlayerIDs: playerIDs,
		WinnerID:  winner.UserID,
		Points:    game.Turn,
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply game result: %w", err)
	}

	return &RecordGameEndOutput{
		Recorded: output.Applied,
	}, nil
}

// GetRankings sorts every record by cumulative score, ties keeping creation order
func (s *service) GetRankings(ctx context.Context, input *GetRankingsInput) (*GetRankingsOutput, error) {
	if input == nil {
		input = &GetRankingsInput{}
	}

	ranked, err := s.rank(ctx)
	if err != nil {
		return nil, err
	}

	if input.Limit > 0 && len(ranked) > input.Limit {
		ranked = ranked[:input.Limit]
	}

	// Resolve display names in one batch
	userIDs := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		userIDs = append(userIDs, entry.Record.UserID)
	}

	users, err := s.userRepo.GetUsers(ctx, &userRepo.GetUsersInput{
		UserIDs: userIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get users for rankings: %w", err)
	}

	names := make(map[string]string, len(users.Users))
	for _, user := range users.Users {
		names[user.ID] = user.Name
	}

	for _, entry := range ranked {
		entry.UserName = names[entry.Record.UserID]
		if entry.UserName == "" {
			entry.UserName = entry.Record.UserID
		}
	}

	return &GetRankingsOutput{
		Rankings: ranked,
	}, nil
}

// GetScore returns a user's record with its rank
func (s *service) GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	ranked, err := s.rank(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range ranked {
		if entry.Record.UserID == input.UserID {
			return &GetScoreOutput{
				Record: entry.Record,
				Rank:   entry.Rank,
			}, nil
		}
	}

	return &GetScoreOutput{
		Record: &models.ScoreRecord{UserID: input.UserID},
	}, nil
}

func (s *service) rank(ctx context.Context) ([]*models.RankedScore, error) {
	output, err := s.scoreRepo.GetScoreRecords(ctx, &scoreRepo.GetScoreRecordsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	return Rank(output.Records), nil
}

// Rank orders records by CumulativeScore descending and assigns 1-based ranks.
// Ties keep creation order.
func Rank(records []*models.ScoreRecord) []*models.RankedScore {
	sorted := make([]*models.ScoreRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CumulativeScore != sorted[j].CumulativeScore {
			return sorted[i].CumulativeScore > sorted[j].CumulativeScore
		}
		return sorted[i].CreatedSeq < sorted[j].CreatedSeq
	})

	ranked := make([]*models.RankedScore, 0, len(sorted))
	for i, record := range sorted {
		ranked = append(ranked, &models.RankedScore{
			Rank:   i + 1,
			Record: record,
		})
	}
	return ranked
}
