package score

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/liarsdice/internal/services/score Service

import "context"

// Service maintains per-user results across games
type Service interface {
	// RecordGameEnd credits every player of a finished game, once per game
	RecordGameEnd(ctx context.Context, input *RecordGameEndInput) (*RecordGameEndOutput, error)

	// GetRankings returns score records ordered by cumulative score
	GetRankings(ctx context.Context, input *GetRankingsInput) (*GetRankingsOutput, error)

	// GetScore returns one user's record, zeroed if the user has none yet
	GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error)
}
