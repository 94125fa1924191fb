package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/liarsdice/internal/repositories/score Repository

import (
	"context"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

// Repository defines the interface for score record persistence
type Repository interface {
	// ApplyGameResult updates every player's record for a finished game, at most once per game
	ApplyGameResult(ctx context.Context, input *ApplyGameResultInput) (*ApplyGameResultOutput, error)

	// GetScoreRecord retrieves one user's record
	GetScoreRecord(ctx context.Context, input *GetScoreRecordInput) (*models.ScoreRecord, error)

	// GetScoreRecords retrieves every record in creation order
	GetScoreRecords(ctx context.Context, input *GetScoreRecordsInput) (*GetScoreRecordsOutput, error)
}
