package score

import (
	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/models"
	scoreRepo "github.com/KirkDiggler/liarsdice/internal/repositories/score"
	userRepo "github.com/KirkDiggler/liarsdice/internal/repositories/user"
)

// Config holds configuration for the score service
type Config struct {
	// Repository dependencies
	ScoreRepo scoreRepo.Repository
	UserRepo  userRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// RecordGameEndInput contains the game that just finished
type RecordGameEndInput struct {
	Game *models.Game
}

// RecordGameEndOutput reports whether any record changed
type RecordGameEndOutput struct {
	// Recorded is false for single-player games and games already recorded
	Recorded bool
}

// GetRankingsInput contains parameters for listing rankings
type GetRankingsInput struct {
	// Limit caps the number of entries, zero means all
	Limit int
}

// GetRankingsOutput contains ranked score records, best first
type GetRankingsOutput struct {
	Rankings []*models.RankedScore
}

// GetScoreInput identifies the user to look up
type GetScoreInput struct {
	UserID string
}

// GetScoreOutput contains the user's record and rank
type GetScoreOutput struct {
	Record *models.ScoreRecord

	// Rank is the 1-based position in the rankings, zero if unranked
	Rank int
}
