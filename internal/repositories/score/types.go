package score

import (
	"time"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

type ApplyGameResultInput struct {
	// GameID guards against applying the same game twice
	GameID string

	// PlayerIDs are the users who held a seat
	PlayerIDs []string

	// WinnerID is the user who won
	WinnerID string

	// Points is added to the winner's cumulative score
	Points int

	// Timestamp is used for records created by this result
	Timestamp time.Time
}

type ApplyGameResultOutput struct {
	// Applied is false when the game had already been recorded
	Applied bool
}

type GetScoreRecordInput struct {
	UserID string
}

type GetScoreRecordsInput struct {
}

type GetScoreRecordsOutput struct {
	Records []*models.ScoreRecord
}
