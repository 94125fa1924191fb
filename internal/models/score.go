package models

import (
	"time"
)

// ScoreRecord holds a user's results across all games
type ScoreRecord struct {
	// UserID is the user the record belongs to
	UserID string

	// GamesPlayed counts finished multi-player games the user had a seat in
	GamesPlayed int

	// Wins counts games the user won
	Wins int

	// CumulativeScore sums the turn counts of the games the user won
	CumulativeScore int

	// CreatedSeq orders records by creation, used to break ranking ties
	CreatedSeq int64

	// CreatedAt is when the record was first written
	CreatedAt time.Time
}

// RankedScore is a score record with its 1-based position in the rankings
type RankedScore struct {
	Rank     int
	UserName string
	Record   *ScoreRecord
}
