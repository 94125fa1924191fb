package models

import (
	"time"
)

// BidHistoryEntry records one accepted bid
type BidHistoryEntry struct {
	// GameID is the ID of the game the bid was made in
	GameID string

	// Turn is the game's turn counter after the bid was accepted
	Turn int

	// BidderSlot is the slot that made the bid
	BidderSlot int

	// UserID is the ID of the user holding BidderSlot
	UserID string

	// UserName is the display name of the bidder
	UserName string

	// Face is the face that was bid
	Face int

	// Total is the total that was bid
	Total int

	// CreatedAt is when the bid was accepted
	CreatedAt time.Time
}
