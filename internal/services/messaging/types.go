package messaging

import (
	"github.com/KirkDiggler/liarsdice/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetTurnMessageInput contains parameters for a turn message
type GetTurnMessageInput struct {
	// RecipientName is the player who must act
	RecipientName string

	// BidderName is the player who made the bid
	BidderName string

	BidFace  int
	BidTotal int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetTurnMessageOutput contains a turn message
type GetTurnMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetReminderMessageInput contains parameters for a reminder
type GetReminderMessageInput struct {
	RecipientName string

	// OpeningBid is true when nobody has bid yet and the recipient opens
	OpeningBid bool

	BidFace  int
	BidTotal int
}

// GetReminderMessageOutput contains a reminder message
type GetReminderMessageOutput struct {
	Message string
}

// GetGameStatusMessageInput contains the game to summarize
type GetGameStatusMessageInput struct {
	Game *models.Game
}

// GetGameStatusMessageOutput contains a status line
type GetGameStatusMessageOutput struct {
	Message string
}

// GetResolutionMessageInput contains a finished game and its resolution
type GetResolutionMessageInput struct {
	Game       *models.Game
	Resolution *models.Resolution
}

// GetResolutionMessageOutput contains the reveal
type GetResolutionMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetDiceMessageInput contains a player's dice
type GetDiceMessageInput struct {
	Faces []models.FaceCount
}

// GetDiceMessageOutput contains the dice text
type GetDiceMessageOutput struct {
	Message string
}

// GetHistoryMessageInput contains the bids to list
type GetHistoryMessageInput struct {
	Entries []*models.BidHistoryEntry
}

// GetHistoryMessageOutput contains the history text
type GetHistoryMessageOutput struct {
	Message string
}

// GetRankingsMessageInput contains the rankings to list
type GetRankingsMessageInput struct {
	Rankings []*models.RankedScore
}

// GetRankingsMessageOutput contains the rankings text
type GetRankingsMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the stable code and text for an error
type GetErrorMessageOutput struct {
	// Code is the machine-readable reason, "Internal" for unexpected errors
	Code string

	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the choice of flavor lines, zero seeds from the clock
	Seed int64
}
