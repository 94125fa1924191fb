package game

import (
	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/lock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
	gameRepo "github.com/KirkDiggler/liarsdice/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/liarsdice/internal/repositories/history"
	notificationRepo "github.com/KirkDiggler/liarsdice/internal/repositories/notification"
	userRepo "github.com/KirkDiggler/liarsdice/internal/repositories/user"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game, zero means no limit
	MaxPlayers int

	// Repository dependencies
	GameRepo         gameRepo.Repository
	UserRepo         userRepo.Repository
	HistoryRepo      historyRepo.Repository
	NotificationRepo notificationRepo.Repository

	// Service dependencies
	ScoreService  score.Service
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Locker serializes mutations per game, a fresh one is used when nil
	Locker *lock.KeyedMutex
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// ChannelID is the chat channel the game is played in, empty for API games
	ChannelID string

	// CreatorID is the user creating the game, defaults to the first player
	CreatorID string

	// PlayerIDs are the seated users in slot order
	PlayerIDs []string

	// DicePerPlayer is how many dice each player rolls
	DicePerPlayer int

	// DieFaces is how many faces each die has
	DieFaces int

	// WildFace is stored with the game; it does not change how bids resolve
	WildFace int
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput identifies a game by ID
type GetGameInput struct {
	GameID string
}

// GetGameByChannelInput identifies a game by channel
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameOutput contains a game snapshot
type GetGameOutput struct {
	Game *models.Game

	// NextPlayer is the seat due to act, nil once the game is over
	NextPlayer *models.PlayerSlot
}

// SubmitBidInput contains parameters for bidding
type SubmitBidInput struct {
	GameID string

	// PlayerID is the user bidding
	PlayerID string

	Face  int
	Total int
}

// SubmitBidOutput contains the result of bidding
type SubmitBidOutput struct {
	Game *models.Game

	// NextPlayer is the seat that must answer the new bid
	NextPlayer *models.PlayerSlot
}

// CallLiarInput contains parameters for challenging the current bid
type CallLiarInput struct {
	GameID string

	// PlayerID is the user challenging
	PlayerID string
}

// CallLiarOutput contains the finished game and how it was resolved
type CallLiarOutput struct {
	Game *models.Game

	Resolution *models.Resolution
}

// CancelGameInput contains parameters for cancelling a game
type CancelGameInput struct {
	GameID string

	// PlayerID is the user cancelling, who must hold a seat
	PlayerID string
}

// CancelGameOutput contains the cancelled game
type CancelGameOutput struct {
	Game *models.Game

	// Cancelled is false when the game was already over
	Cancelled bool
}

// GetDiceInput identifies the caller whose dice to reveal
type GetDiceInput struct {
	GameID string

	PlayerID string
}

// GetDiceOutput contains the caller's dice, zero-count faces omitted
type GetDiceOutput struct {
	Slot int

	Faces []models.FaceCount
}

// GetHistoryInput identifies the game whose bids to list
type GetHistoryInput struct {
	GameID string
}

// GetHistoryOutput contains accepted bids in turn order
type GetHistoryOutput struct {
	Entries []*models.BidHistoryEntry
}

// ListUserGamesInput contains parameters for listing a user's games
type ListUserGamesInput struct {
	PlayerID string

	// ActiveOnly limits the list to games in progress
	ActiveOnly bool
}

// ListUserGamesOutput contains the user's games, oldest first
type ListUserGamesOutput struct {
	Games []*models.Game
}

// GetPendingTurnsInput contains parameters for listing pending turns
type GetPendingTurnsInput struct {
}

// PendingTurn pairs a game in progress with the seat that owes a move
type PendingTurn struct {
	Game *models.Game

	Player *models.PlayerSlot
}

// GetPendingTurnsOutput contains every pending turn
type GetPendingTurnsOutput struct {
	Turns []*PendingTurn
}
