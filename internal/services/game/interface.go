package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/liarsdice/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame seats the players, rolls their dice and opens bidding
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns a snapshot of a game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByChannel returns the latest game played in a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameOutput, error)

	// SubmitBid raises the current bid on behalf of the player whose turn it is
	SubmitBid(ctx context.Context, input *SubmitBidInput) (*SubmitBidOutput, error)

	// CallLiar challenges the current bid and ends the game
	CallLiar(ctx context.Context, input *CallLiarInput) (*CallLiarOutput, error)

	// CancelGame abandons a game in progress
	CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error)

	// GetDice returns the caller's own dice
	GetDice(ctx context.Context, input *GetDiceInput) (*GetDiceOutput, error)

	// GetHistory returns the accepted bids of a game in turn order
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ListUserGames returns the games a user holds a seat in
	ListUserGames(ctx context.Context, input *ListUserGamesInput) (*ListUserGamesOutput, error)

	// GetPendingTurns returns who must act next in every game in progress
	GetPendingTurns(ctx context.Context, input *GetPendingTurnsInput) (*GetPendingTurnsOutput, error)
}
