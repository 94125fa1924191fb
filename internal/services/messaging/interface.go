package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/liarsdice/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetTurnMessage returns the message telling a player a bid awaits their answer
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetReminderMessage returns the nudge sent to a player who has not moved yet
	GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error)

	// GetGameStatusMessage returns a one-line summary of a game
	GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error)

	// GetResolutionMessage returns the reveal after a liar call
	GetResolutionMessage(ctx context.Context, input *GetResolutionMessageInput) (*GetResolutionMessageOutput, error)

	// GetDiceMessage returns a player's dice as text
	GetDiceMessage(ctx context.Context, input *GetDiceMessageInput) (*GetDiceMessageOutput, error)

	// GetHistoryMessage returns a game's bids as text
	GetHistoryMessage(ctx context.Context, input *GetHistoryMessageInput) (*GetHistoryMessageOutput, error)

	// GetRankingsMessage returns the rankings table as text
	GetRankingsMessage(ctx context.Context, input *GetRankingsMessageInput) (*GetRankingsMessageOutput, error)

	// GetErrorMessage returns the stable user-facing text for an error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
