package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/liarsdice/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame persists a new game at version 1
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByChannel retrieves the latest game created in a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error)

	// UpdateGame persists a game if its version still matches the stored one
	UpdateGame(ctx context.Context, input *UpdateGameInput) error

	// GetActiveGames retrieves all in-progress games
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)

	// GetGamesForUser retrieves every game a user holds a seat in, oldest first
	GetGamesForUser(ctx context.Context, input *GetGamesForUserInput) (*GetGamesForUserOutput, error)
}
