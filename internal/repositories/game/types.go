package game

import "github.com/KirkDiggler/liarsdice/internal/models"

type CreateGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameByChannelInput struct {
	ChannelID string
}

// UpdateGameInput carries the game as it was read plus the caller's changes.
// Game.Version must be the version that was read; it is bumped on success.
type UpdateGameInput struct {
	Game *models.Game
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}

type GetGamesForUserInput struct {
	UserID string
}

type GetGamesForUserOutput struct {
	Games []*models.Game
}
