package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/liarsdice/internal/repositories/history Repository

import (
	"context"
)

// Repository defines the interface for bid history persistence.
// Entries are append-only: a turn can be written once per game.
type Repository interface {
	// AddEntry appends an accepted bid to a game's history
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// GetEntriesForGame retrieves a game's history ordered by turn
	GetEntriesForGame(ctx context.Context, input *GetEntriesForGameInput) (*GetEntriesForGameOutput, error)
}
