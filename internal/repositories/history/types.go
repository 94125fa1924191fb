package history

import "github.com/KirkDiggler/liarsdice/internal/models"

type AddEntryInput struct {
	Entry *models.BidHistoryEntry
}

type GetEntriesForGameInput struct {
	GameID string
}

type GetEntriesForGameOutput struct {
	Entries []*models.BidHistoryEntry
}
