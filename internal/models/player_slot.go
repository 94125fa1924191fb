package models

// PlayerSlot is a user's seat in one game
type PlayerSlot struct {
	// Slot is the 1-based seat number, assigned once at creation
	Slot int

	// UserID is the ID of the user holding the seat
	UserID string

	// UserName is the display name of the user at creation time
	UserName string

	// Pool is the player's private dice
	Pool *DicePool
}
