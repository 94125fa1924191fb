package game

// NextBidderSlot returns the slot due to act after activeBidderSlot.
// Slots are 1-based and wrap from playerCount back to 1; an activeBidderSlot
// of 0 means nobody has bid yet, so slot 1 opens.
func NextBidderSlot(activeBidderSlot, playerCount int) int {
	if playerCount < 1 {
		return 1
	}
	return activeBidderSlot%playerCount + 1
}
