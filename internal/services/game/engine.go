package game

import (
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

// The transitions below never modify the game they are given. On success they
// return an updated copy; on failure they return the original untouched.

// NextPlayer returns the seat that must bid or challenge next
func NextPlayer(game *models.Game) *models.PlayerSlot {
	return game.Slot(NextBidderSlot(game.ActiveBidderSlot, game.PlayerCount))
}

// applyBid raises the current bid on behalf of callerSlot
func applyBid(game *models.Game, callerSlot int, proposed models.Bid) (*models.Game, error) {
	if game.Status.IsTerminal() {
		return game, ErrGameAlreadyOver
	}

	if callerSlot != NextBidderSlot(game.ActiveBidderSlot, game.PlayerCount) {
		return game, ErrNotYourTurn
	}

	if err := ValidateBid(game.CurrentBid, proposed, game.DieFaces, game.MaxTotal()); err != nil {
		return game, err
	}

	next := game.Clone()
	next.CurrentBid = proposed
	next.Turn++
	next.ActiveBidderSlot = callerSlot

	return next, nil
}

// resolveChallenge ends the game by counting the current bid's face across every pool
func resolveChallenge(game *models.Game, callerSlot int) (*models.Game, *models.Resolution, error) {
	if game.Status.IsTerminal() {
		return game, game.Resolution, ErrGameAlreadyOver
	}

	if game.Turn < 1 {
		return game, nil, ErrNoBidYet
	}

	if callerSlot != NextBidderSlot(game.ActiveBidderSlot, game.PlayerCount) {
		return game, nil, ErrNotYourTurn
	}

	actual := dice.AggregateCount(game.Pools(), game.CurrentBid.Face)

	winner := game.ActiveBidderSlot
	if actual < game.CurrentBid.Total {
		winner = callerSlot
	}

	resolution := &models.Resolution{
		BidFace:        game.CurrentBid.Face,
		BidTotal:       game.CurrentBid.Total,
		ActualTotal:    actual,
		BidderSlot:     game.ActiveBidderSlot,
		ChallengerSlot: callerSlot,
		WinnerSlot:     winner,
	}

	next := game.Clone()
	next.Status = models.GameStatusFinished
	next.WinnerSlot = winner
	next.Resolution = resolution

	return next, resolution, nil
}

// cancel abandons an in-progress game. Terminal games come back unchanged
// with changed set to false.
func cancel(game *models.Game) (next *models.Game, changed bool) {
	if game.Status.IsTerminal() {
		return game, false
	}

	next = game.Clone()
	next.Status = models.GameStatusCancelled
	return next, true
}
