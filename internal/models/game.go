package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusInProgress indicates bids are still being raised
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusCancelled indicates the game was abandoned before a challenge
	GameStatusCancelled GameStatus = "cancelled"

	// GameStatusFinished indicates a liar call resolved the game
	GameStatusFinished GameStatus = "finished"
)

// IsInProgress returns true if the game still accepts bids and challenges
func (s GameStatus) IsInProgress() bool {
	return s == GameStatusInProgress
}

// IsCancelled returns true if the game was cancelled
func (s GameStatus) IsCancelled() bool {
	return s == GameStatusCancelled
}

// IsFinished returns true if the game was resolved by a liar call
func (s GameStatus) IsFinished() bool {
	return s == GameStatusFinished
}

// IsTerminal returns true for statuses no operation can leave
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusCancelled || s == GameStatusFinished
}

// Bid is a public claim that at least Total dice across all pools show Face
type Bid struct {
	Face  int
	Total int
}

// InitialBid is the sentinel bid of a game nobody has bid in yet
func InitialBid() Bid {
	return Bid{Face: 1, Total: 0}
}

// Resolution summarizes how a liar call ended a game
type Resolution struct {
	// BidFace is the face of the challenged bid
	BidFace int

	// BidTotal is the total of the challenged bid
	BidTotal int

	// ActualTotal is the number of dice showing BidFace across every pool
	ActualTotal int

	// BidderSlot is the slot that made the challenged bid
	BidderSlot int

	// ChallengerSlot is the slot that called liar
	ChallengerSlot int

	// WinnerSlot is either BidderSlot or ChallengerSlot
	WinnerSlot int
}

// ChallengerWon returns true if the challenged bid was a lie
func (r *Resolution) ChallengerWon() bool {
	return r.ActualTotal < r.BidTotal
}

// Game represents a single Liar's Dice game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// ChannelID is the chat channel the game is played in, if any
	ChannelID string

	// CreatorID is the user who created the game
	CreatorID string

	// Status is the current state of the game
	Status GameStatus

	// PlayerCount is the number of seats in the game
	PlayerCount int

	// DieFaces is the number of faces on every die
	DieFaces int

	// DicePerPlayer is the size of every player's pool
	DicePerPlayer int

	// WildFace is accepted at creation and stored, but has no effect on resolution
	WildFace int

	// Turn counts accepted bids
	Turn int

	// ActiveBidderSlot is the slot that made the current bid, 0 before any bid
	ActiveBidderSlot int

	// CurrentBid is the bid any next bid has to beat
	CurrentBid Bid

	// WinnerSlot is set when the game is finished
	WinnerSlot int

	// Resolution is set when the game is finished
	Resolution *Resolution

	// Slots holds one entry per seat, ordered by slot number
	Slots []*PlayerSlot

	// Version is bumped on every persisted update
	Version int64

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// MaxTotal is the highest total any bid can claim
func (g *Game) MaxTotal() int {
	return g.PlayerCount * g.DicePerPlayer
}

// MaxBid is the bid beyond which no raise is legal
func (g *Game) MaxBid() Bid {
	return Bid{Face: g.DieFaces, Total: g.MaxTotal()}
}

// Slot returns the player seated at slot, or nil
func (g *Game) Slot(slot int) *PlayerSlot {
	for _, s := range g.Slots {
		if s.Slot == slot {
			return s
		}
	}
	return nil
}

// SlotForUser returns the seat held by userID, or nil
func (g *Game) SlotForUser(userID string) *PlayerSlot {
	for _, s := range g.Slots {
		if s.UserID == userID {
			return s
		}
	}
	return nil
}

// Pools returns every player's dice pool in slot order
func (g *Game) Pools() []*DicePool {
	pools := make([]*DicePool, 0, len(g.Slots))
	for _, s := range g.Slots {
		pools = append(pools, s.Pool)
	}
	return pools
}

// Winner returns the winning seat of a finished game, or nil
func (g *Game) Winner() *PlayerSlot {
	if !g.Status.IsFinished() {
		return nil
	}
	return g.Slot(g.WinnerSlot)
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}

	clone := *g
	if g.Resolution != nil {
		resolution := *g.Resolution
		clone.Resolution = &resolution
	}

	clone.Slots = make([]*PlayerSlot, 0, len(g.Slots))
	for _, s := range g.Slots {
		slot := *s
		slot.Pool = s.Pool.Clone()
		clone.Slots = append(clone.Slots, &slot)
	}

	return &clone
}
