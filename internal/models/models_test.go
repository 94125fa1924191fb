package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDicePool_FacesOmitsZeroCountsInOrder(t *testing.T) {
	pool := &DicePool{Counts: map[int]int{6: 2, 1: 1, 3: 0, 4: 2}}

	assert.Equal(t, []FaceCount{{Face: 1, Count: 1}, {Face: 4, Count: 2}, {Face: 6, Count: 2}}, pool.Faces())
	assert.Equal(t, 5, pool.Size())
	assert.Equal(t, 0, pool.Count(3))
	assert.Equal(t, 0, pool.Count(5))
}

func TestDicePool_NilIsEmpty(t *testing.T) {
	var pool *DicePool

	assert.Equal(t, 0, pool.Size())
	assert.Equal(t, 0, pool.Count(1))
	assert.Empty(t, pool.Faces())
	assert.Nil(t, pool.Clone())
}

func TestGame_Lookups(t *testing.T) {
	game := &Game{
		Status:        GameStatusFinished,
		PlayerCount:   2,
		DieFaces:      6,
		DicePerPlayer: 5,
		WinnerSlot:    2,
		Slots: []*PlayerSlot{
			{Slot: 1, UserID: "alice", Pool: &DicePool{Counts: map[int]int{1: 5}}},
			{Slot: 2, UserID: "bob", Pool: &DicePool{Counts: map[int]int{2: 5}}},
		},
	}

	assert.Equal(t, 10, game.MaxTotal())
	assert.Equal(t, Bid{Face: 6, Total: 10}, game.MaxBid())
	assert.Equal(t, "bob", game.Slot(2).UserID)
	assert.Nil(t, game.Slot(3))
	assert.Equal(t, 1, game.SlotForUser("alice").Slot)
	assert.Nil(t, game.SlotForUser("carol"))
	assert.Len(t, game.Pools(), 2)
	require.NotNil(t, game.Winner())
	assert.Equal(t, "bob", game.Winner().UserID)
}

func TestGame_CloneIsDeep(t *testing.T) {
	game := &Game{
		ID:         "game-1",
		Resolution: &Resolution{WinnerSlot: 1},
		Slots: []*PlayerSlot{
			{Slot: 1, UserID: "alice", Pool: &DicePool{Counts: map[int]int{1: 5}}},
		},
	}

	clone := game.Clone()
	clone.Slots[0].Pool.Counts[1] = 0
	clone.Slots[0].UserID = "mallory"
	clone.Resolution.WinnerSlot = 2

	assert.Equal(t, 5, game.Slots[0].Pool.Counts[1])
	assert.Equal(t, "alice", game.Slots[0].UserID)
	assert.Equal(t, 1, game.Resolution.WinnerSlot)
}

func TestGameStatus_Terminal(t *testing.T) {
	assert.False(t, GameStatusInProgress.IsTerminal())
	assert.True(t, GameStatusCancelled.IsTerminal())
	assert.True(t, GameStatusFinished.IsTerminal())
}
