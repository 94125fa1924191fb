package game

import (
	"math/rand"
	"testing"

	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// newTable seats one player per pool
func newTable(dieFaces, dicePerPlayer int, pools ...*models.DicePool) *models.Game {
	game := &models.Game{
		ID:            "game-1",
		Status:        models.GameStatusInProgress,
		PlayerCount:   len(pools),
		DieFaces:      dieFaces,
		DicePerPlayer: dicePerPlayer,
		CurrentBid:    models.InitialBid(),
	}
	for i, pool := range pools {
		game.Slots = append(game.Slots, &models.PlayerSlot{
			Slot:     i + 1,
			UserID:   string(rune('a' + i)),
			UserName: string(rune('A' + i)),
			Pool:     pool,
		})
	}
	return game
}

func pool(counts map[int]int) *models.DicePool {
	return &models.DicePool{Counts: counts}
}

func (s *EngineTestSuite) TestBidThenLowerTotalAtSameFace() {
	game := newTable(6, 5, pool(map[int]int{3: 5}), pool(map[int]int{1: 5}))

	next, err := applyBid(game, 1, models.Bid{Face: 3, Total: 4})
	s.Require().NoError(err)
	s.Equal(1, next.Turn)
	s.Equal(1, next.ActiveBidderSlot)
	s.Equal(models.Bid{Face: 3, Total: 4}, next.CurrentBid)

	// The original is untouched
	s.Equal(0, game.Turn)
	s.Equal(models.InitialBid(), game.CurrentBid)

	after, err := applyBid(next, 2, models.Bid{Face: 3, Total: 3})
	s.ErrorIs(err, ErrTotalMustIncrease)
	s.Same(next, after)
	s.Equal(1, next.Turn)
}

func (s *EngineTestSuite) TestBidWithLowerFace() {
	game := newTable(6, 5, pool(map[int]int{3: 5}), pool(map[int]int{1: 5}))

	next, err := applyBid(game, 1, models.Bid{Face: 3, Total: 4})
	s.Require().NoError(err)

	_, err = applyBid(next, 2, models.Bid{Face: 2, Total: 10})
	s.ErrorIs(err, ErrFaceMustNotDecrease)
}

func (s *EngineTestSuite) TestBidOutOfTurn() {
	game := newTable(6, 5, pool(map[int]int{3: 5}), pool(map[int]int{1: 5}))

	_, err := applyBid(game, 2, models.Bid{Face: 3, Total: 1})
	s.ErrorIs(err, ErrNotYourTurn)

	next, err := applyBid(game, 1, models.Bid{Face: 3, Total: 1})
	s.Require().NoError(err)

	_, err = applyBid(next, 1, models.Bid{Face: 3, Total: 2})
	s.ErrorIs(err, ErrNotYourTurn)
}

func (s *EngineTestSuite) TestChallengerLosesWhenEveryDieMatches() {
	// Three players with one single-faced die each: three ones on the table
	game := newTable(1, 1,
		pool(map[int]int{1: 1}),
		pool(map[int]int{1: 1}),
		pool(map[int]int{1: 1}),
	)

	next, err := applyBid(game, 1, models.Bid{Face: 1, Total: 3})
	s.Require().NoError(err)

	finished, resolution, err := resolveChallenge(next, 2)
	s.Require().NoError(err)
	s.Equal(models.GameStatusFinished, finished.Status)
	s.Equal(3, resolution.ActualTotal)
	s.Equal(3, resolution.BidTotal)
	s.Equal(1, resolution.BidFace)
	s.Equal(1, resolution.WinnerSlot)
	s.Equal(1, finished.WinnerSlot)
	s.False(resolution.ChallengerWon())
	s.Equal("a", finished.Winner().UserID)
}

func (s *EngineTestSuite) TestChallengerWinsOnOverbid() {
	game := newTable(6, 2,
		pool(map[int]int{4: 1, 2: 1}),
		pool(map[int]int{5: 2}),
	)

	next, err := applyBid(game, 1, models.Bid{Face: 4, Total: 2})
	s.Require().NoError(err)

	finished, resolution, err := resolveChallenge(next, 2)
	s.Require().NoError(err)
	s.Equal(1, resolution.ActualTotal)
	s.Equal(2, resolution.WinnerSlot)
	s.Equal(2, resolution.ChallengerSlot)
	s.Equal(1, resolution.BidderSlot)
	s.True(resolution.ChallengerWon())
	s.Equal(2, finished.WinnerSlot)
}

func (s *EngineTestSuite) TestResolutionCountsEveryPool() {
	// Only the first player holds fives; a count of the last pool alone would miss them
	game := newTable(6, 3,
		pool(map[int]int{5: 3}),
		pool(map[int]int{2: 3}),
		pool(map[int]int{6: 3}),
	)

	next, err := applyBid(game, 1, models.Bid{Face: 5, Total: 3})
	s.Require().NoError(err)

	_, resolution, err := resolveChallenge(next, 2)
	s.Require().NoError(err)
	s.Equal(3, resolution.ActualTotal)
	s.Equal(1, resolution.WinnerSlot)
}

func (s *EngineTestSuite) TestChallengeRules() {
	game := newTable(6, 5, pool(map[int]int{3: 5}), pool(map[int]int{1: 5}))

	_, resolution, err := resolveChallenge(game, 1)
	s.ErrorIs(err, ErrNoBidYet)
	s.Nil(resolution)

	next, err := applyBid(game, 1, models.Bid{Face: 3, Total: 4})
	s.Require().NoError(err)

	// The bidder cannot challenge their own bid
	_, _, err = resolveChallenge(next, 1)
	s.ErrorIs(err, ErrNotYourTurn)
}

func (s *EngineTestSuite) TestTerminalGamesRejectMoves() {
	game := newTable(6, 5, pool(map[int]int{3: 5}), pool(map[int]int{1: 5}))

	next, err := applyBid(game, 1, models.Bid{Face: 3, Total: 4})
	s.Require().NoError(err)
	finished, first, err := resolveChallenge(next, 2)
	s.Require().NoError(err)

	after, err := applyBid(finished, 2, models.Bid{Face: 4, Total: 1})
	s.ErrorIs(err, ErrGameAlreadyOver)
	s.Same(finished, after)

	again, second, err := resolveChallenge(finished, 2)
	s.ErrorIs(err, ErrGameAlreadyOver)
	s.Same(finished, again)
	s.Equal(first, second)

	cancelled, changed := cancel(finished)
	s.False(changed)
	s.Equal(models.GameStatusFinished, cancelled.Status)
}

func (s *EngineTestSuite) TestCancelTwice() {
	game := newTable(6, 5, pool(map[int]int{3: 5}), pool(map[int]int{1: 5}))

	first, changed := cancel(game)
	s.True(changed)
	s.Equal(models.GameStatusCancelled, first.Status)
	s.Equal(models.GameStatusInProgress, game.Status)

	second, changed := cancel(first)
	s.False(changed)
	s.Same(first, second)
	s.Equal(models.GameStatusCancelled, second.Status)

	_, err := applyBid(second, 1, models.Bid{Face: 2, Total: 1})
	s.ErrorIs(err, ErrGameAlreadyOver)
}

func (s *EngineTestSuite) TestMaximumBidOnlyAllowsChallenge() {
	game := newTable(2, 1, pool(map[int]int{2: 1}), pool(map[int]int{1: 1}))

	next, err := applyBid(game, 1, models.Bid{Face: 2, Total: 2})
	s.Require().NoError(err)
	s.Equal(next.MaxBid(), next.CurrentBid)

	_, err = applyBid(next, 2, models.Bid{Face: 2, Total: 3})
	s.ErrorIs(err, ErrAlreadyAtMaximum)

	_, resolution, err := resolveChallenge(next, 2)
	s.Require().NoError(err)
	s.Equal(1, resolution.ActualTotal)
	s.Equal(2, resolution.WinnerSlot)
}

func (s *EngineTestSuite) TestSelfPlay() {
	game := newTable(6, 2, pool(map[int]int{4: 2}))

	next, err := applyBid(game, 1, models.Bid{Face: 4, Total: 2})
	s.Require().NoError(err)

	// With one seat the bidder is also the next to act
	s.Equal("a", NextPlayer(next).UserID)

	finished, resolution, err := resolveChallenge(next, 1)
	s.Require().NoError(err)
	s.Equal(1, finished.WinnerSlot)
	s.Equal(2, resolution.ActualTotal)
}

func (s *EngineTestSuite) TestResolutionMatchesAggregateCount() {
	rng := rand.New(rand.NewSource(42))
	roller := dice.New(&dice.Config{Seed: 42})

	for round := 0; round < 300; round++ {
		playerCount := rng.Intn(5) + 2
		dieFaces := rng.Intn(6) + 1
		dicePerPlayer := rng.Intn(5) + 1

		pools := make([]*models.DicePool, 0, playerCount)
		for i := 0; i < playerCount; i++ {
			p, err := dice.Generate(roller, dieFaces, dicePerPlayer)
			s.Require().NoError(err)
			pools = append(pools, p)
		}
		game := newTable(dieFaces, dicePerPlayer, pools...)

		bid := models.Bid{
			Face:  rng.Intn(dieFaces) + 1,
			Total: rng.Intn(game.MaxTotal()) + 1,
		}

		next, err := applyBid(game, 1, bid)
		s.Require().NoError(err)

		_, resolution, err := resolveChallenge(next, 2)
		s.Require().NoError(err)

		actual := dice.AggregateCount(pools, bid.Face)
		s.Equal(actual, resolution.ActualTotal)
		if actual < bid.Total {
			s.Equal(2, resolution.WinnerSlot)
		} else {
			s.Equal(1, resolution.WinnerSlot)
		}
	}
}
