package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
	"github.com/KirkDiggler/liarsdice/internal/services/user"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) newGame() *models.Game {
	return &models.Game{
		ID:            "game-1",
		Status:        models.GameStatusInProgress,
		PlayerCount:   3,
		DieFaces:      6,
		DicePerPlayer: 5,
		CurrentBid:    models.InitialBid(),
		Slots: []*models.PlayerSlot{
			{Slot: 1, UserID: "u1", UserName: "Alice"},
			{Slot: 2, UserID: "u2", UserName: "Bob"},
			{Slot: 3, UserID: "u3", UserName: "Carol"},
		},
	}
}

func (s *MessagingServiceTestSuite) TestTurnMessageNeutral() {
	out, err := s.service.GetTurnMessage(s.ctx, &GetTurnMessageInput{
		RecipientName: "Bob",
		BidderName:    "Alice",
		BidFace:       3,
		BidTotal:      4,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Alice bid 4 × 3. It's your turn, Bob: raise the bid or call liar.", out.Message)
	s.Equal(ToneNeutral, out.Tone)
}

func (s *MessagingServiceTestSuite) TestTurnMessageDefaultsToFunny() {
	out, err := s.service.GetTurnMessage(s.ctx, &GetTurnMessageInput{
		RecipientName: "Bob",
		BidderName:    "Alice",
		BidFace:       3,
		BidTotal:      4,
	})
	s.Require().NoError(err)
	s.Equal(ToneFunny, out.Tone)
	s.Contains(out.Message, "Alice bid 4 × 3. It's your turn, Bob")
}

func (s *MessagingServiceTestSuite) TestReminder() {
	out, err := s.service.GetReminderMessage(s.ctx, &GetReminderMessageInput{
		RecipientName: "Bob",
		BidFace:       2,
		BidTotal:      5,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Bob, you still owe an answer to 5 × 2.")

	out, err = s.service.GetReminderMessage(s.ctx, &GetReminderMessageInput{
		RecipientName: "Alice",
		OpeningBid:    true,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Alice, the table is waiting for your opening bid.")
}

func (s *MessagingServiceTestSuite) TestStatus() {
	g := s.newGame()

	out, err := s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{Game: g})
	s.Require().NoError(err)
	s.Equal("No bids yet. It's Alice's turn to open.", out.Message)

	g.Turn = 2
	g.ActiveBidderSlot = 3
	g.CurrentBid = models.Bid{Face: 4, Total: 6}
	out, err = s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{Game: g})
	s.Require().NoError(err)
	s.Equal("It's Alice's turn. Carol bid 6 × 4.", out.Message)

	g.Status = models.GameStatusFinished
	g.WinnerSlot = 2
	out, err = s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{Game: g})
	s.Require().NoError(err)
	s.Equal("This game is over. Bob won.", out.Message)

	g.Status = models.GameStatusCancelled
	out, err = s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{Game: g})
	s.Require().NoError(err)
	s.Equal("This game was cancelled.", out.Message)
}

func (s *MessagingServiceTestSuite) TestResolution() {
	g := s.newGame()
	resolution := &models.Resolution{
		BidFace:        3,
		BidTotal:       4,
		ActualTotal:    2,
		BidderSlot:     1,
		ChallengerSlot: 2,
		WinnerSlot:     2,
	}

	out, err := s.service.GetResolutionMessage(s.ctx, &GetResolutionMessageInput{Game: g, Resolution: resolution})
	s.Require().NoError(err)
	s.Contains(out.Message, "For a face of 3: real total 2, bid total 4. Bob wins!")
}

func (s *MessagingServiceTestSuite) TestResolutionNilInput() {
	_, err := s.service.GetResolutionMessage(s.ctx, &GetResolutionMessageInput{Game: s.newGame()})
	s.ErrorIs(err, ErrNilInput)
}

func (s *MessagingServiceTestSuite) TestDice() {
	out, err := s.service.GetDiceMessage(s.ctx, &GetDiceMessageInput{
		Faces: []models.FaceCount{{Face: 2, Count: 3}, {Face: 5, Count: 2}},
	})
	s.Require().NoError(err)
	s.Equal("Your dice: 3 × 2, 2 × 5", out.Message)
}

func (s *MessagingServiceTestSuite) TestHistory() {
	out, err := s.service.GetHistoryMessage(s.ctx, &GetHistoryMessageInput{})
	s.Require().NoError(err)
	s.Equal("No bids yet.", out.Message)

	out, err = s.service.GetHistoryMessage(s.ctx, &GetHistoryMessageInput{
		Entries: []*models.BidHistoryEntry{
			{Turn: 1, UserName: "Alice", Face: 3, Total: 4},
			{Turn: 2, UserName: "Bob", Face: 3, Total: 5},
		},
	})
	s.Require().NoError(err)
	s.Equal("1. Alice bid 4 × 3\n2. Bob bid 5 × 3", out.Message)
}

func (s *MessagingServiceTestSuite) TestRankings() {
	out, err := s.service.GetRankingsMessage(s.ctx, &GetRankingsMessageInput{
		Rankings: []*models.RankedScore{
			{Rank: 1, UserName: "Alice", Record: &models.ScoreRecord{CumulativeScore: 7, Wins: 2, GamesPlayed: 3}},
			{Rank: 2, UserName: "Bob", Record: &models.ScoreRecord{CumulativeScore: 3, Wins: 1, GamesPlayed: 3}},
		},
	})
	s.Require().NoError(err)
	s.Equal("#1 Alice: 7 points (2 wins in 3 games)\n#2 Bob: 3 points (1 wins in 3 games)", out.Message)
}

func (s *MessagingServiceTestSuite) TestErrorMessages() {
	domainErrors := []error{
		game.ErrNoPlayers, game.ErrTooManyPlayers, game.ErrInsufficientDice,
		game.ErrInvalidFaceSpace, game.ErrDuplicatePlayer, game.ErrUnknownPlayer,
		game.ErrChannelHasGame, game.ErrGameAlreadyOver, game.ErrNotYourTurn,
		game.ErrNoBidYet, game.ErrInvalidFace, game.ErrInvalidTotal,
		game.ErrFaceMustNotDecrease, game.ErrTotalMustIncrease, game.ErrAlreadyAtMaximum,
		game.ErrGameNotFound, game.ErrPlayerNotInGame, game.ErrConcurrentUpdate,
		user.ErrUserNotFound, user.ErrUserAlreadyExists, user.ErrInvalidCredentials,
		user.ErrInvalidName, user.ErrPasswordTooShort, score.ErrGameNotFinished,
	}

	seen := make(map[string]bool)
	for _, domainErr := range domainErrors {
		first, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: domainErr})
		s.Require().NoError(err)
		s.NotEqual(CodeInternal, first.Code, domainErr.Error())
		s.NotEmpty(first.Message)
		s.False(seen[first.Code], "duplicate code %s", first.Code)
		seen[first.Code] = true

		second, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: domainErr})
		s.Require().NoError(err)
		s.Equal(first, second)
	}
}

func (s *MessagingServiceTestSuite) TestErrorMessageWrapped() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: fmt.Errorf("submit bid: %w", game.ErrTotalMustIncrease),
	})
	s.Require().NoError(err)
	s.Equal("TotalMustIncrease", out.Code)
	s.Equal("TotalMustIncrease", ErrorCode(fmt.Errorf("wrapped: %w", game.ErrTotalMustIncrease)))
}

func (s *MessagingServiceTestSuite) TestErrorMessageUnknown() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: fmt.Errorf("redis down")})
	s.Require().NoError(err)
	s.Equal(CodeInternal, out.Code)
	s.Equal(CodeInternal, ErrorCode(fmt.Errorf("redis down")))
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
