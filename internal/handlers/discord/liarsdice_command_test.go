package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	gameMocks "github.com/KirkDiggler/liarsdice/internal/services/game/mocks"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
	scoreMocks "github.com/KirkDiggler/liarsdice/internal/services/score/mocks"
	"github.com/KirkDiggler/liarsdice/internal/services/user"
	userMocks "github.com/KirkDiggler/liarsdice/internal/services/user/mocks"
)

type LiarsDiceCommandTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockGameService  *gameMocks.MockService
	mockUserService  *userMocks.MockService
	mockScoreService *scoreMocks.MockService
	messagingService messaging.Service
	session          *fakeSession
	command          *LiarsDiceCommand
	ctx              context.Context

	testChannelID string
	testGameID    string
	testAliceID   string
	testBobID     string
}

func (s *LiarsDiceCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.mockCtrl)
	s.mockUserService = userMocks.NewMockService(s.mockCtrl)
	s.mockScoreService = scoreMocks.NewMockService(s.mockCtrl)
	s.session = newFakeSession()
	s.ctx = context.Background()

	s.testChannelID = "channel-1"
	s.testGameID = "game-1"
	s.testAliceID = "alice-id"
	s.testBobID = "bob-id"

	var err error
	s.messagingService, err = messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	s.command, err = NewLiarsDiceCommand(&CommandConfig{
		GameService:      s.mockGameService,
		UserService:      s.mockUserService,
		ScoreService:     s.mockScoreService,
		MessagingService: s.messagingService,
	})
	s.Require().NoError(err)
}

func (s *LiarsDiceCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *LiarsDiceCommandTestSuite) slashCommand(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: s.testChannelID,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: s.testAliceID, Username: "alice"},
				Nick: "Alice",
			},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "liarsdice",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    sub,
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: opts,
					},
				},
				Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
					Users: map[string]*discordgo.User{
						s.testBobID: {ID: s.testBobID, Username: "bob", GlobalName: "Bob"},
					},
				},
			},
		},
	}
}

func (s *LiarsDiceCommandTestSuite) button(customID, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			// Buttons on DMs carry the user without a member
			User: &discordgo.User{ID: userID, Username: "bob"},
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func userOption(name, userID string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: userID,
	}
}

func (s *LiarsDiceCommandTestSuite) newGame() *models.Game {
	return &models.Game{
		ID:            s.testGameID,
		ChannelID:     s.testChannelID,
		Status:        models.GameStatusInProgress,
		PlayerCount:   2,
		DieFaces:      6,
		DicePerPlayer: 5,
		CurrentBid:    models.InitialBid(),
		Slots: []*models.PlayerSlot{
			{Slot: 1, UserID: s.testAliceID, UserName: "Alice", Pool: &models.DicePool{Counts: map[int]int{3: 2, 5: 3}}},
			{Slot: 2, UserID: s.testBobID, UserName: "Bob", Pool: &models.DicePool{Counts: map[int]int{3: 1, 4: 4}}},
		},
	}
}

func (s *LiarsDiceCommandTestSuite) expectEnsureAlice() {
	s.mockUserService.EXPECT().EnsureUser(gomock.Any(), &user.EnsureUserInput{ID: s.testAliceID, Name: "Alice"}).
		Return(&user.EnsureUserOutput{User: &models.User{ID: s.testAliceID, Name: "Alice"}}, nil)
}

func (s *LiarsDiceCommandTestSuite) expectChannelGame(g *models.Game) {
	s.mockGameService.EXPECT().GetGameByChannel(gomock.Any(), &game.GetGameByChannelInput{ChannelID: s.testChannelID}).
		Return(&game.GetGameOutput{Game: g}, nil)
}

func (s *LiarsDiceCommandTestSuite) errorText(err error) string {
	output, msgErr := s.messagingService.GetErrorMessage(s.ctx, &messaging.GetErrorMessageInput{Err: err})
	s.Require().NoError(msgErr)
	return output.Message
}

func (s *LiarsDiceCommandTestSuite) requireErrorResponse(expected string) {
	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Error", resp.Data.Embeds[0].Title)
	s.Equal(expected, resp.Data.Embeds[0].Description)
}

func (s *LiarsDiceCommandTestSuite) TestNewLiarsDiceCommand_Validation() {
	_, err := NewLiarsDiceCommand(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewLiarsDiceCommand(&CommandConfig{})
	s.ErrorIs(err, ErrNilGameService)
}

func (s *LiarsDiceCommandTestSuite) TestNew() {
	s.expectEnsureAlice()
	s.mockUserService.EXPECT().EnsureUser(gomock.Any(), &user.EnsureUserInput{ID: s.testBobID, Name: "Bob"}).
		Return(&user.EnsureUserOutput{User: &models.User{ID: s.testBobID, Name: "Bob"}}, nil)
	s.mockGameService.EXPECT().CreateGame(gomock.Any(), &game.CreateGameInput{
		ChannelID:     s.testChannelID,
		CreatorID:     s.testAliceID,
		PlayerIDs:     []string{s.testAliceID, s.testBobID},
		DicePerPlayer: 3,
		DieFaces:      6,
	}).Return(&game.CreateGameOutput{Game: s.newGame()}, nil)

	err := s.command.Handle(s.session, s.slashCommand("new", userOption("opponent1", s.testBobID), intOption("dice", 3)))
	s.Require().NoError(err)

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("New Game of Liar's Dice!", resp.Data.Embeds[0].Title)
	s.Equal("No bids yet. It's Alice's turn to open.", resp.Data.Embeds[0].Description)

	s.Require().Len(resp.Data.Components, 1)
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Equal(ButtonMyDice+s.testGameID, row.Components[0].(discordgo.Button).CustomID)
}

func (s *LiarsDiceCommandTestSuite) TestNew_ChannelBusy() {
	s.expectEnsureAlice()
	s.mockGameService.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Return(nil, game.ErrChannelHasGame)

	err := s.command.Handle(s.session, s.slashCommand("new"))
	s.Require().NoError(err)
	s.requireErrorResponse(s.errorText(game.ErrChannelHasGame))
}

func (s *LiarsDiceCommandTestSuite) TestEnsureUserFails() {
	s.mockUserService.EXPECT().EnsureUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	err := s.command.Handle(s.session, s.slashCommand("status"))
	s.Require().NoError(err)
	s.requireErrorResponse("Something went wrong. Try again later.")
}

func (s *LiarsDiceCommandTestSuite) TestBid() {
	g := s.newGame()
	s.expectEnsureAlice()
	s.expectChannelGame(g)

	bid := g.Clone()
	bid.Turn = 1
	bid.ActiveBidderSlot = 1
	bid.CurrentBid = models.Bid{Face: 3, Total: 4}
	s.mockGameService.EXPECT().SubmitBid(gomock.Any(), &game.SubmitBidInput{
		GameID:   s.testGameID,
		PlayerID: s.testAliceID,
		Face:     3,
		Total:    4,
	}).Return(&game.SubmitBidOutput{Game: bid, NextPlayer: bid.Slot(2)}, nil)

	err := s.command.Handle(s.session, s.slashCommand("bid", intOption("total", 4), intOption("face", 3)))
	s.Require().NoError(err)

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Equal("It's Bob's turn. Alice bid 4 × 3.", resp.Data.Embeds[0].Description)

	row := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Equal(ButtonCallLiar+s.testGameID, row.Components[0].(discordgo.Button).CustomID)
	s.Equal(ButtonMyDice+s.testGameID, row.Components[1].(discordgo.Button).CustomID)
}

func (s *LiarsDiceCommandTestSuite) TestBid_Rejected() {
	s.expectEnsureAlice()
	s.expectChannelGame(s.newGame())
	s.mockGameService.EXPECT().SubmitBid(gomock.Any(), gomock.Any()).Return(nil, game.ErrTotalMustIncrease)

	err := s.command.Handle(s.session, s.slashCommand("bid", intOption("total", 3), intOption("face", 3)))
	s.Require().NoError(err)
	s.requireErrorResponse(s.errorText(game.ErrTotalMustIncrease))
}

func (s *LiarsDiceCommandTestSuite) TestNoGameInChannel() {
	s.expectEnsureAlice()
	s.mockGameService.EXPECT().GetGameByChannel(gomock.Any(), gomock.Any()).Return(nil, game.ErrGameNotFound)

	err := s.command.Handle(s.session, s.slashCommand("liar"))
	s.Require().NoError(err)
	s.requireErrorResponse("No game in this channel. Start one with `/liarsdice new`.")
}

func (s *LiarsDiceCommandTestSuite) TestLiar() {
	g := s.newGame()
	s.expectEnsureAlice()
	s.expectChannelGame(g)

	finished := g.Clone()
	finished.Status = models.GameStatusFinished
	finished.Turn = 1
	finished.ActiveBidderSlot = 2
	finished.CurrentBid = models.Bid{Face: 3, Total: 4}
	finished.WinnerSlot = 1
	finished.Resolution = &models.Resolution{
		BidFace:        3,
		BidTotal:       4,
		ActualTotal:    3,
		BidderSlot:     2,
		ChallengerSlot: 1,
		WinnerSlot:     1,
	}
	s.mockGameService.EXPECT().CallLiar(gomock.Any(), &game.CallLiarInput{
		GameID:   s.testGameID,
		PlayerID: s.testAliceID,
	}).Return(&game.CallLiarOutput{Game: finished, Resolution: finished.Resolution}, nil)

	err := s.command.Handle(s.session, s.slashCommand("liar"))
	s.Require().NoError(err)

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	embed := resp.Data.Embeds[0]
	s.Equal("Liar called!", embed.Title)
	s.Contains(embed.Description, "For a face of 3: real total 3, bid total 4. Alice wins!")
	s.Require().Len(embed.Fields, 2)
	s.Equal("Bob", embed.Fields[1].Name)
	s.Equal("1 × 3\n4 × 4", embed.Fields[1].Value)
}

func (s *LiarsDiceCommandTestSuite) TestDice() {
	s.expectEnsureAlice()
	s.expectChannelGame(s.newGame())
	s.mockGameService.EXPECT().GetDice(gomock.Any(), &game.GetDiceInput{
		GameID:   s.testGameID,
		PlayerID: s.testAliceID,
	}).Return(&game.GetDiceOutput{Slot: 1, Faces: []models.FaceCount{{Face: 3, Count: 2}, {Face: 5, Count: 3}}}, nil)

	err := s.command.Handle(s.session, s.slashCommand("dice"))
	s.Require().NoError(err)

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("Your dice: 2 × 3, 3 × 5", resp.Data.Content)
}

func (s *LiarsDiceCommandTestSuite) TestHistory() {
	s.expectEnsureAlice()
	s.expectChannelGame(s.newGame())
	s.mockGameService.EXPECT().GetHistory(gomock.Any(), &game.GetHistoryInput{GameID: s.testGameID}).
		Return(&game.GetHistoryOutput{Entries: []*models.BidHistoryEntry{
			{Turn: 1, UserName: "Alice", Face: 3, Total: 4},
		}}, nil)

	err := s.command.Handle(s.session, s.slashCommand("history"))
	s.Require().NoError(err)

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Equal("1. Alice bid 4 × 3", resp.Data.Embeds[0].Description)
}

func (s *LiarsDiceCommandTestSuite) TestCancel() {
	s.expectEnsureAlice()
	s.expectChannelGame(s.newGame())

	cancelled := s.newGame()
	cancelled.Status = models.GameStatusCancelled
	s.mockGameService.EXPECT().CancelGame(gomock.Any(), &game.CancelGameInput{
		GameID:   s.testGameID,
		PlayerID: s.testAliceID,
	}).Return(&game.CancelGameOutput{Game: cancelled, Cancelled: true}, nil)

	err := s.command.Handle(s.session, s.slashCommand("cancel"))
	s.Require().NoError(err)
	s.Equal("Game cancelled. Start a new one with `/liarsdice new`.", s.session.lastResponse().Data.Content)
}

func (s *LiarsDiceCommandTestSuite) TestCancel_AlreadyOver() {
	s.expectEnsureAlice()

	cancelled := s.newGame()
	cancelled.Status = models.GameStatusCancelled
	s.expectChannelGame(cancelled)
	s.mockGameService.EXPECT().CancelGame(gomock.Any(), gomock.Any()).
		Return(&game.CancelGameOutput{Game: cancelled, Cancelled: false}, nil)

	err := s.command.Handle(s.session, s.slashCommand("cancel"))
	s.Require().NoError(err)

	resp := s.session.lastResponse()
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("This game is already over.", resp.Data.Content)
}

func (s *LiarsDiceCommandTestSuite) TestGames() {
	s.expectEnsureAlice()
	s.mockGameService.EXPECT().ListUserGames(gomock.Any(), &game.ListUserGamesInput{
		PlayerID:   s.testAliceID,
		ActiveOnly: true,
	}).Return(&game.ListUserGamesOutput{Games: []*models.Game{s.newGame()}}, nil)

	err := s.command.Handle(s.session, s.slashCommand("games"))
	s.Require().NoError(err)

	resp := s.session.lastResponse()
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Contains(resp.Data.Embeds[0].Description, "<#"+s.testChannelID+">: 2 players, turn 0")
}

func (s *LiarsDiceCommandTestSuite) TestRankings() {
	s.expectEnsureAlice()
	s.mockScoreService.EXPECT().GetRankings(gomock.Any(), &score.GetRankingsInput{Limit: 10}).
		Return(&score.GetRankingsOutput{Rankings: []*models.RankedScore{
			{Rank: 1, UserName: "Alice", Record: &models.ScoreRecord{UserID: s.testAliceID, GamesPlayed: 1, Wins: 1, CumulativeScore: 2}},
		}}, nil)

	err := s.command.Handle(s.session, s.slashCommand("rankings"))
	s.Require().NoError(err)
	s.Equal("#1 Alice: 2 points (1 wins in 1 games)", s.session.lastResponse().Data.Embeds[0].Description)
}

func (s *LiarsDiceCommandTestSuite) TestCallLiarButtonFromDM() {
	s.mockGameService.EXPECT().CallLiar(gomock.Any(), &game.CallLiarInput{
		GameID:   s.testGameID,
		PlayerID: s.testBobID,
	}).Return(nil, game.ErrNoBidYet)

	handled, err := s.command.HandleComponent(s.session, s.button(ButtonCallLiar+s.testGameID, s.testBobID))
	s.Require().NoError(err)
	s.True(handled)
	s.requireErrorResponse(s.errorText(game.ErrNoBidYet))
}

func (s *LiarsDiceCommandTestSuite) TestUnknownButton() {
	handled, err := s.command.HandleComponent(s.session, s.button("join_game", s.testBobID))
	s.Require().NoError(err)
	s.False(handled)
	s.Nil(s.session.lastResponse())
}

func TestLiarsDiceCommandSuite(t *testing.T) {
	suite.Run(t, new(LiarsDiceCommandTestSuite))
}
