package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/liarsdice/internal/models"
	gamesvc "github.com/KirkDiggler/liarsdice/internal/services/game"
)

// service implements the Service interface
type service struct {
	// mu guards rand, handlers call in from many goroutines
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return messages[s.rand.Intn(len(messages))]
}

// GetTurnMessage returns the message telling a player a bid awaits their answer
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	bid := FormatBid(input.BidFace, input.BidTotal)
	core := fmt.Sprintf("%s bid %s. It's your turn, %s: raise the bid or call liar.", input.BidderName, bid, input.RecipientName)

	if tone == ToneNeutral {
		return &GetTurnMessageOutput{
			Title:   "Your turn",
			Message: core,
			Tone:    tone,
		}, nil
	}

	quips := []string{
		"Do you believe them?",
		"Sounds fishy to me.",
		"Trust, but verify.",
		"Poker face on.",
		"They look pretty confident. Too confident?",
		"The dice never lie. Players do.",
	}

	return &GetTurnMessageOutput{
		Title:   "Your turn",
		Message: core + " " + s.pick(quips),
		Tone:    tone,
	}, nil
}

// GetReminderMessage returns the nudge sent to a player who has not moved yet
func (s *service) GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var core string
	if input.OpeningBid {
		core = fmt.Sprintf("%s, the table is waiting for your opening bid.", input.RecipientName)
	} else {
		core = fmt.Sprintf("%s, you still owe an answer to %s.", input.RecipientName, FormatBid(input.BidFace, input.BidTotal))
	}

	nudges := []string{
		"Tick tock.",
		"The dice are getting cold.",
		"Everyone's staring at you.",
		"Take your time. But not too much.",
	}

	return &GetReminderMessageOutput{
		Message: core + " " + s.pick(nudges),
	}, nil
}

// GetGameStatusMessage returns a one-line summary of a game
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil || input.Game == nil {
		return nil, ErrNilInput
	}

	game := input.Game
	var message string

	switch {
	case game.Status.IsCancelled():
		message = "This game was cancelled."
	case game.Status.IsFinished():
		message = fmt.Sprintf("This game is over. %s won.", slotName(game, game.WinnerSlot))
	case game.Turn == 0:
		message = fmt.Sprintf("No bids yet. It's %s's turn to open.", slotName(game, nextSlot(game)))
	default:
		message = fmt.Sprintf("It's %s's turn. %s bid %s.",
			slotName(game, nextSlot(game)),
			slotName(game, game.ActiveBidderSlot),
			FormatBid(game.CurrentBid.Face, game.CurrentBid.Total))
	}

	return &GetGameStatusMessageOutput{
		Message: message,
	}, nil
}

// GetResolutionMessage returns the reveal after a liar call
func (s *service) GetResolutionMessage(ctx context.Context, input *GetResolutionMessageInput) (*GetResolutionMessageOutput, error) {
	if input == nil || input.Game == nil || input.Resolution == nil {
		return nil, ErrNilInput
	}

	r := input.Resolution
	winner := slotName(input.Game, r.WinnerSlot)
	core := fmt.Sprintf("For a face of %d: real total %d, bid total %d. %s wins!", r.BidFace, r.ActualTotal, r.BidTotal, winner)

	var quips []string
	if r.ChallengerWon() {
		quips = []string{
			fmt.Sprintf("%s got caught bluffing.", slotName(input.Game, r.BidderSlot)),
			"Liar, liar!",
			"Nice call.",
			"The dice don't lie.",
		}
	} else {
		quips = []string{
			fmt.Sprintf("%s should have trusted them.", slotName(input.Game, r.ChallengerSlot)),
			"Honesty pays.",
			"It was true all along.",
			"Bad call.",
		}
	}

	return &GetResolutionMessageOutput{
		Title:   "Liar called!",
		Message: core + " " + s.pick(quips),
		Tone:    ToneCelebration,
	}, nil
}

// GetDiceMessage returns a player's dice as text
func (s *service) GetDiceMessage(ctx context.Context, input *GetDiceMessageInput) (*GetDiceMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Faces) == 0 {
		return &GetDiceMessageOutput{Message: "You have no dice."}, nil
	}

	parts := make([]string, 0, len(input.Faces))
	for _, fc := range input.Faces {
		parts = append(parts, fmt.Sprintf("%d × %d", fc.Count, fc.Face))
	}

	return &GetDiceMessageOutput{
		Message: "Your dice: " + strings.Join(parts, ", "),
	}, nil
}

// GetHistoryMessage returns a game's bids as text
func (s *service) GetHistoryMessage(ctx context.Context, input *GetHistoryMessageInput) (*GetHistoryMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Entries) == 0 {
		return &GetHistoryMessageOutput{Message: "No bids yet."}, nil
	}

	var sb strings.Builder
	for i, entry := range input.Entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %s bid %s", entry.Turn, entry.UserName, FormatBid(entry.Face, entry.Total))
	}

	return &GetHistoryMessageOutput{
		Message: sb.String(),
	}, nil
}

// GetRankingsMessage returns the rankings table as text
func (s *service) GetRankingsMessage(ctx context.Context, input *GetRankingsMessageInput) (*GetRankingsMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Rankings) == 0 {
		return &GetRankingsMessageOutput{Message: "Nobody has finished a game yet."}, nil
	}

	var sb strings.Builder
	for i, ranked := range input.Rankings {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "#%d %s: %d points (%d wins in %d games)",
			ranked.Rank, ranked.UserName,
			ranked.Record.CumulativeScore, ranked.Record.Wins, ranked.Record.GamesPlayed)
	}

	return &GetRankingsMessageOutput{
		Message: sb.String(),
	}, nil
}

// GetErrorMessage returns the stable user-facing text for an error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, ErrNilInput
	}

	text, ok := lookupError(input.Err)
	if !ok {
		return &GetErrorMessageOutput{
			Code:    CodeInternal,
			Message: "Something went wrong. Try again later.",
		}, nil
	}

	return &GetErrorMessageOutput{
		Code:    text.code,
		Message: text.message,
	}, nil
}

// FormatBid renders a bid as "total × face"
func FormatBid(face, total int) string {
	return fmt.Sprintf("%d × %d", total, face)
}

func nextSlot(game *models.Game) int {
	return gamesvc.NextBidderSlot(game.ActiveBidderSlot, game.PlayerCount)
}

func slotName(game *models.Game, slot int) string {
	if s := game.Slot(slot); s != nil {
		return s.UserName
	}
	return fmt.Sprintf("Player %d", slot)
}
