package messaging

import (
	"errors"

	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/score"
	"github.com/KirkDiggler/liarsdice/internal/services/user"
)

// MessagingError is a custom error type for messaging errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput MessagingError = "input cannot be nil"
)

// CodeInternal is reported for errors that have no user-facing text
const CodeInternal = "Internal"

type errorText struct {
	code    string
	message string
}

var errorTexts = map[error]errorText{
	game.ErrNoPlayers:           {"NoPlayers", "A game needs at least one player."},
	game.ErrTooManyPlayers:      {"TooManyPlayers", "That's too many players for one table."},
	game.ErrInsufficientDice:    {"InsufficientDice", "Every player needs at least one die."},
	game.ErrInvalidFaceSpace:    {"InvalidFaceSpace", "Dice need at least one face."},
	game.ErrDuplicatePlayer:     {"DuplicatePlayer", "A player can only take one seat."},
	game.ErrUnknownPlayer:       {"UnknownPlayer", "Everyone at the table has to be a registered player."},
	game.ErrChannelHasGame:      {"ChannelHasGame", "There's already a game going in this channel. Finish or cancel it first."},
	game.ErrGameAlreadyOver:     {"GameAlreadyOver", "This game is already over."},
	game.ErrNotYourTurn:         {"NotYourTurn", "Hold on, it's not your turn."},
	game.ErrNoBidYet:            {"NoBidYet", "Nobody has bid yet, there's nothing to call."},
	game.ErrInvalidFace:         {"InvalidFace", "That face isn't on these dice."},
	game.ErrInvalidTotal:        {"InvalidTotal", "There aren't that many dice on the table."},
	game.ErrFaceMustNotDecrease: {"FaceMustNotDecrease", "You can't bid a lower face than the current bid."},
	game.ErrTotalMustIncrease:   {"TotalMustIncrease", "Bid a higher face or raise the total."},
	game.ErrAlreadyAtMaximum:    {"AlreadyAtMaximum", "The bid can't go any higher. Call liar!"},
	game.ErrGameNotFound:        {"GameNotFound", "I couldn't find that game."},
	game.ErrPlayerNotInGame:     {"PlayerNotInGame", "You don't have a seat in this game."},
	game.ErrConcurrentUpdate:    {"ConcurrentUpdate", "Someone else moved at the same time. Try again."},
	user.ErrUserNotFound:        {"UserNotFound", "I couldn't find that player."},
	user.ErrUserAlreadyExists:   {"UserAlreadyExists", "That name is already taken."},
	user.ErrInvalidCredentials:  {"InvalidCredentials", "Wrong name or password."},
	user.ErrInvalidName:         {"InvalidName", "Names must be between 1 and 32 characters."},
	user.ErrPasswordTooShort:    {"PasswordTooShort", "Passwords must be at least 8 characters."},
	score.ErrGameNotFinished:    {"GameNotFinished", "That game isn't finished yet."},
	ErrNilInput:                 {"InvalidInput", "Something was missing from that request."},
}

// ErrorCode returns the machine-readable code of err, CodeInternal when it has none
func ErrorCode(err error) string {
	if text, ok := lookupError(err); ok {
		return text.code
	}
	return CodeInternal
}

func lookupError(err error) (errorText, bool) {
	for err != nil {
		if text, ok := errorTexts[err]; ok {
			return text, true
		}
		err = errors.Unwrap(err)
	}
	return errorText{}, false
}
