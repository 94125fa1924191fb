package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Creation errors
const (
	ErrNoPlayers        GameError = "no players"
	ErrTooManyPlayers   GameError = "too many players"
	ErrInsufficientDice GameError = "insufficient dice"
	ErrInvalidFaceSpace GameError = "invalid face space"
	ErrDuplicatePlayer  GameError = "duplicate player"
	ErrUnknownPlayer    GameError = "unknown player"
	ErrChannelHasGame   GameError = "channel already has a game in progress"
)

// Turn and state errors
const (
	ErrGameAlreadyOver GameError = "game already over"
	ErrNotYourTurn     GameError = "not your turn"
	ErrNoBidYet        GameError = "no bid yet"
)

// Bid errors
const (
	ErrInvalidFace         GameError = "invalid face"
	ErrInvalidTotal        GameError = "invalid total"
	ErrFaceMustNotDecrease GameError = "face must not decrease"
	ErrTotalMustIncrease   GameError = "total must increase"
	ErrAlreadyAtMaximum    GameError = "already at maximum"
)

// Lookup and storage errors
const (
	ErrGameNotFound     GameError = "game not found"
	ErrPlayerNotInGame  GameError = "player not in game"
	ErrConcurrentUpdate GameError = "game was updated concurrently"
)

// Configuration errors
const (
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilGameRepo         GameError = "game repository cannot be nil"
	ErrNilUserRepo         GameError = "user repository cannot be nil"
	ErrNilHistoryRepo      GameError = "history repository cannot be nil"
	ErrNilNotificationRepo GameError = "notification repository cannot be nil"
	ErrNilScoreService     GameError = "score service cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
