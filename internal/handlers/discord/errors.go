package discord

// DiscordError is a custom error type for Discord handler setup errors
type DiscordError string

// Error implements the error interface
func (e DiscordError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           DiscordError = "config cannot be nil"
	ErrEmptyToken          DiscordError = "token cannot be empty"
	ErrNilSession          DiscordError = "session cannot be nil"
	ErrNilGameService      DiscordError = "game service cannot be nil"
	ErrNilUserService      DiscordError = "user service cannot be nil"
	ErrNilScoreService     DiscordError = "score service cannot be nil"
	ErrNilMessagingService DiscordError = "messaging service cannot be nil"
	ErrNilNotificationRepo DiscordError = "notification repository cannot be nil"
	ErrNilClock            DiscordError = "clock cannot be nil"
)
