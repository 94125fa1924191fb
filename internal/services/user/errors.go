package user

// UserError is a custom error type for user-related errors
type UserError string

// Error implements the error interface
func (e UserError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUserNotFound       UserError = "user not found"
	ErrUserAlreadyExists  UserError = "user already exists"
	ErrInvalidCredentials UserError = "invalid credentials"
	ErrInvalidName        UserError = "name must be between 1 and 32 characters"
	ErrPasswordTooShort   UserError = "password must be at least 8 characters"
	ErrNilConfig          UserError = "config cannot be nil"
	ErrNilUserRepo        UserError = "user repository cannot be nil"
	ErrNilClock           UserError = "clock cannot be nil"
	ErrNilUUIDGenerator   UserError = "UUID generator cannot be nil"
)
