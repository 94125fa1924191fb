package user

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/liarsdice/internal/services/user Service

import "context"

// Service manages the identities allowed to sit at a table
type Service interface {
	// CreateUser registers a user with a password
	CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error)

	// Authenticate checks a name and password
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// EnsureUser records an identity verified elsewhere, such as a Discord account
	EnsureUser(ctx context.Context, input *EnsureUserInput) (*EnsureUserOutput, error)

	// GetUser returns a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error)
}
