package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/liarsdice/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

// Repository defines the interface for user data persistence
type Repository interface {
	// CreateUser persists a new user whose name must not be taken
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// SaveUser creates or replaces a user without name reservation checks
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetUserByName retrieves a user by name, ignoring case
	GetUserByName(ctx context.Context, input *GetUserByNameInput) (*models.User, error)

	// GetUsers retrieves several users by ID, in input order
	GetUsers(ctx context.Context, input *GetUsersInput) (*GetUsersOutput, error)
}
