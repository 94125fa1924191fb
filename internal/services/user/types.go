package user

import (
	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/models"
	userRepo "github.com/KirkDiggler/liarsdice/internal/repositories/user"
)

// Config holds configuration for the user service
type Config struct {
	// Repository dependencies
	UserRepo userRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// PasswordCost is the bcrypt cost, bcrypt.DefaultCost when zero
	PasswordCost int
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type CreateUserOutput struct {
	User *models.User
}

type AuthenticateInput struct {
	Name     string
	Password string
}

type AuthenticateOutput struct {
	User *models.User
}

type EnsureUserInput struct {
	// ID is the identifier assigned by the external identity provider
	ID string

	// Name is the current display name
	Name string
}

type EnsureUserOutput struct {
	User *models.User

	// Created is true when the user was seen for the first time
	Created bool
}

type GetUserInput struct {
	UserID string
}

type GetUserOutput struct {
	User *models.User
}
