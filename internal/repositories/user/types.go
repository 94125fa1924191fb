package user

import "github.com/KirkDiggler/liarsdice/internal/models"

type CreateUserInput struct {
	User *models.User
}

type SaveUserInput struct {
	User *models.User
}

type GetUserInput struct {
	UserID string
}

type GetUserByNameInput struct {
	Name string
}

type GetUsersInput struct {
	UserIDs []string
}

// GetUsersOutput lists the users found; Missing holds IDs with no record
type GetUsersOutput struct {
	Users []*models.User

	Missing []string
}
