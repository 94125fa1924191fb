package models

import (
	"time"
)

// User is a registered account that can hold seats in games
type User struct {
	// ID is the unique identifier for the user, a Discord user ID for bot users
	ID string

	// Name is the unique display name of the user
	Name string

	// Email is where out-of-band notifications may be sent
	Email string

	// PasswordHash is the bcrypt hash used by the HTTP API, empty for bot users
	PasswordHash string

	// CreatedAt is when the user registered
	CreatedAt time.Time
}
