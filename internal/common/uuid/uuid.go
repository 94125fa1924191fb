// Package uuid issues the identifiers of games and user accounts.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/liarsdice/internal/common/uuid UUID

// UUID issues identifiers for new games and accounts
type UUID interface {
	NewUUID() string
}

// canonicalLength is the length of xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
const canonicalLength = 36

// DefaultUUID issues random version 4 UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID in canonical form
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}

// IsValid reports whether id has the canonical form NewUUID issues
func IsValid(id string) bool {
	if len(id) != canonicalLength {
		return false
	}

	_, err := uuid.Parse(id)
	return err == nil
}
