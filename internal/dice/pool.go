package dice

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

var (
	// ErrNilRoller is returned when no random source is supplied
	ErrNilRoller = errors.New("roller cannot be nil")

	// ErrInvalidFaces is returned for dice with fewer than one face
	ErrInvalidFaces = errors.New("dice need at least one face")

	// ErrInvalidCount is returned for pools with fewer than one die
	ErrInvalidCount = errors.New("a pool needs at least one die")

	// ErrRollOutOfRange is returned when the roller produces an impossible face
	ErrRollOutOfRange = errors.New("roll out of range")
)

// Generate rolls dicePerPlayer dice with dieFaces faces and returns the face-count summary.
// The result is fully determined by the values the roller returns.
func Generate(roller Roller, dieFaces, dicePerPlayer int) (*models.DicePool, error) {
	if roller == nil {
		return nil, ErrNilRoller
	}

	if dieFaces < 1 {
		return nil, ErrInvalidFaces
	}

	if dicePerPlayer < 1 {
		return nil, ErrInvalidCount
	}

	pool := models.NewDicePool()
	for i := 0; i < dicePerPlayer; i++ {
		face := roller.Roll(dieFaces)
		if face < 1 || face > dieFaces {
			return nil, fmt.Errorf("%w: rolled %d on a %d-sided die", ErrRollOutOfRange, face, dieFaces)
		}
		pool.Counts[face]++
	}

	return pool, nil
}

// AggregateCount sums the dice showing face across every pool
func AggregateCount(pools []*models.DicePool, face int) int {
	total := 0
	for _, pool := range pools {
		total += pool.Count(face)
	}
	return total
}
