package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/liarsdice/internal/dice Roller

// Roller is the source of randomness for dice
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int
}

// RandomRoller provides dice rolling functionality backed by math/rand
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	// rand.Rand is not safe for concurrent use
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// SequenceRoller replays a fixed sequence of values, wrapping around at the end
type SequenceRoller struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence creates a roller that returns values in order
func NewSequence(values ...int) *SequenceRoller {
	return &SequenceRoller{
		values: values,
	}
}

// Roll returns the next value of the sequence, ignoring sides
func (r *SequenceRoller) Roll(sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 1
	}

	value := r.values[r.next%len(r.values)]
	r.next++
	return value
}
