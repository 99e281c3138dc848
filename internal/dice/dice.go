// Package dice rolls the sum of two six-sided dice, either independently
// or from a balanced queue that reproduces the exact distribution every cycle.
package dice

import (
	"math/rand/v2"
	"time"
)

// Sides is the number of faces on each die
const Sides = 6

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/balanced-dice/internal/dice Roller

// Roller produces one outcome in [2,12] per call
type Roller interface {
	Next() int
}

// Config for dice rollers
type Config struct {
	// Optional seed for testing
	Seed int64
}

func newRandom(cfg *Config) *rand.Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Standard rolls two independent dice
type Standard struct {
	random *rand.Rand
}

// New creates a new standard roller
func New(cfg *Config) *Standard {
	return &Standard{
		random: newRandom(cfg),
	}
}

// roll throws one die
func (r *Standard) roll() int {
	return r.random.IntN(Sides) + 1
}

// Next returns the sum of two six-sided dice
func (r *Standard) Next() int {
	return r.roll() + r.roll()
}
