package simulation

import (
	"github.com/KirkDiggler/balanced-dice/internal/metrics"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/charmbracelet/log"
)

// Config holds configuration for the simulation service
type Config struct {
	// Seed makes every run reproducible; zero seeds from the clock
	Seed int64

	// Metrics receives one event per finished run (optional)
	Metrics metrics.Recorder

	// Logger for debug output (optional)
	Logger *log.Logger
}

// SimulateInput contains parameters for a simulation run
type SimulateInput struct {
	// Strategy selects the roller
	Strategy models.Strategy

	// Rolls is the number of outcomes to produce, validated by the caller
	Rolls int
}

// SimulateOutput contains the result of a simulation run
type SimulateOutput struct {
	// Strategy is the roller that produced the outcomes
	Strategy models.Strategy

	// Outcomes is the ordered outcome sequence
	Outcomes []int

	// Frequencies is the aggregated outcome counts
	Frequencies models.FrequencyTable

	// CycleRebuilds is how many times the balanced queue refilled itself
	CycleRebuilds int
}
