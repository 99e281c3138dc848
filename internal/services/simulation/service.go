package simulation

import (
	"context"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/KirkDiggler/balanced-dice/internal/dice"
	"github.com/KirkDiggler/balanced-dice/internal/metrics"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	// mu guards seeds; every run gets its own roller
	mu      sync.Mutex
	seeds   *rand.Rand
	metrics metrics.Recorder
	logger  *log.Logger
}

// New creates a new simulation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &service{
		seeds:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
		metrics: recorder,
		logger:  logger,
	}, nil
}

// Simulate rolls the chosen strategy the requested number of times and aggregates the outcomes
func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Strategy.IsValid() {
		return nil, models.ErrInvalidStrategy
	}

	if input.Rolls <= 0 {
		return nil, ErrInvalidRollCount
	}

	cfg := &dice.Config{Seed: s.nextSeed()}

	var (
		outcomes []int
		rebuilds int
	)
	switch input.Strategy {
	case models.StrategyBalanced:
		roller := dice.NewBalanced(cfg)
		outcomes = Run(roller, input.Rolls)
		rebuilds = roller.Rebuilds()
	default:
		outcomes = Run(dice.New(cfg), input.Rolls)
	}

	s.metrics.SimulationCompleted(input.Strategy, input.Rolls, rebuilds)
	s.logger.Debug("simulation completed",
		"strategy", input.Strategy,
		"rolls", input.Rolls,
		"rebuilds", rebuilds,
	)

	return &SimulateOutput{
		Strategy:      input.Strategy,
		Outcomes:      outcomes,
		Frequencies:   Aggregate(outcomes),
		CycleRebuilds: rebuilds,
	}, nil
}

func (s *service) nextSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.seeds.Int64()
	if seed == 0 {
		seed = 1
	}
	return seed
}
