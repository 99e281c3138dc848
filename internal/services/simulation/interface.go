package simulation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/balanced-dice/internal/services/simulation Service

import "context"

// Service defines the interface for simulation operations
type Service interface {
	// Simulate rolls the chosen strategy the requested number of times and aggregates the outcomes
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)
}
