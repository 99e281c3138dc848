package overlay

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/balanced-dice/internal/services/overlay Service

import "context"

// Service defines the interface for overlay session operations
type Service interface {
	// StartSession creates an empty display session
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetSession returns the current state of a display session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// Simulate plots the chosen strategy, and the other one when overlay is requested
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)

	// Clear drops every plotted series from a session
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)
}
