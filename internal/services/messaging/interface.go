package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/balanced-dice/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns a user-friendly message for a rejected request
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetClearedMessage returns the confirmation shown after a clear
	GetClearedMessage(ctx context.Context, input *GetClearedMessageInput) (*GetClearedMessageOutput, error)

	// GetSimulationSummary describes the series a simulate call added
	GetSimulationSummary(ctx context.Context, input *GetSimulationSummaryInput) (*GetSimulationSummaryOutput, error)
}
