package messaging

import (
	"github.com/KirkDiggler/balanced-dice/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain, instructional tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// ErrorType classifies a rejected request
type ErrorType string

const (
	ErrorTypeInvalidRollCount ErrorType = "invalid_roll_count"
	ErrorTypeInvalidStrategy  ErrorType = "invalid_strategy"
	ErrorTypeClearRequired    ErrorType = "clear_required"
	ErrorTypeUnknown          ErrorType = "unknown"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for picking message variants
	Seed int64
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput is the output for GetErrorMessage
type GetErrorMessageOutput struct {
	Type    ErrorType
	Title   string
	Message string
}

// GetClearedMessageInput contains parameters for the clear confirmation
type GetClearedMessageInput struct {
	// Cleared is the number of series removed
	Cleared int

	PreferredTone MessageTone
}

// GetClearedMessageOutput is the output for GetClearedMessage
type GetClearedMessageOutput struct {
	Title   string
	Message string
}

// GetSimulationSummaryInput contains the series to summarise
type GetSimulationSummaryInput struct {
	Added []*models.Series

	// Replaced is true when the previous chart was discarded
	Replaced bool
}

// GetSimulationSummaryOutput is the output for GetSimulationSummary
type GetSimulationSummaryOutput struct {
	Title   string
	Message string
}
