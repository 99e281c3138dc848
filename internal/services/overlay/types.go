package overlay

import (
	"github.com/KirkDiggler/balanced-dice/internal/common/clock"
	"github.com/KirkDiggler/balanced-dice/internal/common/uuid"
	"github.com/KirkDiggler/balanced-dice/internal/metrics"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	sessionRepo "github.com/KirkDiggler/balanced-dice/internal/repositories/session"
	"github.com/KirkDiggler/balanced-dice/internal/services/simulation"
	"github.com/charmbracelet/log"
)

// Config holds configuration for the overlay service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Simulator     simulation.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional
	Metrics metrics.Recorder
	Logger  *log.Logger
}

// StartSessionInput contains parameters for starting a display session
type StartSessionInput struct {
	// SessionID reuses a caller-chosen ID such as a channel ID; empty generates one
	SessionID string
}

// StartSessionOutput contains the newly created session
type StartSessionOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for looking up a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session, empty if it was never used
type GetSessionOutput struct {
	Session *models.Session
}

// SimulateInput contains parameters for plotting a strategy
type SimulateInput struct {
	// SessionID is the display session to plot into
	SessionID string

	// Strategy is the strategy chosen by the user
	Strategy models.Strategy

	// Rolls is the number of rolls per series, validated by the caller
	Rolls int

	// Overlay keeps the current chart and adds the other strategy
	Overlay bool
}

// SimulateOutput contains the result of plotting
type SimulateOutput struct {
	// Session is the session after plotting
	Session *models.Session

	// Added holds the series created by this call in plotting order
	Added []*models.Series

	// Replaced is true when a previous chart was discarded because overlay was off
	Replaced bool
}

// ClearInput contains parameters for clearing a session
type ClearInput struct {
	SessionID string
}

// ClearOutput contains the result of clearing a session
type ClearOutput struct {
	// Session is the now empty session
	Session *models.Session

	// Cleared is the number of series removed
	Cleared int
}
