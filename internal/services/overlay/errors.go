package overlay

// OverlayError is a custom error type for overlay session errors
type OverlayError string

// Error implements the error interface
func (e OverlayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrClearRequired    OverlayError = "please clear the graph before plotting again"
	ErrEmptySessionID   OverlayError = "session ID cannot be empty"
	ErrNilInput         OverlayError = "input cannot be nil"
	ErrNilConfig        OverlayError = "config cannot be nil"
	ErrNilSessionRepo   OverlayError = "session repository cannot be nil"
	ErrNilSimulator     OverlayError = "simulation service cannot be nil"
	ErrNilClock         OverlayError = "clock cannot be nil"
	ErrNilUUIDGenerator OverlayError = "UUID generator cannot be nil"
)
