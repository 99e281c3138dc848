package simulation

// SimulationError is a custom error type for simulation errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput         SimulationError = "input cannot be nil"
	ErrInvalidRollCount SimulationError = "number of rolls must be positive"
)
