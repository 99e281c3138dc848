package models

import "strings"

// ModelError is a custom error type for model validation errors
type ModelError string

// Error implements the error interface
func (e ModelError) Error() string {
	return string(e)
}

const (
	// ErrInvalidStrategy is returned when a strategy token is not recognised
	ErrInvalidStrategy ModelError = "invalid strategy: choose (S)tandard or (B)alanced"
)

// Strategy identifies which roller produces outcomes
type Strategy string

const (
	// StrategyStandard sums two independent uniform draws
	StrategyStandard Strategy = "standard"

	// StrategyBalanced pops from a shuffled queue holding one full distribution cycle
	StrategyBalanced Strategy = "balanced"
)

// Strategies lists every strategy in display order
func Strategies() []Strategy {
	return []Strategy{StrategyStandard, StrategyBalanced}
}

// ParseStrategy accepts the full name or its first letter, case-insensitively
func ParseStrategy(token string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "s", "standard":
		return StrategyStandard, nil
	case "b", "balanced":
		return StrategyBalanced, nil
	default:
		return "", ErrInvalidStrategy
	}
}

// IsValid reports whether the strategy is one of the known strategies
func (s Strategy) IsValid() bool {
	return s == StrategyStandard || s == StrategyBalanced
}

// Other returns the strategy used for the overlay series
func (s Strategy) Other() Strategy {
	if s == StrategyBalanced {
		return StrategyStandard
	}
	return StrategyBalanced
}

// Title returns the capitalised strategy name
func (s Strategy) Title() string {
	switch s {
	case StrategyStandard:
		return "Standard"
	case StrategyBalanced:
		return "Balanced"
	default:
		return string(s)
	}
}

// Label returns the legend label of a series produced by this strategy
func (s Strategy) Label() string {
	return s.Title() + " dice"
}
