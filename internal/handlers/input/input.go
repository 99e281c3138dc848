// Package input validates what users type before the simulation core runs.
package input

import (
	"errors"
	"strconv"
	"strings"

	"github.com/KirkDiggler/balanced-dice/internal/models"
)

// InputError is a custom error type for rejected user input
type InputError string

// Error implements the error interface
func (e InputError) Error() string {
	return string(e)
}

const (
	ErrNotANumber           InputError = "number of rolls must be a whole number"
	ErrNonPositiveRollCount InputError = "number of rolls must be positive"
	ErrTooManyRolls         InputError = "number of rolls is too large"
)

// DefaultMaxRolls bounds a single request when no limit is configured
const DefaultMaxRolls = 1_000_000

// IsInvalidRollCount reports whether err rejects a roll count
func IsInvalidRollCount(err error) bool {
	return errors.Is(err, ErrNotANumber) ||
		errors.Is(err, ErrNonPositiveRollCount) ||
		errors.Is(err, ErrTooManyRolls)
}

// ParseRollCount parses a positive roll count no greater than maxRolls.
// A non-positive maxRolls uses DefaultMaxRolls.
func ParseRollCount(text string, maxRolls int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrNotANumber
	}
	return ValidateRollCount(n, maxRolls)
}

// ValidateRollCount checks an already numeric roll count
func ValidateRollCount(n int, maxRolls int) (int, error) {
	if maxRolls <= 0 {
		maxRolls = DefaultMaxRolls
	}

	if n <= 0 {
		return 0, ErrNonPositiveRollCount
	}

	if n > maxRolls {
		return 0, ErrTooManyRolls
	}

	return n, nil
}

// ParseYesNo accepts y or yes, case-insensitively
func ParseYesNo(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true
	}
	return false
}

// ParseStrategy accepts s, standard, b or balanced
func ParseStrategy(text string) (models.Strategy, error) {
	return models.ParseStrategy(text)
}
