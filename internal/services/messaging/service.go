package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/balanced-dice/internal/handlers/input"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/KirkDiggler/balanced-dice/internal/services/simulation"
)

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
	}, nil
}

// GetErrorMessage returns a user-friendly message for a rejected request
func (s *service) GetErrorMessage(ctx context.Context, in *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if in == nil || in.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	errorType := classify(in.Err)
	output := &GetErrorMessageOutput{Type: errorType}

	switch errorType {
	case ErrorTypeInvalidRollCount:
		output.Title = "Error"
		output.Message = "Invalid input: Please input a valid number of rolls."
		if errors.Is(in.Err, input.ErrTooManyRolls) {
			output.Message = "Invalid input: That is too many rolls for one simulation."
		}
	case ErrorTypeInvalidStrategy:
		output.Title = "Invalid choice"
		output.Message = "You have made an invalid choice.\nPlease choose (S)tandard or (B)alanced."
	case ErrorTypeClearRequired:
		output.Title = "Clear required"
		output.Message = "Please clear the graph before plotting again."
		if in.PreferredTone == ToneFunny {
			output.Message = s.pick([]string{
				"Two series is a crowd. Clear the graph before plotting again.",
				"The chart is full! Hit clear and roll again.",
				"Both dice already had their say. Clear the graph first.",
			})
		}
	default:
		output.Title = "Error"
		output.Message = in.Err.Error()
	}

	return output, nil
}

// GetClearedMessage returns the confirmation shown after a clear
func (s *service) GetClearedMessage(ctx context.Context, in *GetClearedMessageInput) (*GetClearedMessageOutput, error) {
	if in == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &GetClearedMessageOutput{
		Title:   "Graphs and frequencies cleared",
		Message: "Graphs and frequencies have been cleared. You can now plot new simulations.",
	}

	if in.PreferredTone == ToneFunny {
		output.Message = s.pick([]string{
			"Fresh chart, fresh dice. Roll away!",
			"Wiped clean. The dice have forgotten everything.",
			"All clear! Time to test fate again.",
		})
	}

	return output, nil
}

// GetSimulationSummary describes the series a simulate call added
func (s *service) GetSimulationSummary(ctx context.Context, in *GetSimulationSummaryInput) (*GetSimulationSummaryOutput, error) {
	if in == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(in.Added) == 0 {
		return &GetSimulationSummaryOutput{
			Title:   "Nothing new to plot",
			Message: "Both strategies are already on the chart.",
		}, nil
	}

	labels := make([]string, 0, len(in.Added))
	lines := make([]string, 0, len(in.Added)+1)
	for _, series := range in.Added {
		labels = append(labels, series.Label)
		line := fmt.Sprintf("Simulated %d rolls with %s.", series.Rolls, strings.ToLower(series.Label))
		if series.Strategy == models.StrategyBalanced {
			line += fmt.Sprintf(" The queue refilled %s.", plural(series.CycleRebuilds, "time"))
		}
		lines = append(lines, line)
	}
	if in.Replaced {
		lines = append(lines, "The previous chart was replaced.")
	}

	return &GetSimulationSummaryOutput{
		Title:   strings.Join(labels, " vs "),
		Message: strings.Join(lines, "\n"),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.IntN(len(messages))]
}

func classify(err error) ErrorType {
	switch {
	case input.IsInvalidRollCount(err), errors.Is(err, simulation.ErrInvalidRollCount):
		return ErrorTypeInvalidRollCount
	case errors.Is(err, models.ErrInvalidStrategy):
		return ErrorTypeInvalidStrategy
	case errors.Is(err, overlay.ErrClearRequired):
		return ErrorTypeClearRequired
	default:
		return ErrorTypeUnknown
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
