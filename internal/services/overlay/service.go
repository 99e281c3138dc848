package overlay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/KirkDiggler/balanced-dice/internal/common/clock"
	"github.com/KirkDiggler/balanced-dice/internal/common/uuid"
	"github.com/KirkDiggler/balanced-dice/internal/metrics"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	sessionRepo "github.com/KirkDiggler/balanced-dice/internal/repositories/session"
	"github.com/KirkDiggler/balanced-dice/internal/services/simulation"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	simulator     simulation.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
	metrics       metrics.Recorder
	logger        *log.Logger

	// locks holds one *sync.Mutex per session ID, held across load and save
	locks sync.Map
}

// New creates a new overlay service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Simulator == nil {
		return nil, ErrNilSimulator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		simulator:     cfg.Simulator,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		metrics:       recorder,
		logger:        logger,
	}, nil
}

// StartSession creates an empty display session
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = s.uuidGenerator.NewUUID()
	}

	unlock := s.lock(sessionID)
	defer unlock()

	session := s.newSession(sessionID)
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &StartSessionOutput{
		Session: session,
	}, nil
}

// GetSession returns the current state of a display session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: session,
	}, nil
}

// Simulate plots the chosen strategy, and the other one when overlay is requested.
//
//	empty      --simulate-->          one series (two when overlay is on)
//	one series --simulate, overlay--> two series
//	one series --simulate-->          one series (chart replaced)
//	two series --simulate-->          ErrClearRequired, nothing changes
func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Strategy.IsValid() {
		return nil, models.ErrInvalidStrategy
	}

	if input.Rolls <= 0 {
		return nil, simulation.ErrInvalidRollCount
	}

	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	unlock := s.lock(input.SessionID)
	defer unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.State.RequiresClear() {
		s.metrics.OverlayConflict()
		s.logger.Info("simulate rejected until clear", "session", session.ID)
		return nil, ErrClearRequired
	}

	now := s.clock.Now()
	replaced := false
	if !input.Overlay && !session.State.IsEmpty() {
		session.Reset(now)
		replaced = true
	}

	var planned []models.Strategy
	if !session.HasPlotted(input.Strategy) {
		planned = append(planned, input.Strategy)
	}
	if input.Overlay && !session.HasPlotted(input.Strategy.Other()) {
		planned = append(planned, input.Strategy.Other())
	}

	added := make([]*models.Series, 0, len(planned))
	for _, strategy := range planned {
		series, err := s.simulate(ctx, strategy, input.Rolls)
		if err != nil {
			return nil, err
		}
		session.Plot(series, now)
		added = append(added, series)
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug("session plotted",
		"session", session.ID,
		"state", session.State,
		"added", len(added),
		"replaced", replaced,
	)

	return &SimulateOutput{
		Session:  session,
		Added:    added,
		Replaced: replaced,
	}, nil
}

// Clear drops every plotted series from a session. The stored session is
// deleted; a later load starts from an empty one.
func (s *service) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	unlock := s.lock(input.SessionID)
	defer unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	cleared := len(session.Series)
	session.Reset(s.clock.Now())

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: session.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	return &ClearOutput{
		Session: session,
		Cleared: cleared,
	}, nil
}

// lock serialises read-modify-write cycles on one session within this process
func (s *service) lock(sessionID string) func() {
	value, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *service) simulate(ctx context.Context, strategy models.Strategy, rolls int) (*models.Series, error) {
	output, err := s.simulator.Simulate(ctx, &simulation.SimulateInput{
		Strategy: strategy,
		Rolls:    rolls,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to simulate %s: %w", strategy, err)
	}

	return &models.Series{
		ID:            s.uuidGenerator.NewUUID(),
		Strategy:      strategy,
		Label:         strategy.Label(),
		Rolls:         rolls,
		Outcomes:      output.Outcomes,
		Frequencies:   output.Frequencies,
		CycleRebuilds: output.CycleRebuilds,
		CreatedAt:     s.clock.Now(),
	}, nil
}

// loadSession returns the stored session or a new empty one
func (s *service) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return s.newSession(sessionID), nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (s *service) newSession(sessionID string) *models.Session {
	now := s.clock.Now()
	return &models.Session{
		ID:        sessionID,
		State:     models.SessionStateEmpty,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
