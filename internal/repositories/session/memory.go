package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/balanced-dice/internal/common/clock"
	"github.com/KirkDiggler/balanced-dice/internal/models"
)

// MemoryConfig holds configuration for the in-memory session repository
type MemoryConfig struct {
	// TTL expires sessions not saved for this long; zero keeps them forever
	TTL time.Duration

	// Clock defaults to the system clock
	Clock clock.Clock
}

type memoryEntry struct {
	session   *models.Session
	expiresAt time.Time
}

// memoryRepository keeps sessions in process memory
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	clock    clock.Clock
}

// NewMemory creates an in-memory session repository that never expires sessions
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]memoryEntry),
		clock:    clock.New(),
	}
}

// NewMemoryWithTTL creates an in-memory session repository that drops
// sessions once they go unsaved for the configured TTL
func NewMemoryWithTTL(cfg *MemoryConfig) (*memoryRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	repo := NewMemory()
	repo.ttl = cfg.TTL
	if cfg.Clock != nil {
		repo.clock = cfg.Clock
	}
	return repo, nil
}

// SaveSession stores a copy of the session and drops expired ones
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return ErrNilSession
	}

	if input.Session.ID == "" {
		return ErrEmptySessionID
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(now)

	entry := memoryEntry{session: copySession(input.Session)}
	if r.ttl > 0 {
		entry.expiresAt = now.Add(r.ttl)
	}
	r.sessions[input.Session.ID] = entry
	return nil
}

// GetSession returns a copy of the stored session
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	now := r.clock.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.sessions[input.SessionID]
	if !ok || entry.expired(now) {
		return nil, ErrSessionNotFound
	}
	return copySession(entry.session), nil
}

// DeleteSession removes the session if present
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, input.SessionID)
	return nil
}

// prune must be called with the write lock held
func (r *memoryRepository) prune(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, entry := range r.sessions {
		if entry.expired(now) {
			delete(r.sessions, id)
		}
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// copySession detaches the stored value from the caller's pointers
func copySession(in *models.Session) *models.Session {
	out := *in
	if len(in.Series) == 0 {
		out.Series = nil
		return &out
	}

	out.Series = make([]*models.Series, 0, len(in.Series))
	for _, series := range in.Series {
		cp := *series
		cp.Outcomes = append([]int(nil), series.Outcomes...)
		cp.Frequencies = make(models.FrequencyTable, len(series.Frequencies))
		for outcome, count := range series.Frequencies {
			cp.Frequencies[outcome] = count
		}
		out.Series = append(out.Series, &cp)
	}
	return &out
}
