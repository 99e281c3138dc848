// Package uuid generates identifiers for sessions and series.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/balanced-dice/internal/common/uuid UUID

// UUID generates unique identifiers
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates time-ordered version 7 UUIDs, so session IDs and
// the chart files named after them sort by creation time
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID, falling back to a random one if the
// time-ordered generator fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
