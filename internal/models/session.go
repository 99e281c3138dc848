package models

import (
	"time"
)

// SessionState represents how many series a display session currently shows
type SessionState string

const (
	// SessionStateEmpty indicates nothing has been plotted
	SessionStateEmpty SessionState = "empty"

	// SessionStateOneSeries indicates a single strategy is plotted
	SessionStateOneSeries SessionState = "one_series"

	// SessionStateTwoSeries indicates both strategies are plotted and a clear is required
	SessionStateTwoSeries SessionState = "two_series"
)

// SessionStateFor returns the state matching a number of plotted series
func SessionStateFor(plotted int) SessionState {
	switch {
	case plotted <= 0:
		return SessionStateEmpty
	case plotted == 1:
		return SessionStateOneSeries
	default:
		return SessionStateTwoSeries
	}
}

// IsEmpty returns true if nothing is plotted
func (s SessionState) IsEmpty() bool {
	return s == SessionStateEmpty || s == ""
}

// RequiresClear returns true if the session must be cleared before plotting again
func (s SessionState) RequiresClear() bool {
	return s == SessionStateTwoSeries
}

// Session is the overlay state of one display (a window, a terminal run or a Discord channel)
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// State is the current overlay state
	State SessionState

	// Series holds the plotted series in plotting order
	Series []*Series

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}

// HasPlotted reports whether a series for the strategy is already on the chart
func (s *Session) HasPlotted(strategy Strategy) bool {
	for _, series := range s.Series {
		if series.Strategy == strategy {
			return true
		}
	}
	return false
}

// Reset drops every plotted series
func (s *Session) Reset(now time.Time) {
	s.Series = nil
	s.State = SessionStateEmpty
	s.UpdatedAt = now
}

// Plot appends a series and moves the state forward
func (s *Session) Plot(series *Series, now time.Time) {
	s.Series = append(s.Series, series)
	s.State = SessionStateFor(len(s.Series))
	s.UpdatedAt = now
}
