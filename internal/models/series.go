package models

import "time"

// Series is one simulated run as it is plotted on a chart
type Series struct {
	// ID is the unique identifier for the series
	ID string

	// Strategy is the roller that produced the outcomes
	Strategy Strategy

	// Label is the legend label for the series
	Label string

	// Rolls is the number of outcomes requested
	Rolls int

	// Outcomes is the ordered outcome sequence. It is not persisted;
	// charts and listings only need Frequencies.
	Outcomes []int `json:"-"`

	// Frequencies is the aggregated outcome counts
	Frequencies FrequencyTable

	// CycleRebuilds is how many times the balanced queue refilled itself
	CycleRebuilds int

	// CreatedAt is when the series was simulated
	CreatedAt time.Time
}
