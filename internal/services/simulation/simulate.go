package simulation

import (
	"github.com/KirkDiggler/balanced-dice/internal/dice"
	"github.com/KirkDiggler/balanced-dice/internal/models"
)

// Run calls the roller n times and returns the outcomes in call order.
// A non-positive n returns an empty sequence without touching the roller.
func Run(roller dice.Roller, n int) []int {
	if n <= 0 {
		return []int{}
	}

	outcomes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		outcomes = append(outcomes, roller.Next())
	}
	return outcomes
}

// Aggregate counts each outcome of the sequence. Values outside [2,12] are skipped.
func Aggregate(outcomes []int) models.FrequencyTable {
	table := models.NewFrequencyTable()
	for _, outcome := range outcomes {
		if _, ok := table[outcome]; ok {
			table[outcome]++
		}
	}
	return table
}
