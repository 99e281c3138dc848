package dice

import "github.com/KirkDiggler/balanced-dice/internal/models"

// CycleLength is the number of outcomes in one balanced cycle
const CycleLength = 36

// Table maps an outcome to its weight
type Table map[int]int

// weights is proportional to the number of ways two dice reach each sum
var weights = Table{
	2:  1,
	3:  2,
	4:  3,
	5:  4,
	6:  5,
	7:  6,
	8:  5,
	9:  4,
	10: 3,
	11: 2,
	12: 1,
}

// Distribution returns a copy of the expected distribution of two fair dice
func Distribution() Table {
	table := make(Table, len(weights))
	for outcome, weight := range weights {
		table[outcome] = weight
	}
	return table
}

// Weight returns the weight of an outcome, zero if it is not in the table
func (t Table) Weight(outcome int) int {
	return t[outcome]
}

// Total returns the sum of all weights
func (t Table) Total() int {
	total := 0
	for _, weight := range t {
		total += weight
	}
	return total
}

// Expected returns the expected count of each outcome over n rolls
func Expected(n int) map[int]float64 {
	expected := make(map[int]float64, len(weights))
	for _, outcome := range models.Outcomes() {
		expected[outcome] = float64(n) * float64(weights[outcome]) / CycleLength
	}
	return expected
}
