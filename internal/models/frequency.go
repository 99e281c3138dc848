package models

const (
	// MinOutcome is the lowest sum of two six-sided dice
	MinOutcome = 2

	// MaxOutcome is the highest sum of two six-sided dice
	MaxOutcome = 12
)

// Outcomes returns every possible outcome in ascending order
func Outcomes() []int {
	outcomes := make([]int, 0, MaxOutcome-MinOutcome+1)
	for v := MinOutcome; v <= MaxOutcome; v++ {
		outcomes = append(outcomes, v)
	}
	return outcomes
}

// IsOutcome reports whether v is a possible sum of two six-sided dice
func IsOutcome(v int) bool {
	return v >= MinOutcome && v <= MaxOutcome
}

// FrequencyTable maps an outcome to the number of times it was observed.
// Every key from MinOutcome to MaxOutcome is present.
type FrequencyTable map[int]int

// NewFrequencyTable returns a table with every outcome set to zero
func NewFrequencyTable() FrequencyTable {
	table := make(FrequencyTable, MaxOutcome-MinOutcome+1)
	for _, v := range Outcomes() {
		table[v] = 0
	}
	return table
}

// Count returns the observed count for an outcome
func (f FrequencyTable) Count(outcome int) int {
	return f[outcome]
}

// Counts returns the counts ordered from MinOutcome to MaxOutcome
func (f FrequencyTable) Counts() []int {
	counts := make([]int, 0, MaxOutcome-MinOutcome+1)
	for _, v := range Outcomes() {
		counts = append(counts, f[v])
	}
	return counts
}

// Total returns the number of observations in the table
func (f FrequencyTable) Total() int {
	total := 0
	for _, v := range Outcomes() {
		total += f[v]
	}
	return total
}

// Max returns the largest count in the table
func (f FrequencyTable) Max() int {
	highest := 0
	for _, v := range Outcomes() {
		if f[v] > highest {
			highest = f[v]
		}
	}
	return highest
}

// Relative returns each count as a share of the total.
// An empty table yields zero for every outcome.
func (f FrequencyTable) Relative() map[int]float64 {
	relative := make(map[int]float64, MaxOutcome-MinOutcome+1)
	total := f.Total()
	for _, v := range Outcomes() {
		if total == 0 {
			relative[v] = 0
			continue
		}
		relative[v] = float64(f[v]) / float64(total)
	}
	return relative
}

// Equal reports whether both tables hold the same count for every outcome
func (f FrequencyTable) Equal(other FrequencyTable) bool {
	for _, v := range Outcomes() {
		if f[v] != other[v] {
			return false
		}
	}
	return true
}
