package dice

import (
	"math/rand/v2"

	"github.com/KirkDiggler/balanced-dice/internal/models"
)

// BuildCycle expands the table so each outcome appears weight times,
// then shuffles it.
func BuildCycle(table Table, random *rand.Rand) []int {
	cycle := make([]int, 0, table.Total())
	// Expand in outcome order so a seeded shuffle is reproducible.
	for _, outcome := range models.Outcomes() {
		for i := 0; i < table.Weight(outcome); i++ {
			cycle = append(cycle, outcome)
		}
	}

	random.Shuffle(len(cycle), func(i, j int) {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	})
	return cycle
}

// Balanced pops outcomes from a shuffled cycle and rebuilds the cycle
// whenever it runs dry. Every 36 rolls starting at a cycle boundary hold
// each outcome exactly weight times.
//
// A Balanced roller is owned by one simulation and is not safe for
// concurrent use.
type Balanced struct {
	random   *rand.Rand
	table    Table
	queue    []int
	rebuilds int
}

// NewBalanced creates a balanced roller with a freshly shuffled cycle
func NewBalanced(cfg *Config) *Balanced {
	random := newRandom(cfg)
	table := Distribution()

	return &Balanced{
		random: random,
		table:  table,
		queue:  BuildCycle(table, random),
	}
}

// Next removes and returns the last outcome of the queue.
// An empty queue is rebuilt and reshuffled first.
func (b *Balanced) Next() int {
	if len(b.queue) == 0 {
		b.queue = BuildCycle(b.table, b.random)
		b.rebuilds++
	}

	last := len(b.queue) - 1
	outcome := b.queue[last]
	b.queue = b.queue[:last]
	return outcome
}

// Remaining returns how many outcomes are left in the current cycle
func (b *Balanced) Remaining() int {
	return len(b.queue)
}

// Rebuilds returns how many times the queue refilled itself after running dry
func (b *Balanced) Rebuilds() int {
	return b.rebuilds
}
