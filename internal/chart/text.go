package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/balanced-dice/internal/dice"
	"github.com/KirkDiggler/balanced-dice/internal/models"
)

// DefaultTextWidth is the length of the longest bar in a text chart
const DefaultTextWidth = 40

var glyphs = []string{"█", "▒"}

// RenderText writes a horizontal bar chart for terminals. The longest
// bar across all series is width characters long.
func RenderText(w io.Writer, series []*models.Series, width int) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	if width <= 0 {
		width = DefaultTextWidth
	}

	highest := 0
	for _, item := range series {
		if m := item.Frequencies.Max(); m > highest {
			highest = m
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Title(series))
	for _, outcome := range models.Outcomes() {
		for i, item := range series {
			prefix := "   "
			if i == 0 {
				prefix = fmt.Sprintf("%2d ", outcome)
			}
			count := item.Frequencies.Count(outcome)
			length := 0
			if highest > 0 {
				length = count * width / highest
			}
			fmt.Fprintf(&b, "%s| %-*s %d\n",
				prefix, width, strings.Repeat(glyphs[i%len(glyphs)], length), count)
		}
	}

	b.WriteString("\n")
	for i, item := range series {
		fmt.Fprintf(&b, "%s %s (%d rolls)\n", glyphs[i%len(glyphs)], item.Label, item.Rolls)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatFrequencies lists the counts of every series with their share of
// the run and the count expected from a fair pair of dice.
func FormatFrequencies(series []*models.Series) string {
	var b strings.Builder
	for _, item := range series {
		expected := dice.Expected(item.Rolls)
		relative := item.Frequencies.Relative()
		fmt.Fprintf(&b, "Frequencies for %s:\n", item.Label)
		for _, outcome := range models.Outcomes() {
			fmt.Fprintf(&b, " %d: %d (%.1f%%, expected %.1f)\n",
				outcome, item.Frequencies.Count(outcome), 100*relative[outcome], expected[outcome])
		}
		b.WriteString("\n")
	}
	return b.String()
}
