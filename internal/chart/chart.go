// Package chart renders plotted series as bar charts and frequency listings.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 1024
	defaultHeight = 480
	sidePadding   = 100
)

// ErrNoSeries is returned when there is nothing to draw
var ErrNoSeries = errors.New("chart: no series to render")

// palette colours series in plotting order
var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorOrange,
}

// Options controls the size and title of a rendered chart
type Options struct {
	Title  string
	Width  int
	Height int
}

// Title returns the default chart title for the plotted series
func Title(series []*models.Series) string {
	if len(series) == 1 {
		return series[0].Label + " distribution"
	}
	return "Simulation results"
}

// RenderPNG draws the series side by side, one group of bars per outcome
func RenderPNG(w io.Writer, series []*models.Series, opts *Options) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	if opts == nil {
		opts = &Options{}
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}
	title := opts.Title
	if title == "" {
		title = Title(series)
	}

	bars := make([]chart.Value, 0, len(models.Outcomes())*len(series))
	for _, outcome := range models.Outcomes() {
		for i, item := range series {
			colour := palette[i%len(palette)]
			bars = append(bars, chart.Value{
				Label: barLabel(outcome, item, len(series)),
				Value: float64(item.Frequencies.Count(outcome)),
				Style: chart.Style{
					FillColor:   colour.WithAlpha(180),
					StrokeColor: drawing.ColorBlack,
					StrokeWidth: 1,
				},
			})
		}
	}

	top := 0
	for _, item := range series {
		if m := item.Frequencies.Max(); m > top {
			top = m
		}
	}
	if top == 0 {
		top = 1
	}

	slot := (width - sidePadding) / len(bars)
	if slot < 3 {
		slot = 3
	}

	bc := chart.BarChart{
		Title: fmt.Sprintf("%s (%s)", title, legend(series)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Width:      width,
		Height:     height,
		BarWidth:   slot * 2 / 3,
		BarSpacing: slot - slot*2/3,
		Bars:       bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top) * 1.1},
		},
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func barLabel(outcome int, series *models.Series, count int) string {
	label := strconv.Itoa(outcome)
	if title := series.Strategy.Title(); count > 1 && title != "" {
		label += title[:1]
	}
	return label
}

func legend(series []*models.Series) string {
	names := []string{"blue", "orange"}
	out := ""
	for i, item := range series {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s", names[i%len(names)], item.Label)
	}
	return out
}
