package chart

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/stretchr/testify/suite"
)

type ChartTestSuite struct {
	suite.Suite

	standard *models.Series
	balanced *models.Series
}

func TestChartTestSuite(t *testing.T) {
	suite.Run(t, new(ChartTestSuite))
}

func (s *ChartTestSuite) SetupTest() {
	s.standard = s.series(models.StrategyStandard, map[int]int{2: 1, 7: 4, 12: 1})
	s.balanced = s.series(models.StrategyBalanced, map[int]int{6: 2, 7: 2, 8: 2})
}

func (s *ChartTestSuite) series(strategy models.Strategy, counts map[int]int) *models.Series {
	table := models.NewFrequencyTable()
	for outcome, count := range counts {
		table[outcome] = count
	}
	return &models.Series{
		ID:          string(strategy),
		Strategy:    strategy,
		Label:       strategy.Label(),
		Rolls:       table.Total(),
		Frequencies: table,
	}
}

func (s *ChartTestSuite) TestTitle() {
	s.Equal("Standard dice distribution", Title([]*models.Series{s.standard}))
	s.Equal("Simulation results", Title([]*models.Series{s.standard, s.balanced}))
}

func (s *ChartTestSuite) TestRenderPNGSingleSeries() {
	var buf bytes.Buffer

	err := RenderPNG(&buf, []*models.Series{s.standard}, &Options{Width: 800, Height: 400})
	s.Require().NoError(err)

	img, err := png.Decode(&buf)
	s.Require().NoError(err)
	s.Equal(800, img.Bounds().Dx())
	s.Equal(400, img.Bounds().Dy())
}

func (s *ChartTestSuite) TestRenderPNGOverlay() {
	var buf bytes.Buffer

	err := RenderPNG(&buf, []*models.Series{s.standard, s.balanced}, nil)
	s.Require().NoError(err)

	_, err = png.Decode(&buf)
	s.NoError(err)
}

func (s *ChartTestSuite) TestRenderPNGWithoutSeries() {
	var buf bytes.Buffer

	s.ErrorIs(RenderPNG(&buf, nil, nil), ErrNoSeries)
	s.Zero(buf.Len())
}

func (s *ChartTestSuite) TestBarLabels() {
	s.Equal("7", barLabel(7, s.standard, 1))
	s.Equal("7S", barLabel(7, s.standard, 2))
	s.Equal("12B", barLabel(12, s.balanced, 2))
}

func (s *ChartTestSuite) TestRenderTextScalesToLongestBar() {
	var buf bytes.Buffer

	err := RenderText(&buf, []*models.Series{s.standard}, 8)
	s.Require().NoError(err)

	out := buf.String()
	s.Contains(out, "Standard dice distribution")
	s.Contains(out, " 7 | ████████ 4")
	s.Contains(out, " 2 | ██       1")
	s.Contains(out, " 3 |          0")
	s.Contains(out, "█ Standard dice (6 rolls)")
}

func (s *ChartTestSuite) TestRenderTextOverlay() {
	var buf bytes.Buffer

	err := RenderText(&buf, []*models.Series{s.standard, s.balanced}, 4)
	s.Require().NoError(err)

	lines := strings.Split(buf.String(), "\n")
	s.Contains(lines, " 7 | ████ 4")
	s.Contains(lines, "   | ▒▒   2")
	s.Contains(lines, "▒ Balanced dice (6 rolls)")
}

func (s *ChartTestSuite) TestRenderTextWithoutSeries() {
	var buf bytes.Buffer

	s.ErrorIs(RenderText(&buf, nil, 0), ErrNoSeries)
}

func (s *ChartTestSuite) TestFormatFrequencies() {
	out := FormatFrequencies([]*models.Series{s.standard, s.balanced})

	s.Contains(out, "Frequencies for Standard dice:\n 2: 1 (16.7%, expected 0.2)\n")
	s.Contains(out, " 7: 4 (66.7%, expected 1.0)\n")
	s.Contains(out, "Frequencies for Balanced dice:\n 2: 0 (0.0%, expected 0.2)\n")
	s.Contains(out, " 6: 2 (33.3%, expected 0.8)\n")
	s.Less(strings.Index(out, "Standard dice"), strings.Index(out, "Balanced dice"))
	s.Equal(2*len(models.Outcomes())+4, strings.Count(out, "\n"))
}
