package discord

import (
	"image/png"
	"io"
	"testing"

	"github.com/KirkDiggler/balanced-dice/internal/handlers/input"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type DiceCommandTestSuite struct {
	suite.Suite
}

func TestDiceCommandTestSuite(t *testing.T) {
	suite.Run(t, new(DiceCommandTestSuite))
}

func rollsOption(n float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  optionRolls,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: n,
	}
}

func strategyOption(v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  optionStrategy,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

func overlayOption(v bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  optionOverlay,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: v,
	}
}

func (s *DiceCommandTestSuite) series(strategy models.Strategy, rolls int) *models.Series {
	table := models.NewFrequencyTable()
	table[7] = rolls
	return &models.Series{
		ID:          "series-" + string(strategy),
		Strategy:    strategy,
		Label:       strategy.Label(),
		Rolls:       rolls,
		Frequencies: table,
	}
}

func (s *DiceCommandTestSuite) TestCommandDefinition() {
	cmd := NewDiceCommand(nil, nil, 500, nil)
	def := cmd.GetCommand()

	s.Equal("dice", def.Name)
	s.Require().Len(def.Options, 3)
	s.Equal(optionRolls, def.Options[0].Name)
	s.True(def.Options[0].Required)
	s.Equal(500.0, def.Options[0].MaxValue)
	s.Require().Len(def.Options[1].Choices, 2)
	s.Equal("standard", def.Options[1].Choices[0].Value)
	s.Equal("Balanced", def.Options[1].Choices[1].Name)
	s.False(def.Options[2].Required)
}

func (s *DiceCommandTestSuite) TestParseDiceOptions() {
	testCases := []struct {
		name    string
		options []*discordgo.ApplicationCommandInteractionDataOption
		want    *simulationRequest
		wantErr error
	}{
		{
			name:    "without overlay",
			options: []*discordgo.ApplicationCommandInteractionDataOption{rollsOption(100), strategyOption("balanced")},
			want:    &simulationRequest{Strategy: models.StrategyBalanced, Rolls: 100},
		},
		{
			name:    "with overlay",
			options: []*discordgo.ApplicationCommandInteractionDataOption{strategyOption("standard"), overlayOption(true), rollsOption(3)},
			want:    &simulationRequest{Strategy: models.StrategyStandard, Rolls: 3, Overlay: true},
		},
		{
			name:    "zero rolls",
			options: []*discordgo.ApplicationCommandInteractionDataOption{rollsOption(0), strategyOption("standard")},
			wantErr: input.ErrNonPositiveRollCount,
		},
		{
			name:    "too many rolls",
			options: []*discordgo.ApplicationCommandInteractionDataOption{rollsOption(1001), strategyOption("standard")},
			wantErr: input.ErrTooManyRolls,
		},
		{
			name:    "unknown strategy",
			options: []*discordgo.ApplicationCommandInteractionDataOption{rollsOption(10), strategyOption("loaded")},
			wantErr: models.ErrInvalidStrategy,
		},
		{
			name:    "missing rolls",
			options: []*discordgo.ApplicationCommandInteractionDataOption{strategyOption("standard")},
			wantErr: input.ErrNotANumber,
		},
		{
			name:    "missing strategy",
			options: []*discordgo.ApplicationCommandInteractionDataOption{rollsOption(10)},
			wantErr: models.ErrInvalidStrategy,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := parseDiceOptions(tc.options, 1000)
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				s.Nil(got)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *DiceCommandTestSuite) TestOverlayButtonID() {
	id := overlayButtonID(models.StrategyBalanced, 250)
	s.Equal("dice_overlay:balanced:250", id)

	req, err := parseOverlayButtonID(id, 1000)
	s.Require().NoError(err)
	s.Equal(&simulationRequest{Strategy: models.StrategyBalanced, Rolls: 250}, req)
}

func (s *DiceCommandTestSuite) TestParseOverlayButtonIDRejects() {
	testCases := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "wrong prefix", id: "other:balanced:10", wantErr: errMalformedButton},
		{name: "missing part", id: "dice_overlay:balanced", wantErr: errMalformedButton},
		{name: "not a number", id: "dice_overlay:balanced:ten", wantErr: errMalformedButton},
		{name: "bad strategy", id: "dice_overlay:loaded:10", wantErr: models.ErrInvalidStrategy},
		{name: "above limit", id: "dice_overlay:standard:5000", wantErr: input.ErrTooManyRolls},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req, err := parseOverlayButtonID(tc.id, 1000)
			s.ErrorIs(err, tc.wantErr)
			s.Nil(req)
		})
	}
}

func (s *DiceCommandTestSuite) TestRenderSingleSeries() {
	standard := s.series(models.StrategyStandard, 36)
	session := &models.Session{
		ID:     "channel-1",
		State:  models.SessionStateOneSeries,
		Series: []*models.Series{standard},
	}

	data, err := renderSession(session, "Simulated 36 rolls.")
	s.Require().NoError(err)

	s.Require().Len(data.Embeds, 1)
	embed := data.Embeds[0]
	s.Equal("Standard dice distribution", embed.Title)
	s.Equal("Simulated 36 rolls.", embed.Description)
	s.Equal("attachment://dice.png", embed.Image.URL)
	s.Require().Len(embed.Fields, 1)
	s.Contains(embed.Fields[0].Value, " 7: 36 (6.0)\n")
	s.Contains(embed.Fields[0].Value, " 2: 0 (1.0)\n")

	s.Require().Len(data.Files, 1)
	s.Equal("dice.png", data.Files[0].Name)
	_, err = png.Decode(data.Files[0].Reader)
	s.NoError(err)

	row, ok := data.Components[0].(discordgo.ActionsRow)
	s.Require().True(ok)
	s.Require().Len(row.Components, 2)
	overlayButton := row.Components[0].(discordgo.Button)
	s.Equal("dice_overlay:standard:36", overlayButton.CustomID)
	s.Equal("Overlay balanced dice", overlayButton.Label)
	s.Equal(ButtonClear, row.Components[1].(discordgo.Button).CustomID)
}

func (s *DiceCommandTestSuite) TestRenderTwoSeriesOnlyOffersClear() {
	standard := s.series(models.StrategyStandard, 10)
	balanced := s.series(models.StrategyBalanced, 10)
	session := &models.Session{
		ID:     "channel-1",
		State:  models.SessionStateTwoSeries,
		Series: []*models.Series{standard, balanced},
	}

	data, err := renderSession(session, "")
	s.Require().NoError(err)

	s.Equal("Simulation results", data.Embeds[0].Title)
	s.Len(data.Embeds[0].Fields, 2)

	row := data.Components[0].(discordgo.ActionsRow)
	s.Require().Len(row.Components, 1)
	s.Equal(ButtonClear, row.Components[0].(discordgo.Button).CustomID)

	n, err := io.Copy(io.Discard, data.Files[0].Reader)
	s.NoError(err)
	s.Positive(n)
}
