package discord

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KirkDiggler/balanced-dice/internal/chart"
	"github.com/KirkDiggler/balanced-dice/internal/dice"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/bwmarrin/discordgo"
)

const chartFileName = "dice.png"

// renderSession builds the channel message for a plotted session: the
// chart as an attachment, a frequency field per series and the buttons
// that are valid in the session's state.
func renderSession(session *models.Session, description string) (*discordgo.InteractionResponseData, error) {
	var buf bytes.Buffer
	if err := chart.RenderPNG(&buf, session.Series, nil); err != nil {
		return nil, err
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(session.Series))
	for _, series := range session.Series {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   series.Label,
			Value:  renderFrequencies(series),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       chart.Title(session.Series),
		Description: description,
		Color:       colorSuccess,
		Fields:      fields,
		Image: &discordgo.MessageEmbedImage{
			URL: "attachment://" + chartFileName,
		},
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files: []*discordgo.File{
			{
				Name:        chartFileName,
				ContentType: "image/png",
				Reader:      bytes.NewReader(buf.Bytes()),
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: renderButtons(session),
			},
		},
	}, nil
}

// renderFrequencies formats counts with the expected count in brackets
func renderFrequencies(series *models.Series) string {
	expected := dice.Expected(series.Rolls)

	var b strings.Builder
	b.WriteString("```\n")
	for _, outcome := range models.Outcomes() {
		fmt.Fprintf(&b, "%2d: %d (%.1f)\n", outcome, series.Frequencies.Count(outcome), expected[outcome])
	}
	b.WriteString("```")
	return b.String()
}

func renderButtons(session *models.Session) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent

	if session.State == models.SessionStateOneSeries {
		plotted := session.Series[0]
		buttons = append(buttons, discordgo.Button{
			Label:    "Overlay " + strings.ToLower(plotted.Strategy.Other().Label()),
			Style:    discordgo.PrimaryButton,
			CustomID: overlayButtonID(plotted.Strategy, plotted.Rolls),
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		})
	}

	buttons = append(buttons, discordgo.Button{
		Label:    "Clear",
		Style:    discordgo.DangerButton,
		CustomID: ButtonClear,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🧹",
		},
	})
	return buttons
}
