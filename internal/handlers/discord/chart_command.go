package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// errNothingPlotted is returned when a channel has no chart to show
var errNothingPlotted = errors.New("nothing plotted in this channel")

// ChartCommand handles the /dicechart command, which reposts the chart
// currently plotted in the channel
type ChartCommand struct {
	BaseCommand
	overlayService overlay.Service
	logger         *log.Logger
}

// NewChartCommand creates a new chart command handler
func NewChartCommand(overlayService overlay.Service, logger *log.Logger) *ChartCommand {
	return &ChartCommand{
		BaseCommand: BaseCommand{
			Name:        "dicechart",
			Description: "Show the dice chart plotted in this channel",
		},
		overlayService: overlayService,
		logger:         logger,
	}
}

// Handle processes a Discord interaction for the chart command
func (c *ChartCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	if i.ApplicationCommandData().Name != c.Name {
		return nil
	}

	data, err := renderChannelChart(context.Background(), c.overlayService, i.ChannelID)
	if err != nil {
		if errors.Is(err, errNothingPlotted) {
			return RespondWithEphemeralMessage(s, i, "Nothing is plotted in this channel yet. Use /dice to start.")
		}
		c.logger.Error("error showing chart", "channel", i.ChannelID, "err", err)
		return RespondWithError(s, i, "Failed to load the chart.")
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// renderChannelChart loads the channel's session and renders it
func renderChannelChart(ctx context.Context, overlayService overlay.Service, channelID string) (*discordgo.InteractionResponseData, error) {
	out, err := overlayService.GetSession(ctx, &overlay.GetSessionInput{
		SessionID: channelID,
	})
	if err != nil {
		return nil, err
	}

	session := out.Session
	if session.State.IsEmpty() {
		return nil, errNothingPlotted
	}

	return renderSession(session, fmt.Sprintf("Current chart: %d of %d dice types plotted.",
		len(session.Series), len(models.Strategies())))
}
