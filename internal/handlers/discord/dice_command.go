package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/balanced-dice/internal/handlers/input"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/KirkDiggler/balanced-dice/internal/services/messaging"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Command option names
const (
	optionRolls    = "rolls"
	optionStrategy = "strategy"
	optionOverlay  = "overlay"
)

// errMalformedButton is returned for a button ID this bot did not create
var errMalformedButton = errors.New("malformed overlay button")

// simulationRequest is a validated /dice invocation
type simulationRequest struct {
	Strategy models.Strategy
	Rolls    int
	Overlay  bool
}

// DiceCommand handles the /dice command
type DiceCommand struct {
	BaseCommand
	overlayService   overlay.Service
	messagingService messaging.Service
	maxRolls         int
	logger           *log.Logger
}

// NewDiceCommand creates a new dice command handler
func NewDiceCommand(overlayService overlay.Service, messagingService messaging.Service, maxRolls int, logger *log.Logger) *DiceCommand {
	minRolls := 1.0
	strategyChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Strategies()))
	for _, strategy := range models.Strategies() {
		strategyChoices = append(strategyChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  strategy.Title(),
			Value: string(strategy),
		})
	}

	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        "dice",
			Description: "Simulate rolling two dice and chart the outcomes",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optionRolls,
					Description: "Number of rolls to simulate",
					Required:    true,
					MinValue:    &minRolls,
					MaxValue:    float64(maxRolls),
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionStrategy,
					Description: "Standard dice or balanced dice",
					Required:    true,
					Choices:     strategyChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        optionOverlay,
					Description: "Keep the current chart and add the other dice type",
				},
			},
		},
		overlayService:   overlayService,
		messagingService: messagingService,
		maxRolls:         maxRolls,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	ctx := context.Background()

	req, err := parseDiceOptions(data.Options, c.maxRolls)
	if err != nil {
		return respondRejected(ctx, s, i, c.messagingService, err)
	}

	return runSimulation(ctx, s, i, c.overlayService, c.messagingService, req, c.logger)
}

// parseDiceOptions validates the options of a /dice invocation
func parseDiceOptions(options []*discordgo.ApplicationCommandInteractionDataOption, maxRolls int) (*simulationRequest, error) {
	req := &simulationRequest{}
	var rollsSet, strategySet bool

	for _, opt := range options {
		switch opt.Name {
		case optionRolls:
			rolls, err := input.ValidateRollCount(int(opt.IntValue()), maxRolls)
			if err != nil {
				return nil, err
			}
			req.Rolls = rolls
			rollsSet = true
		case optionStrategy:
			strategy, err := input.ParseStrategy(opt.StringValue())
			if err != nil {
				return nil, err
			}
			req.Strategy = strategy
			strategySet = true
		case optionOverlay:
			req.Overlay = opt.BoolValue()
		}
	}

	if !rollsSet {
		return nil, input.ErrNotANumber
	}
	if !strategySet {
		return nil, models.ErrInvalidStrategy
	}
	return req, nil
}

// overlayButtonID encodes the plotted strategy and roll count into a button ID
func overlayButtonID(strategy models.Strategy, rolls int) string {
	return fmt.Sprintf("%s:%s:%d", ButtonOverlayPrefix, strategy, rolls)
}

// parseOverlayButtonID reverses overlayButtonID
func parseOverlayButtonID(customID string, maxRolls int) (*simulationRequest, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != ButtonOverlayPrefix {
		return nil, errMalformedButton
	}

	strategy, err := input.ParseStrategy(parts[1])
	if err != nil {
		return nil, err
	}

	rolls, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, errMalformedButton
	}
	rolls, err = input.ValidateRollCount(rolls, maxRolls)
	if err != nil {
		return nil, err
	}

	return &simulationRequest{Strategy: strategy, Rolls: rolls}, nil
}

// runSimulation plots into the channel's session and posts the chart
func runSimulation(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, overlayService overlay.Service, messagingService messaging.Service, req *simulationRequest, logger *log.Logger) error {
	result, err := overlayService.Simulate(ctx, &overlay.SimulateInput{
		SessionID: i.ChannelID,
		Strategy:  req.Strategy,
		Rolls:     req.Rolls,
		Overlay:   req.Overlay,
	})
	if err != nil {
		return respondRejected(ctx, s, i, messagingService, err)
	}

	summary, err := messagingService.GetSimulationSummary(ctx, &messaging.GetSimulationSummaryInput{
		Added:    result.Added,
		Replaced: result.Replaced,
	})
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	data, err := renderSession(result.Session, summary.Message)
	if err != nil {
		logger.Error("error rendering chart", "channel", i.ChannelID, "err", err)
		return RespondWithError(s, i, "Failed to draw the chart.")
	}

	logger.Info("plotted",
		"channel", i.ChannelID,
		"user", interactionUserID(i),
		"strategy", req.Strategy,
		"rolls", req.Rolls,
		"overlay", req.Overlay,
		"state", result.Session.State)

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// respondRejected explains a rejected request to the invoking user only.
// Failures the user cannot fix are returned after responding.
func respondRejected(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, messagingService messaging.Service, cause error) error {
	msg, err := messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:           cause,
		PreferredTone: messaging.ToneFunny,
	})
	if err != nil {
		return errors.Join(cause, err)
	}

	if msg.Type == messaging.ErrorTypeUnknown {
		if respondErr := RespondWithError(s, i, "Something went wrong. Please try again."); respondErr != nil {
			return errors.Join(cause, respondErr)
		}
		return cause
	}

	return RespondWithEphemeralEmbed(s, i, msg.Title, msg.Message, colorWarning)
}

// interactionUserID returns the invoking user in guilds and direct messages
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
