package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/balanced-dice/internal/handlers/input"
	"github.com/KirkDiggler/balanced-dice/internal/services/messaging"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	overlayService   overlay.Service
	messagingService messaging.Service
	config           *Config
	logger           *log.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	OverlayService   overlay.Service
	MessagingService messaging.Service

	// MaxRolls bounds the rolls option; zero uses input.DefaultMaxRolls
	MaxRolls int

	Logger *log.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.OverlayService == nil {
		return nil, errors.New("overlay service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.MaxRolls <= 0 {
		cfg.MaxRolls = input.DefaultMaxRolls
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		overlayService:   cfg.OverlayService,
		messagingService: cfg.MessagingService,
		config:           cfg,
		logger:           logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	diceCmd := NewDiceCommand(b.overlayService, b.messagingService, b.config.MaxRolls, b.logger)
	if err := b.RegisterCommand(diceCmd); err != nil {
		return fmt.Errorf("failed to register dice command: %w", err)
	}

	chartCmd := NewChartCommand(b.overlayService, b.logger)
	if err := b.RegisterCommand(chartCmd); err != nil {
		return fmt.Errorf("failed to register chart command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "err", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		b.logger.Info("registering command", "command", cmd.GetName(), "guild", b.config.GuildID)
	} else {
		b.logger.Info("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// Button IDs
const (
	ButtonClear = "dice_clear"

	// ButtonOverlayPrefix starts the ID of the overlay button, which also
	// carries the strategy and roll count to replay
	ButtonOverlayPrefix = "dice_overlay"
)

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", "command", i.ApplicationCommandData().Name, "err", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component interaction", "err", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == ButtonClear:
		return b.handleClearButton(ctx, s, i)
	case strings.HasPrefix(customID, ButtonOverlayPrefix+":"):
		return b.handleOverlayButton(ctx, s, i, customID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleClearButton handles the clear button click
func (b *Bot) handleClearButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := b.overlayService.Clear(ctx, &overlay.ClearInput{
		SessionID: i.ChannelID,
	})
	if err != nil {
		b.logger.Error("error clearing session", "channel", i.ChannelID, "err", err)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Failed to clear: %v", err))
	}

	msg, err := b.messagingService.GetClearedMessage(ctx, &messaging.GetClearedMessageInput{
		Cleared:       out.Cleared,
		PreferredTone: messaging.ToneFunny,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Error: %v", err))
	}

	return RespondWithEmbed(s, i, msg.Title, msg.Message, nil)
}

// handleOverlayButton adds the other strategy to the channel chart
func (b *Bot) handleOverlayButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	req, err := parseOverlayButtonID(customID, b.config.MaxRolls)
	if err != nil {
		return b.respondRejected(ctx, s, i, err)
	}
	req.Overlay = true

	return runSimulation(ctx, s, i, b.overlayService, b.messagingService, req, b.logger)
}

func (b *Bot) respondRejected(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cause error) error {
	return respondRejected(ctx, s, i, b.messagingService, cause)
}
