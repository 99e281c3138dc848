// Package cli runs the prompt driven simulator on a terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/balanced-dice/internal/chart"
	"github.com/KirkDiggler/balanced-dice/internal/handlers/input"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/KirkDiggler/balanced-dice/internal/services/messaging"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/charmbracelet/log"
)

const banner = `Balanced Dice
Compare a pair of fair dice with dice that follow the ideal distribution.
`

// CLIError is a custom error type for terminal handler failures
type CLIError string

func (e CLIError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           CLIError = "config cannot be nil"
	ErrNilOverlayService   CLIError = "overlay service cannot be nil"
	ErrNilMessagingService CLIError = "messaging service cannot be nil"
	ErrNilReader           CLIError = "input reader cannot be nil"
	ErrNilWriter           CLIError = "output writer cannot be nil"
)

// Config holds configuration for the terminal handler
type Config struct {
	OverlayService   overlay.Service
	MessagingService messaging.Service

	In  io.Reader
	Out io.Writer

	// MaxRolls bounds the accepted roll count; zero uses input.DefaultMaxRolls
	MaxRolls int

	// ChartDir receives a PNG per rendered chart when set
	ChartDir string

	// TextWidth is the longest bar of the text chart
	TextWidth int

	Logger *log.Logger
}

// Handler drives one prompt session
type Handler struct {
	overlayService   overlay.Service
	messagingService messaging.Service
	scanner          *bufio.Scanner
	out              io.Writer
	maxRolls         int
	chartDir         string
	textWidth        int
	logger           *log.Logger
	rendered         int
}

// New creates a new terminal handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.OverlayService == nil {
		return nil, ErrNilOverlayService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}
	if cfg.In == nil {
		return nil, ErrNilReader
	}
	if cfg.Out == nil {
		return nil, ErrNilWriter
	}

	maxRolls := cfg.MaxRolls
	if maxRolls <= 0 {
		maxRolls = input.DefaultMaxRolls
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Handler{
		overlayService:   cfg.OverlayService,
		messagingService: cfg.MessagingService,
		scanner:          bufio.NewScanner(cfg.In),
		out:              cfg.Out,
		maxRolls:         maxRolls,
		chartDir:         cfg.ChartDir,
		textWidth:        cfg.TextWidth,
		logger:           logger,
	}, nil
}

// Run prompts for a roll count and a strategy, plots the result and
// offers to overlay the other strategy. Rejected input ends the session
// with a message and a nil error.
func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprint(h.out, banner)
	fmt.Fprintln(h.out)

	started, err := h.overlayService.StartSession(ctx, &overlay.StartSessionInput{})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	sessionID := started.Session.ID

	text, ok := h.prompt("Enter the number of rolls: ")
	if !ok {
		return h.scanErr()
	}
	rolls, err := input.ParseRollCount(text, h.maxRolls)
	if err != nil {
		return h.reject(ctx, err)
	}

	text, ok = h.prompt("(S)tandard or (B)alanced? ")
	if !ok {
		return h.scanErr()
	}
	strategy, err := input.ParseStrategy(text)
	if err != nil {
		return h.reject(ctx, err)
	}

	result, err := h.overlayService.Simulate(ctx, &overlay.SimulateInput{
		SessionID: sessionID,
		Strategy:  strategy,
		Rolls:     rolls,
	})
	if err != nil {
		return h.fail(ctx, err)
	}
	if err := h.show(ctx, result); err != nil {
		return err
	}

	text, ok = h.prompt(fmt.Sprintf("Overlay %s? (y/n) ", strings.ToLower(strategy.Other().Label())))
	if !ok {
		return h.scanErr()
	}
	if !input.ParseYesNo(text) {
		return nil
	}

	result, err = h.overlayService.Simulate(ctx, &overlay.SimulateInput{
		SessionID: sessionID,
		Strategy:  strategy,
		Rolls:     rolls,
		Overlay:   true,
	})
	if err != nil {
		return h.fail(ctx, err)
	}
	return h.show(ctx, result)
}

func (h *Handler) prompt(text string) (string, bool) {
	fmt.Fprint(h.out, text)
	if !h.scanner.Scan() {
		fmt.Fprintln(h.out)
		return "", false
	}
	return h.scanner.Text(), true
}

// scanErr reports a read failure; a closed input ends the session quietly
func (h *Handler) scanErr() error {
	if err := h.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (h *Handler) reject(ctx context.Context, cause error) error {
	msg, err := h.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:           cause,
		PreferredTone: messaging.ToneNeutral,
	})
	if err != nil {
		return fmt.Errorf("failed to describe %q: %w", cause, err)
	}

	h.logger.Debug("input rejected", "type", msg.Type, "error", cause)
	if msg.Type == messaging.ErrorTypeInvalidRollCount {
		fmt.Fprintf(h.out, "Error: %s\n", msg.Message)
		return nil
	}
	fmt.Fprintln(h.out, msg.Message)
	return nil
}

// fail reports known rejections to the user and returns anything else
func (h *Handler) fail(ctx context.Context, cause error) error {
	if errors.Is(cause, overlay.ErrClearRequired) || input.IsInvalidRollCount(cause) {
		return h.reject(ctx, cause)
	}
	return fmt.Errorf("failed to simulate: %w", cause)
}

func (h *Handler) show(ctx context.Context, result *overlay.SimulateOutput) error {
	series := result.Session.Series

	summary, err := h.messagingService.GetSimulationSummary(ctx, &messaging.GetSimulationSummaryInput{
		Added:    result.Added,
		Replaced: result.Replaced,
	})
	if err != nil {
		return fmt.Errorf("failed to summarise simulation: %w", err)
	}

	fmt.Fprintln(h.out)
	if err := chart.RenderText(h.out, series, h.textWidth); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	fmt.Fprintln(h.out)
	fmt.Fprint(h.out, chart.FormatFrequencies(series))
	fmt.Fprintln(h.out, summary.Message)
	fmt.Fprintln(h.out)

	if h.chartDir == "" {
		return nil
	}
	path, err := h.writePNG(result.Session, series)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "Chart saved to %s\n\n", path)
	return nil
}

func (h *Handler) writePNG(session *models.Session, series []*models.Series) (string, error) {
	if err := os.MkdirAll(h.chartDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	h.rendered++
	path := filepath.Join(h.chartDir, fmt.Sprintf("%s-%d.png", session.ID, h.rendered))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.RenderPNG(f, series, nil); err != nil {
		return "", err
	}
	h.logger.Info("chart written", "path", path, "series", len(series))
	return path, f.Close()
}
