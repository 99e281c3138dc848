package gui

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/KirkDiggler/balanced-dice/internal/chart"
	"github.com/KirkDiggler/balanced-dice/internal/handlers/input"
	"github.com/KirkDiggler/balanced-dice/internal/services/messaging"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/charmbracelet/log"
)

const (
	chartWidth  = 900
	chartHeight = 450
	chartTitle  = "Dice roll simulation"
)

// GUIError is a custom error type for window handler failures
type GUIError string

func (e GUIError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           GUIError = "config cannot be nil"
	ErrNilOverlayService   GUIError = "overlay service cannot be nil"
	ErrNilMessagingService GUIError = "messaging service cannot be nil"
	ErrNilView             GUIError = "view cannot be nil"
	ErrNotStarted          GUIError = "controller has not been started"
)

// ControllerConfig holds configuration for the window controller
type ControllerConfig struct {
	OverlayService   overlay.Service
	MessagingService messaging.Service

	// MaxRolls bounds the accepted roll count; zero uses input.DefaultMaxRolls
	MaxRolls int

	Logger *log.Logger
}

// Controller turns button presses into overlay operations and view updates
type Controller struct {
	overlayService   overlay.Service
	messagingService messaging.Service
	maxRolls         int
	logger           *log.Logger

	view      View
	sessionID string
}

// NewController creates a new window controller
func NewController(cfg *ControllerConfig) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.OverlayService == nil {
		return nil, ErrNilOverlayService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	maxRolls := cfg.MaxRolls
	if maxRolls <= 0 {
		maxRolls = input.DefaultMaxRolls
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		overlayService:   cfg.OverlayService,
		messagingService: cfg.MessagingService,
		maxRolls:         maxRolls,
		logger:           logger,
	}, nil
}

// Start binds the controller to a view and opens an empty session
func (c *Controller) Start(ctx context.Context, view View) error {
	if view == nil {
		return ErrNilView
	}

	out, err := c.overlayService.StartSession(ctx, &overlay.StartSessionInput{})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	c.view = view
	c.sessionID = out.Session.ID
	return nil
}

// Simulate handles the start button. Rejected input is reported on the
// view; only unexpected failures are returned.
func (c *Controller) Simulate(ctx context.Context, rollsText, strategyText string, overlayChecked bool) error {
	if c.view == nil {
		return ErrNotStarted
	}

	rolls, err := input.ParseRollCount(rollsText, c.maxRolls)
	if err != nil {
		return c.reject(ctx, err)
	}

	strategy, err := input.ParseStrategy(strategyText)
	if err != nil {
		return c.reject(ctx, err)
	}

	result, err := c.overlayService.Simulate(ctx, &overlay.SimulateInput{
		SessionID: c.sessionID,
		Strategy:  strategy,
		Rolls:     rolls,
		Overlay:   overlayChecked,
	})
	if err != nil {
		return c.reject(ctx, err)
	}

	var buf bytes.Buffer
	err = chart.RenderPNG(&buf, result.Session.Series, &chart.Options{
		Title:  chartTitle,
		Width:  chartWidth,
		Height: chartHeight,
	})
	if err != nil {
		return c.fail(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return c.fail(fmt.Errorf("failed to decode chart: %w", err))
	}
	c.view.ShowChart(img)

	listing := chart.FormatFrequencies(result.Added)
	if overlayChecked {
		c.view.AppendFrequencies(listing)
	} else {
		c.view.SetFrequencies(listing)
	}

	c.logger.Debug("plotted",
		"session", c.sessionID,
		"strategy", strategy,
		"rolls", rolls,
		"overlay", overlayChecked,
		"added", len(result.Added))
	return nil
}

// Clear handles the clear button
func (c *Controller) Clear(ctx context.Context) error {
	if c.view == nil {
		return ErrNotStarted
	}

	out, err := c.overlayService.Clear(ctx, &overlay.ClearInput{SessionID: c.sessionID})
	if err != nil {
		return c.fail(err)
	}

	c.view.SetOverlay(false)
	c.view.ClearChart()
	c.view.SetFrequencies("")

	msg, err := c.messagingService.GetClearedMessage(ctx, &messaging.GetClearedMessageInput{
		Cleared: out.Cleared,
	})
	if err != nil {
		return c.fail(err)
	}
	c.view.ShowInfo(msg.Title, msg.Message)
	return nil
}

func (c *Controller) reject(ctx context.Context, cause error) error {
	msg, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:           cause,
		PreferredTone: messaging.ToneNeutral,
	})
	if err != nil {
		return c.fail(err)
	}
	if msg.Type == messaging.ErrorTypeUnknown {
		return c.fail(cause)
	}

	c.logger.Debug("request rejected", "type", msg.Type, "error", cause)
	c.view.ShowWarning(msg.Title, msg.Message)
	return nil
}

func (c *Controller) fail(err error) error {
	c.logger.Error("window action failed", "err", err)
	c.view.ShowError(err)
	return err
}

// blank is shown before anything is plotted and after a clear
func blank() image.Image {
	return image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
}
