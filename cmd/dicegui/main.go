// Package main runs the balanced dice simulator in a desktop window.
package main

import (
	"context"
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/KirkDiggler/balanced-dice/internal/common/clock"
	"github.com/KirkDiggler/balanced-dice/internal/common/uuid"
	"github.com/KirkDiggler/balanced-dice/internal/config"
	"github.com/KirkDiggler/balanced-dice/internal/handlers/gui"
	sessionRepo "github.com/KirkDiggler/balanced-dice/internal/repositories/session"
	"github.com/KirkDiggler/balanced-dice/internal/services/messaging"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/KirkDiggler/balanced-dice/internal/services/simulation"
	"github.com/charmbracelet/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal("failed to parse config", "err", err)
	}

	logger, err := config.NewLogger(os.Stderr, "dicegui", cfg)
	if err != nil {
		log.Fatal("failed to create logger", "err", err)
	}

	simulator, err := simulation.New(&simulation.Config{
		Seed:   cfg.Seed,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("failed to create simulation service", "err", err)
	}

	overlaySvc, err := overlay.New(&overlay.Config{
		SessionRepo:   sessionRepo.NewMemory(),
		Simulator:     simulator,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to create overlay service", "err", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Seed: cfg.Seed})
	if err != nil {
		logger.Fatal("failed to create messaging service", "err", err)
	}

	controller, err := gui.NewController(&gui.ControllerConfig{
		OverlayService:   overlaySvc,
		MessagingService: messagingSvc,
		MaxRolls:         cfg.MaxRolls,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("failed to create controller", "err", err)
	}

	window, err := gui.NewWindow(context.Background(), app.New(), controller)
	if err != nil {
		logger.Fatal("failed to create window", "err", err)
	}

	logger.Info("window ready")
	window.ShowAndRun()
}
