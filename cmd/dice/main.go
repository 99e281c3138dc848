// Package main runs the balanced dice simulator in a terminal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/balanced-dice/internal/common/clock"
	"github.com/KirkDiggler/balanced-dice/internal/common/uuid"
	"github.com/KirkDiggler/balanced-dice/internal/config"
	"github.com/KirkDiggler/balanced-dice/internal/handlers/cli"
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

	logger, err := config.NewLogger(os.Stderr, "dice", cfg)
	if err != nil {
		log.Fatal("failed to create logger", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	handler, err := cli.New(&cli.Config{
		OverlayService:   overlaySvc,
		MessagingService: messagingSvc,
		In:               os.Stdin,
		Out:              os.Stdout,
		MaxRolls:         cfg.MaxRolls,
		ChartDir:         cfg.ChartDir,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("failed to create terminal handler", "err", err)
	}

	if err := handler.Run(ctx); err != nil {
		logger.Fatal("simulation failed", "err", err)
	}
}
