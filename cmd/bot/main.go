// Package main runs the balanced dice Discord bot.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/balanced-dice/internal/common/clock"
	"github.com/KirkDiggler/balanced-dice/internal/common/uuid"
	"github.com/KirkDiggler/balanced-dice/internal/config"
	"github.com/KirkDiggler/balanced-dice/internal/handlers/discord"
	"github.com/KirkDiggler/balanced-dice/internal/metrics"
	sessionRepo "github.com/KirkDiggler/balanced-dice/internal/repositories/session"
	"github.com/KirkDiggler/balanced-dice/internal/services/messaging"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	"github.com/KirkDiggler/balanced-dice/internal/services/simulation"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal("failed to parse config", "err", err)
	}

	logger, err := config.NewLogger(os.Stderr, "bot", cfg)
	if err != nil {
		log.Fatal("failed to create logger", "err", err)
	}

	if cfg.DiscordToken == "" {
		logger.Fatal("failed to start", "err", config.ErrMissingToken)
	}

	// Sessions live in Redis when configured so they survive restarts
	var repo sessionRepo.Repository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		repo, err = sessionRepo.NewRedis(&sessionRepo.Config{
			RedisClient: redisClient,
			TTL:         cfg.SessionTTL,
		})
		if err != nil {
			logger.Fatal("failed to create session repository", "err", err)
		}
		logger.Info("storing sessions in redis", "addr", cfg.RedisAddr, "ttl", cfg.SessionTTL)
	} else {
		repo, err = sessionRepo.NewMemoryWithTTL(&sessionRepo.MemoryConfig{
			TTL: cfg.SessionTTL,
		})
		if err != nil {
			logger.Fatal("failed to create session repository", "err", err)
		}
		logger.Info("storing sessions in memory", "ttl", cfg.SessionTTL)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheus(reg)
	if err != nil {
		logger.Fatal("failed to register metrics", "err", err)
	}

	simulator, err := simulation.New(&simulation.Config{
		Seed:    cfg.Seed,
		Metrics: recorder,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("failed to create simulation service", "err", err)
	}

	overlaySvc, err := overlay.New(&overlay.Config{
		SessionRepo:   repo,
		Simulator:     simulator,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Metrics:       recorder,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to create overlay service", "err", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Seed: cfg.Seed})
	if err != nil {
		logger.Fatal("failed to create messaging service", "err", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		OverlayService:   overlaySvc,
		MessagingService: messagingSvc,
		MaxRolls:         cfg.MaxRolls,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", "err", err)
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = metrics.NewServer(cfg.MetricsAddr, reg)
		go func() {
			logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "err", err)
			}
		}()
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", "err", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", "err", err)
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error stopping metrics server", "err", err)
		}
	}

	logger.Info("bot has been shut down")
}
