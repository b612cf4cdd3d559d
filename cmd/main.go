// Package main wires the issue deadline tracker service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ekumamatthew/hackathon-bot/config"
	"github.com/ekumamatthew/hackathon-bot/internal/checker"
	"github.com/ekumamatthew/hackathon-bot/internal/github"
	"github.com/ekumamatthew/hackathon-bot/internal/notify"
	"github.com/ekumamatthew/hackathon-bot/internal/notify/telegram"
	"github.com/ekumamatthew/hackathon-bot/internal/repository"
	"github.com/ekumamatthew/hackathon-bot/internal/transport/http/middleware"
	handlers_fiber "github.com/ekumamatthew/hackathon-bot/internal/transport/http/server/handlers-fiber"
	"github.com/ekumamatthew/hackathon-bot/internal/usecase"
	"github.com/ekumamatthew/hackathon-bot/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	tracker := github.New(log, cfg.GitHub.APIBase, cfg.GitHub.Token, cfg.GitHub.RequestTimeout)
	sink := telegram.New(log, cfg.Telegram.APIBase, cfg.Telegram.Token, cfg.Telegram.RequestTimeout)
	dispatcher := notify.NewDispatcher(log, sink)

	uc := usecase.New(log, ctx, repo, tracker, dispatcher, cfg.Server.RequestTimeout)

	if cfg.Checker.Enabled {
		go checker.New(log, uc, cfg.Checker.Interval).Run(ctx)
	}

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, repo)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
