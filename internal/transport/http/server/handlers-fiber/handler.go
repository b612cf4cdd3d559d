// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/ekumamatthew/hackathon-bot/internal/repository"
	"github.com/ekumamatthew/hackathon-bot/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the admin and trigger API on top of the engine and storage.
type Handler struct {
	log  *zap.SugaredLogger
	uc   usecase.InterfaceUsecase
	repo repository.Repository
}

// NewHandler constructs an HTTP handler with its dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, repo repository.Repository) *Handler {
	return &Handler{
		log:  log,
		uc:   uc,
		repo: repo,
	}
}

// Register mounts all routes on the fiber application.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/repositories", h.CreateRepository)
	app.Get("/repositories", h.ListRepositories)
	app.Delete("/repositories/:author/:name", h.DeleteRepository)
	app.Patch("/repositories/:author/:name/time-limit", h.SetTimeLimit)
	app.Get("/repositories/:author/:name/violations", h.ListViolations)
	app.Get("/repositories/:author/:name/deadlines", h.ListDeadlines)

	app.Post("/users", h.CreateUser)
	app.Post("/recipients/link", h.LinkRecipient)
	app.Get("/recipients/:chatID/revisions", h.ListRevisions)

	app.Post("/notify/deadlines", h.NotifyDeadlines)
	app.Post("/notify/available", h.NotifyAvailable)
	app.Post("/notify/revisions", h.NotifyRevisions)
	app.Post("/check", h.RunCheck)
}
