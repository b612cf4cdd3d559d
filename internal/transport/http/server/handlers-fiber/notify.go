package handlers_fiber

import (
	"context"
	"net/http"

	"github.com/ekumamatthew/hackathon-bot/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// NotifyDeadlines triggers a missed-deadline report for one recipient.
func (h *Handler) NotifyDeadlines(c *fiber.Ctx) error {
	return h.notify(c, h.uc.NotifyMissedDeadlines)
}

// NotifyAvailable triggers an available-issues report for one recipient.
func (h *Handler) NotifyAvailable(c *fiber.Ctx) error {
	return h.notify(c, h.uc.NotifyAvailableIssues)
}

// NotifyRevisions triggers a revision report for one recipient.
func (h *Handler) NotifyRevisions(c *fiber.Ctx) error {
	return h.notify(c, h.uc.NotifyRevisions)
}

// RunCheck triggers one full pass over every linked recipient.
func (h *Handler) RunCheck(c *fiber.Ctx) error {
	if err := h.uc.RunCheck(c.Context()); err != nil {
		h.log.Errorw("failed to run check", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusAccepted)
}

func (h *Handler) notify(c *fiber.Ctx, run func(ctx context.Context, chatID string) error) error {
	var body dto.NotifyRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	if err := run(c.Context(), body.ChatID); err != nil {
		h.log.Errorw("failed to notify", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusAccepted)
}
