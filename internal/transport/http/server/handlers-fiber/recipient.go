package handlers_fiber

import (
	"net/http"

	"github.com/ekumamatthew/hackathon-bot/internal/mapper"
	"github.com/ekumamatthew/hackathon-bot/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateUser registers a tracked-user account.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}
	if body.Email == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "email is required"))
	}

	user, err := h.repo.CreateUser(c.Context(), body.Email)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOUser(*user))
}

// LinkRecipient binds a chat identity to a user account and greets it.
func (h *Handler) LinkRecipient(c *fiber.Ctx) error {
	var body dto.LinkRecipientRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	if err := h.uc.LinkRecipient(c.Context(), body.UserID, body.ChatID, body.Mention); err != nil {
		h.log.Errorw("failed to link recipient", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// ListRevisions returns the reviews across a recipient's repositories.
func (h *Handler) ListRevisions(c *fiber.Ctx) error {
	bundles, err := h.uc.CollectRevisions(c.Context(), c.Params("chatID"))
	if err != nil {
		h.log.Errorw("failed to collect revisions", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Revisions []dto.ReviewBundle `json:"revisions"`
	}{Revisions: mapper.ToDTOReviewBundleList(bundles)}

	return c.Status(http.StatusOK).JSON(resp)
}
