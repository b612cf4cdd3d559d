package handlers_fiber

import (
	"net/http"

	"github.com/ekumamatthew/hackathon-bot/internal/mapper"
	"github.com/ekumamatthew/hackathon-bot/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateRepository starts tracking a repository.
func (h *Handler) CreateRepository(c *fiber.Ctx) error {
	var body dto.CreateRepositoryRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}
	if body.Author == "" || body.Name == "" || body.OwnerID == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "author, name and owner_id are required"))
	}

	repo, err := h.repo.CreateRepository(c.Context(), mapper.FromDTORepository(body))
	if err != nil {
		h.log.Errorw("failed to create repository", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTORepository(*repo))
}

// ListRepositories returns every tracked repository.
func (h *Handler) ListRepositories(c *fiber.Ctx) error {
	repos, err := h.repo.ListRepositories(c.Context())
	if err != nil {
		h.log.Errorw("failed to list repositories", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Repositories []dto.Repository `json:"repositories"`
	}{Repositories: mapper.ToDTORepositoryList(repos)}

	return c.Status(http.StatusOK).JSON(resp)
}

// DeleteRepository stops tracking a repository.
func (h *Handler) DeleteRepository(c *fiber.Ctx) error {
	author, name := c.Params("author"), c.Params("name")

	if err := h.repo.DeleteRepository(c.Context(), author, name); err != nil {
		h.log.Errorw("failed to delete repository", "error", err.Error())
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// SetTimeLimit updates a repository's deadline.
func (h *Handler) SetTimeLimit(c *fiber.Ctx) error {
	var body dto.SetTimeLimitRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}
	if body.TimeLimitSeconds <= 0 {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "time_limit_seconds must be positive"))
	}

	repo, err := h.repo.SetTimeLimit(c.Context(), c.Params("author"), c.Params("name"), body.TimeLimitSeconds)
	if err != nil {
		h.log.Errorw("failed to set time limit", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTORepository(*repo))
}

// ListDeadlines reports the remaining time of every open assigned issue in
// one repository.
func (h *Handler) ListDeadlines(c *fiber.Ctx) error {
	repo, err := h.repo.GetRepository(c.Context(), c.Params("author"), c.Params("name"))
	if err != nil {
		h.log.Errorw("failed to get repository", "error", err.Error())
		return writeError(c, err)
	}

	statuses := h.uc.DeadlineReport(c.Context(), *repo)

	resp := struct {
		Repository string         `json:"repository"`
		Deadlines  []dto.Deadline `json:"deadlines"`
	}{
		Repository: repo.FullName(),
		Deadlines:  mapper.ToDTODeadlineList(statuses),
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ListViolations runs the compliance judge for one repository on demand.
func (h *Handler) ListViolations(c *fiber.Ctx) error {
	repo, err := h.repo.GetRepository(c.Context(), c.Params("author"), c.Params("name"))
	if err != nil {
		h.log.Errorw("failed to get repository", "error", err.Error())
		return writeError(c, err)
	}

	records := h.uc.FindViolations(c.Context(), *repo)

	resp := struct {
		Repository string          `json:"repository"`
		Violations []dto.Violation `json:"violations"`
	}{
		Repository: repo.FullName(),
		Violations: mapper.ToDTOViolationList(records),
	}

	return c.Status(http.StatusOK).JSON(resp)
}
