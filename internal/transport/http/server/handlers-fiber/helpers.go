package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
	"github.com/ekumamatthew/hackathon-bot/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrRepositoryNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrRecipientNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrRepositoryExists):
		status = http.StatusConflict
		code = dto.CodeRepositoryExists
		msg = "repository is already tracked"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}
