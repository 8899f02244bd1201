// Package handler holds the pieces shared by all route handler packages:
// the error response shape and the mapping from error kinds to status codes.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ticket-office/ticket-office/internal/validation"
)

// ErrorResponse is the JSON error body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BadRequest renders a 400 with the given client-safe message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: message})
}

// Fail maps an error to the HTTP response contract: validation errors become
// 400 with their message verbatim, anything else becomes an opaque 500 with
// the cause logged.
func Fail(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return BadRequest(c, verr.Message)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgInternalServerError})
}
