package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"devcamper/internal/apperror"
	"devcamper/internal/database"
	"devcamper/internal/http/middleware"
	"devcamper/internal/logging"
	"devcamper/internal/validation"
)

const serverError = "Server Error"

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Success: false, Error: message})
}

// classify maps any error returned by a handler to a status and a
// client-safe message. maxUpload phrases bodies rejected by the server's
// size limit like an oversized photo.
func classify(err error, maxUpload int64) (int, string) {
	if ae, ok := apperror.As(err); ok {
		msg := ae.Message
		if msg == "" {
			msg = serverError
		}
		return ae.Status(), msg
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		return fiber.StatusBadRequest, validation.Message(ves)
	}

	if database.IsUniqueViolation(err) {
		return fiber.StatusBadRequest, "Duplicate field value entered"
	}
	if database.IsInvalidText(err) {
		return fiber.StatusNotFound, "Resource not found"
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusRequestEntityTooLarge {
			return fiber.StatusBadRequest, fmt.Sprintf("Please upload an image less than %d", maxUpload)
		}
		return fe.Code, fe.Message
	}

	return fiber.StatusInternalServerError, serverError
}

// ErrorHandler returns the Fiber global error handler. Every error a handler
// returns is rendered here as {"success": false, "error": "..."}. maxUpload
// is the photo size limit in bytes.
func ErrorHandler(maxUpload int64) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, msg := classify(err, maxUpload)
		if status >= fiber.StatusInternalServerError {
			logging.Ctx(c.UserContext()).Error().Err(err).
				Str("request_id", requestIDFromCtx(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Msg("request failed")
		}
		return writeError(c, status, msg)
	}
}
