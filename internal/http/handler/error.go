package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docgen/internal/apperr"
	"docgen/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Success   bool          `json:"success"`
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

// writeError writes a standardized JSON error response.
// message must already be safe to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string, details any) error {
	res := errorPayload{
		Success:   false,
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:      code,
			Message:   message,
			Details:   details,
			Timestamp: time.Now().UTC(),
			Path:      c.Path(),
		},
	}
	return c.Status(status).JSON(res)
}

// writeValidationFailed rejects a model that broke one or more rules.
func writeValidationFailed(c *fiber.Ctx, messages []string) error {
	return writeError(c, fiber.StatusBadRequest, apperr.LabelValidationFailed, "Validation failed", messages)
}

// ErrorHandler returns a Fiber global error handler that classifies err and
// writes the error envelope. The full error is logged, never sent.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		cl := apperr.Classify(err)

		fields := []zap.Field{
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", cl.Status),
			zap.Error(err),
		}
		var details any
		if cl.Status >= fiber.StatusInternalServerError {
			log.Error("request_failed", fields...)
		} else {
			log.Warn("request_rejected", fields...)
			details = apperr.DetailsOf(err)
		}

		return writeError(c, cl.Status, cl.Label, cl.Message, details)
	}
}
