package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"docgen/internal/apperr"
)

// LivenessProbe reports that the process is serving requests.
//
// @Summary  Liveness
// @Produce  json
// @Success  200
// @Router   /health [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// HealthCheck checks DB connectivity. A nil db means the archive is not
// configured and there is nothing to check.
//
// @Summary  Readiness
// @Produce  json
// @Success  200
// @Failure  503 {object} errorPayload
// @Router   /readyz [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, apperr.LabelServiceUnavailable, "dependency unavailable", nil)
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}
