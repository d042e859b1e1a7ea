package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Tracing returns the OpenTelemetry server middleware, or a pass-through
// handler when tracing is disabled. Health probes and /metrics are not traced.
func Tracing(enabled bool) fiber.Handler {
	if !enabled {
		return passThrough()
	}
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			switch c.Path() {
			case "/health", "/readyz", "/metrics":
				return true
			}
			return false
		}),
	)
}

func passThrough() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
