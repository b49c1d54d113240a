package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	gobreaker "github.com/sony/gobreaker/v2"
)

// CircuitState exposes the state of a circuit breaker guarding a dependency.
type CircuitState interface {
	State() gobreaker.State
}

// HealthCheck reports database connectivity; 503 when the ping fails.
// When geocoder is non-nil its breaker state is included, and an open
// breaker marks the service as degraded without failing the check.
func HealthCheck(db *sql.DB, geocoder CircuitState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "Database unavailable")
		}

		body := fiber.Map{"status": "healthy"}
		if geocoder != nil {
			state := geocoder.State()
			body["geocoder"] = state.String()
			if state == gobreaker.StateOpen {
				body["status"] = "degraded"
			}
		}
		return c.Status(fiber.StatusOK).JSON(body)
	}
}

// LivenessProbe answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
