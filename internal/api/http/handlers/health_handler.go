package handlers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/observability"
)

// HealthHandler exposes liveness, readiness and metrics endpoints.
type HealthHandler struct {
	db      *sql.DB
	metrics *observability.Metrics
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(db *sql.DB, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{db: db, metrics: metrics}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "store unavailable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Metrics GET /health/metrics.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
