package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// isoMillis matches the millisecond precision used by browsers' toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(isoMillis),
	})
}
