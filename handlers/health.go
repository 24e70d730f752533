package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth returns the health status of the application
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	health := map[string]string{
		"status": "ok",
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// Check database connectivity
	if h.ping == nil || h.ping(ctx) != nil {
		health["status"] = "unhealthy"
		health["database"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["database"] = "up"
	}

	return c.JSON(health)
}
