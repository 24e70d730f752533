package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/premier-auto/site/config"
)

// GlobalRateLimiter limits every request by client IP.
func GlobalRateLimiter(cfg config.ServerConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitExp,
	})
}

// ExportRateLimiter is a strict per-IP limiter for the spreadsheet download,
// which builds a workbook on every call.
func ExportRateLimiter(cfg config.ServerConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.ExportLimitMax,
		Expiration: cfg.ExportLimitExp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				SendString("Too many export requests. " +
					"Please try again later.")
		},
	})
}
