package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/premier-auto/site/ui"
)

// ErrorHandler renders application errors as an HTML page. htmx swaps get the
// bare message so a failed partial does not nest a whole page.
func (h *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Path(), "status", code, "error", err)
	}

	c.Status(code)
	if isHTMX(c) {
		return c.SendString(err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return ui.ErrorPage(h.cfg.Dealer, code, err.Error()).Render(c)
}
