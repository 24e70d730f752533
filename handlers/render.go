package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render writes component as the HTML response body.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}
