package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/premier-auto/site/catalog"
)

const (
	sessionCookie = "autolot_session"
	catalogLocal  = "catalog"
)

// SessionMiddleware resolves the browser session, attaches its catalog state
// container to the request and runs the one-time listing load.
func (h *Handler) SessionMiddleware(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		h.logger.Error("failed to get session", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Session unavailable")
	}

	// the id must be read before Save, which releases sess
	key := sess.ID()
	if sess.Fresh() {
		sess.Set("started", time.Now().Unix())
	}
	if err := sess.Save(); err != nil {
		h.logger.Error("failed to save session", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Session unavailable")
	}

	s := h.registry.Get(key)
	if !s.Loaded() {
		ctx, cancel := requestContext(c)
		defer cancel()
		s.EnsureLoaded(ctx, h.store, h.logger)
		h.logger.Debug("catalog session loaded", "listings", s.Total())
	}

	c.Locals(catalogLocal, s)
	return c.Next()
}

func catalogSession(c *fiber.Ctx) *catalog.Session {
	s, _ := c.Locals(catalogLocal).(*catalog.Session)
	return s
}
