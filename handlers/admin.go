package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/premier-auto/site/ui"
)

// AdminRequired guards the admin routes with basic auth against the configured
// bcrypt hash. Without a hash the admin routes do not exist.
func (h *Handler) AdminRequired() fiber.Handler {
	admin := h.cfg.Admin
	if admin.PasswordHash == "" {
		return func(c *fiber.Ctx) error {
			return fiber.ErrNotFound
		}
	}

	return basicauth.New(basicauth.Config{
		Realm: "Admin",
		Authorizer: func(user, pass string) bool {
			if subtle.ConstantTimeCompare([]byte(user), []byte(admin.User)) != 1 {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(pass)) == nil
		},
	})
}

func (h *Handler) HandleAdminCache(c *fiber.Ctx) error {
	return render(c, ui.AdminCachePage(h.cfg.Dealer, h.options.Stats()))
}

func (h *Handler) HandleAdminCacheRefresh(c *fiber.Ctx) error {
	return render(c, ui.CacheStatsPanel(h.options.Stats(), "/api/admin/cache/clear", "/api/admin/cache/refresh"))
}

func (h *Handler) HandleAdminCacheClear(c *fiber.Ctx) error {
	h.options.Clear()
	return h.HandleAdminCacheRefresh(c)
}
