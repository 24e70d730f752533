package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/premier-auto/site/catalog"
	"github.com/premier-auto/site/config"
	"github.com/premier-auto/site/listing"
	"github.com/premier-auto/site/logging"
)

// ListingStore is what the handlers need from the listing store.
type ListingStore interface {
	catalog.Source
	Get(ctx context.Context, id string) (listing.Listing, error)
}

// Handler carries the dependencies shared by every route.
type Handler struct {
	cfg      config.Config
	store    ListingStore
	options  *listing.Options
	registry *catalog.Registry
	sessions *session.Store
	ping     func(ctx context.Context) error
	logger   *slog.Logger
}

type Deps struct {
	Config   config.Config
	Store    ListingStore
	Options  *listing.Options
	Registry *catalog.Registry
	Ping     func(ctx context.Context) error
	Logger   *slog.Logger
}

func New(d Deps) *Handler {
	return &Handler{
		cfg:      d.Config,
		store:    d.Store,
		options:  d.Options,
		registry: d.Registry,
		sessions: session.New(session.Config{
			Expiration:     d.Config.Session.Expiration,
			KeyLookup:      "cookie:" + sessionCookie,
			CookieHTTPOnly: true,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
		}),
		ping:   d.Ping,
		logger: logging.Component(d.Logger, "handlers"),
	}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.HandleHealth)
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Browsing routes all run against the caller's catalog session
	app.Get("/", h.SessionMiddleware, h.HandleHome)
	app.Get("/listings", h.SessionMiddleware, h.HandleListings)
	app.Get("/listing/:id", h.SessionMiddleware, h.HandleListingDetail)
	app.Get("/listing/:id/close", h.HandleCloseDetail)
	app.Post("/filters/reset", h.SessionMiddleware, h.HandleResetFilters)
	app.Get("/export.xlsx", ExportRateLimiter(h.cfg.Server), h.SessionMiddleware, h.HandleExport)

	api := app.Group("/api")
	api.Get("/listings", h.SessionMiddleware, h.HandleAPIListings)
	api.Get("/listings/:id", h.HandleAPIListing)

	// Admin dashboard and cache management
	adminRequired := h.AdminRequired()
	admin := app.Group("/admin", adminRequired)
	admin.Get("/cache", h.HandleAdminCache)

	adminAPI := api.Group("/admin", adminRequired)
	adminAPI.Get("/cache/refresh", h.HandleAdminCacheRefresh)
	adminAPI.Post("/cache/clear", h.HandleAdminCacheClear)
}

// requestContext bounds store calls made on behalf of a request.
func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), config.RequestTimeout)
}

// isHTMX reports whether the request came from an htmx swap.
func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
