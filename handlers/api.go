package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/premier-auto/site/catalog"
	"github.com/premier-auto/site/listing"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleAPIListings returns the derived sequence as JSON. Query parameters
// override the session criteria for this response only.
func (h *Handler) HandleAPIListings(c *fiber.Ctx) error {
	snap := catalogSession(c).SnapshotFor(func(base catalog.Criteria) catalog.Criteria {
		return criteriaFromQuery(c, base)
	})

	return c.JSON(fiber.Map{
		"total":    snap.Total,
		"count":    len(snap.View),
		"criteria": snap.Criteria,
		"listings": snap.View,
	})
}

// HandleAPIListing reads one listing straight from the store.
func (h *Handler) HandleAPIListing(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	l, err := h.store.Get(ctx, c.Params("id"))
	if errors.Is(err, listing.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	if err != nil {
		h.logger.Error("failed to get listing", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get listing"})
	}
	return c.JSON(l)
}

// HandleExport downloads the current derived sequence as a spreadsheet.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	view := catalogSession(c).Snapshot().View

	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="inventory-%s.xlsx"`, timestamp()))
	if err := listing.WriteSheet(c.Response().BodyWriter(), view); err != nil {
		h.logger.Error("failed to export listings", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to export listings")
	}
	h.logger.Info("listings exported", "count", len(view))
	return nil
}
