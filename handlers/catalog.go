package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/premier-auto/site/catalog"
	"github.com/premier-auto/site/ui"
)

// applyQuery forwards each criterion present in the query string to the
// session's matching setter. Absent parameters leave that criterion alone.
func applyQuery(c *fiber.Ctx, s *catalog.Session) {
	args := c.Context().QueryArgs()
	if args.Has("search") {
		s.SetSearch(c.Query("search"))
	}
	if args.Has("condition") {
		s.SetCondition(c.Query("condition"))
	}
	if args.Has("body_type") {
		s.SetBodyType(c.Query("body_type"))
	}
	if args.Has("fuel_type") {
		s.SetFuelType(c.Query("fuel_type"))
	}
	if args.Has("price_range") {
		s.SetPriceRange(c.Query("price_range"))
	}
	if args.Has("sort_by") {
		s.SetSortBy(catalog.SortKey(c.Query("sort_by")))
	}
}

// criteriaFromQuery overlays query parameters on base without touching any session.
func criteriaFromQuery(c *fiber.Ctx, base catalog.Criteria) catalog.Criteria {
	args := c.Context().QueryArgs()
	overlay := func(name string, dst *string) {
		if args.Has(name) {
			*dst = c.Query(name)
		}
	}
	overlay("search", &base.Search)
	overlay("condition", &base.Condition)
	overlay("body_type", &base.BodyType)
	overlay("fuel_type", &base.FuelType)
	overlay("price_range", &base.PriceRange)
	if args.Has("sort_by") {
		base.SortBy = catalog.SortKey(c.Query("sort_by"))
	}
	return base
}

func (h *Handler) filterOptions(c *fiber.Ctx) ui.FilterOptions {
	ctx, cancel := requestContext(c)
	defer cancel()
	return ui.FilterOptions{
		BodyTypes: h.options.BodyTypes(ctx),
		FuelTypes: h.options.FuelTypes(ctx),
	}
}

func (h *Handler) HandleHome(c *fiber.Ctx) error {
	s := catalogSession(c)
	applyQuery(c, s)
	snap := s.Snapshot()
	return render(c, ui.HomePage(h.cfg.Dealer, snap.Criteria, h.filterOptions(c), snap.View, snap.Total))
}

// HandleListings renders the results partial for the submitted filter form.
// Without htmx it falls back to the whole page.
func (h *Handler) HandleListings(c *fiber.Ctx) error {
	s := catalogSession(c)
	applyQuery(c, s)
	snap := s.Snapshot()
	if !isHTMX(c) {
		return render(c, ui.HomePage(h.cfg.Dealer, snap.Criteria, h.filterOptions(c), snap.View, snap.Total))
	}
	return render(c, ui.Results(snap.View, snap.Total))
}

func (h *Handler) HandleListingDetail(c *fiber.Ctx) error {
	s := catalogSession(c)
	l, ok := s.Find(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Listing not found")
	}
	return render(c, ui.DetailModal(l, h.cfg.Dealer.Email))
}

func (h *Handler) HandleCloseDetail(c *fiber.Ctx) error {
	return render(c, ui.EmptyResponse())
}

func (h *Handler) HandleResetFilters(c *fiber.Ctx) error {
	s := catalogSession(c)
	s.Reset()
	snap := s.Snapshot()
	return render(c, ui.Catalog(snap.Criteria, h.filterOptions(c), snap.View, snap.Total))
}
