package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/premier-auto/site/catalog"
	"github.com/premier-auto/site/config"
	"github.com/premier-auto/site/listing"
)

// cardFeatureLimit is how many features a card shows before "+N more".
const cardFeatureLimit = 3

// HomePage is the full browsing page for a session.
func HomePage(dealer config.DealerConfig, c catalog.Criteria, opts FilterOptions, view []listing.Listing, total int) g.Node {
	return Page(
		dealer,
		dealer.Name+" | Inventory",
		Div(
			Class("mb-8"),
			H2(Class("text-3xl font-bold text-gray-900 mb-2"), g.Text("Find Your Perfect Vehicle")),
			P(Class("text-gray-600 text-lg"), g.Textf("Browse our collection of %d quality vehicles", total)),
		),
		Catalog(c, opts, view, total),
		DetailSlot(),
	)
}

// Catalog groups the filter form and the results so a reset can swap both.
func Catalog(c catalog.Criteria, opts FilterOptions, view []listing.Listing, total int) g.Node {
	return Div(
		ID("catalog"),
		Filters(c, opts),
		Div(
			ID("results"),
			Results(view, total),
		),
	)
}

// Results renders the derived sequence, or the empty state when it has no items.
func Results(view []listing.Listing, total int) g.Node {
	if len(view) == 0 {
		return EmptyState()
	}
	return g.Group([]g.Node{
		Div(Class("mb-6 text-sm text-gray-600"), g.Textf("Showing %d of %d vehicles", len(view), total)),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6 mb-12"),
			g.Map(view, ListingCard),
		),
	})
}

func EmptyState() g.Node {
	return Div(
		ID("empty-state"),
		Class("text-center py-20"),
		H3(Class("text-2xl font-bold text-gray-900 mb-2"), g.Text("No vehicles found")),
		P(Class("text-gray-600"), g.Text("Try adjusting your filters to see more results")),
	)
}

func ListingCard(l listing.Listing) g.Node {
	return Div(
		ID("listing-"+l.ID),
		Class("group bg-white rounded-xl overflow-hidden shadow-sm hover:shadow-2xl cursor-pointer border border-gray-100"),
		hx.Get(fmt.Sprintf("/listing/%s", l.ID)),
		hx.Target("#detail"),
		hx.Swap("innerHTML"),
		Div(
			Class("relative overflow-hidden h-56"),
			Img(Src(l.ImageURL), Alt(l.Title()), Class("w-full h-full object-cover"), g.Attr("loading", "lazy")),
			Div(
				Class("absolute top-3 right-3 bg-white px-3 py-1.5 rounded-full text-xs font-semibold"),
				Span(Class(conditionClass(l.Condition.Label())), g.Text(l.Condition.Label())),
			),
			Div(
				Class("absolute top-3 left-3 bg-gray-900 px-3 py-1.5 rounded-full"),
				Span(Class("text-white font-bold text-sm"), g.Text(FormatPrice(l.Price))),
			),
		),
		Div(
			Class("p-5"),
			H3(Class("text-xl font-bold text-gray-900 mb-1"), g.Text(l.Title())),
			Div(Class("text-gray-500 text-sm mb-4"), g.Text(l.Location)),
			Div(
				Class("grid grid-cols-2 gap-3 mb-4 text-gray-600 text-sm"),
				Span(g.Text(FormatMileage(l.Mileage))),
				Span(g.Text(l.Transmission)),
				Span(g.Text(l.FuelType)),
				Span(g.Text(l.BodyType)),
			),
			cardFeatures(l.Features),
		),
	)
}

func cardFeatures(features []string) g.Node {
	shown := features
	if len(shown) > cardFeatureLimit {
		shown = shown[:cardFeatureLimit]
	}
	return Div(
		Class("flex flex-wrap gap-2"),
		g.Map(shown, func(f string) g.Node { return pill(f, "bg-gray-100 text-gray-700") }),
		g.If(len(features) > cardFeatureLimit,
			Span(Class("text-xs text-gray-500 px-2.5 py-1"), g.Textf("+%d more", len(features)-cardFeatureLimit)),
		),
	)
}
