package ui

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/premier-auto/site/listing"
)

// DetailSlot is the target the detail panel is swapped into.
func DetailSlot() g.Node {
	return Div(ID("detail"))
}

// DetailModal shows every field of a listing over the page.
func DetailModal(l listing.Listing, contactEmail string) g.Node {
	banner := "USED VEHICLE"
	if l.Condition == listing.ConditionNew {
		banner = "NEW VEHICLE"
	}
	closeURL := fmt.Sprintf("/listing/%s/close", l.ID)

	return Div(
		ID("detail-modal"),
		Class("fixed inset-0 z-50 flex items-center justify-center p-4 bg-black bg-opacity-60"),
		Role("dialog"),
		Div(
			Class("bg-white rounded-2xl max-w-5xl w-full overflow-y-auto shadow-2xl"),
			Style("max-height: 90vh"),
			Div(
				Class("sticky top-0 bg-white border-b border-gray-200 px-6 py-4 flex justify-between items-center"),
				H2(Class("text-2xl font-bold text-gray-900"), g.Text(l.Title())),
				Button(
					Type("button"),
					Class("p-2 hover:bg-gray-100 rounded-full"),
					Aria("label", "Close"),
					hx.Get(closeURL),
					hx.Target("#detail"),
					hx.Swap("innerHTML"),
					g.Text("✕"),
				),
			),
			Div(
				Class("relative h-96"),
				Img(Src(l.ImageURL), Alt(l.Title()), Class("w-full h-full object-cover")),
				Div(
					Class("absolute top-4 right-4 bg-white px-4 py-2 rounded-full text-sm font-semibold shadow-lg"),
					Span(Class(conditionClass(l.Condition.Label())), g.Text(banner)),
				),
			),
			Div(
				Class("p-6 lg:p-8"),
				Div(
					Class("flex flex-col lg:flex-row lg:justify-between lg:items-start gap-6 mb-8"),
					Div(
						Div(Class("text-4xl font-bold text-gray-900 mb-2"), g.Text(FormatPrice(l.Price))),
						Div(Class("text-lg text-gray-600"), g.Text(l.Location)),
					),
					g.If(contactEmail != "",
						button("Contact Seller",
							withHref(fmt.Sprintf("mailto:%s?subject=%s", contactEmail, url.PathEscape(l.Title()))),
							withClass("px-8 py-3 shadow-lg"),
						),
					),
				),
				Div(
					Class("grid grid-cols-2 lg:grid-cols-4 gap-4 mb-8"),
					specTile("Mileage", FormatMileage(l.Mileage)),
					specTile("Transmission", l.Transmission),
					specTile("Fuel Type", l.FuelType),
					specTile("Body Type", l.BodyType),
				),
				Div(
					Class("mb-8"),
					sectionHeading("Description"),
					P(Class("text-gray-700 leading-relaxed"), g.Text(l.Description)),
				),
				Div(
					Class("grid lg:grid-cols-2 gap-6 mb-8"),
					Div(sectionHeading("Exterior"), Span(Class("text-lg text-gray-700"), g.Text(l.ExteriorColor))),
					Div(sectionHeading("Interior"), Span(Class("text-lg text-gray-700"), g.Text(l.InteriorColor))),
				),
				Div(
					sectionHeading("Features & Options"),
					Div(
						Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-3"),
						g.Map(l.Features, func(f string) g.Node {
							return Div(Class("flex items-start text-gray-700"), Span(Class("text-green-600 mr-2"), g.Text("✓")), g.Text(f))
						}),
					),
				),
				g.If(l.VIN != nil, Div(
					Class("mt-8 text-sm text-gray-500"),
					g.Text("VIN: "),
					Span(Class("font-mono"), g.Text(deref(l.VIN))),
				)),
			),
		),
	)
}

func specTile(label, value string) g.Node {
	return Div(
		Class("bg-gray-50 p-4 rounded-lg"),
		Div(Class("text-sm font-medium text-gray-600 mb-2"), g.Text(label)),
		Div(Class("text-xl font-bold text-gray-900"), g.Text(value)),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
