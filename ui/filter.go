package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/premier-auto/site/catalog"
)

// FilterOptions are the choices offered by the select controls.
type FilterOptions struct {
	BodyTypes []string
	FuelTypes []string
}

const selectClass = "w-full px-4 py-2.5 border border-gray-300 rounded-lg focus:ring-2 focus:ring-blue-500"

// Filters renders the criteria form. Any change re-fetches the results partial
// with the whole form as query parameters. Without JavaScript the form submits
// to the same route as a plain GET.
func Filters(c catalog.Criteria, opts FilterOptions) g.Node {
	return Form(
		ID("filters"),
		Class("bg-white rounded-xl shadow-sm p-6 mb-8 border border-gray-100"),
		Action("/listings"),
		Method("get"),
		hx.Get("/listings"),
		hx.Target("#results"),
		hx.Swap("innerHTML"),
		hx.Trigger("change, keyup changed delay:300ms from:#search"),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 xl:grid-cols-6 gap-4"),
			searchFilter(c.Search),
			selectFilter("Condition", "condition", c.Condition, "All", catalog.ConditionOptions),
			selectFilter("Body Type", "body_type", c.BodyType, "All Types", valueOptions(opts.BodyTypes)),
			selectFilter("Fuel Type", "fuel_type", c.FuelType, "All Fuels", valueOptions(opts.FuelTypes)),
			selectFilter("Price Range", "price_range", c.PriceRange, "All Prices", catalog.PriceRangeOptions),
			selectFilter("Sort By", "sort_by", string(c.SortBy), "", catalog.SortOptions),
		),
		Div(
			Class("flex justify-end gap-3 mt-4"),
			NoScript(button("Apply Filters", withType("submit"))),
			buttonSecondary("Reset Filters",
				withClass("disabled:opacity-50 disabled:cursor-not-allowed"),
				withAttributes(
					ID("reset-filters"),
					hx.Post("/filters/reset"),
					hx.Target("#catalog"),
					hx.Swap("outerHTML"),
					g.If(c.IsDefault(), Disabled()),
				),
			),
		),
	)
}

func searchFilter(value string) g.Node {
	return Div(
		Class("xl:col-span-2"),
		Label(For("search"), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text("Search")),
		Input(
			Type("text"),
			ID("search"),
			Name("search"),
			Class(selectClass),
			Placeholder("Search by make or model..."),
			AutoComplete("off"),
			Value(value),
		),
	)
}

// selectFilter renders a labelled select. An empty allLabel omits the
// "no constraint" entry.
func selectFilter(label, name, current, allLabel string, options []catalog.Option) g.Node {
	return Div(
		Label(For(name), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(label)),
		Select(
			ID(name),
			Name(name),
			Class(selectClass),
			g.If(allLabel != "", Option(Value(""), g.Text(allLabel), g.If(current == "", Selected()))),
			g.Map(options, func(o catalog.Option) g.Node {
				return Option(Value(o.Value), g.Text(o.Label), g.If(current == o.Value, Selected()))
			}),
		),
	)
}

func valueOptions(values []string) []catalog.Option {
	out := make([]catalog.Option, len(values))
	for i, v := range values {
		out[i] = catalog.Option{Value: v, Label: v}
	}
	return out
}
