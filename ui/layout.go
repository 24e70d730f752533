package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/premier-auto/site/config"
)

// ---- Page Layout ----

func Page(dealer config.DealerConfig, title string, content ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("min-h-screen bg-gray-50"),
				siteHeader(dealer),
				Main(
					Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8"),
					g.Group(content),
				),
				siteFooter(dealer),
			),
		},
	})
}

func siteHeader(dealer config.DealerConfig) g.Node {
	return Header(
		Class("bg-blue-700 text-white shadow-lg sticky top-0 z-40"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-6 flex items-center justify-between"),
			A(
				Href("/"),
				H1(Class("text-3xl font-bold"), g.Text(dealer.Name)),
				P(Class("text-blue-100 text-sm"), g.Text(dealer.Tagline)),
			),
			Div(
				Class("hidden md:flex items-center space-x-6"),
				g.If(dealer.Phone != "", A(Href("tel:"+dealer.Phone), Class("font-medium hover:text-blue-100"), g.Text(dealer.Phone))),
				g.If(dealer.Email != "", A(Href("mailto:"+dealer.Email), Class("font-medium hover:text-blue-100"), g.Text("Contact Us"))),
			),
		),
	)
}

func siteFooter(dealer config.DealerConfig) g.Node {
	return Footer(
		Class("bg-gray-900 text-white mt-20"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				Div(
					Span(Class("text-xl font-bold block mb-4"), g.Text(dealer.Name)),
					P(Class("text-gray-400"), g.Text("Your trusted partner in finding the perfect vehicle. Quality cars at competitive prices.")),
				),
				Div(
					H3(Class("text-lg font-semibold mb-4"), g.Text("Contact Us")),
					Div(
						Class("space-y-2 text-gray-400"),
						P(g.Text(dealer.Phone)),
						P(g.Text(dealer.Email)),
						P(g.Text(dealer.Address)),
					),
				),
				Div(
					H3(Class("text-lg font-semibold mb-4"), g.Text("Hours")),
					Div(
						Class("space-y-2 text-gray-400"),
						g.Map(dealer.Hours, func(line string) g.Node { return P(g.Text(line)) }),
					),
				),
			),
			Div(
				Class("border-t border-gray-800 mt-8 pt-8 text-center text-gray-400"),
				P(g.Textf("© %s. All rights reserved.", dealer.Name)),
			),
		),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
