package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/premier-auto/site/config"
)

func ErrorPage(dealer config.DealerConfig, code int, message string) g.Node {
	return Page(
		dealer,
		fmt.Sprintf("Error %d", code),
		pageHeader(fmt.Sprintf("Error %d", code)),
		P(Class("text-gray-700 mb-8"), g.Text(message)),
		button("Back to inventory", withHref("/")),
	)
}

// EmptyResponse returns an empty div for htmx swaps that clear a target
func EmptyResponse() g.Node {
	return Div()
}

func sectionHeading(text string) g.Node {
	return H3(Class("text-xl font-bold text-gray-900 mb-4"), g.Text(text))
}

func pill(text string, class string) g.Node {
	return Span(Class("text-xs px-2.5 py-1 rounded-full "+class), g.Text(text))
}

func conditionClass(label string) string {
	if label == "NEW" {
		return "text-green-600"
	}
	return "text-blue-600"
}
