package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/premier-auto/site/cache"
	"github.com/premier-auto/site/config"
)

// AdminCachePage renders the cache dashboard with one stats panel.
func AdminCachePage(dealer config.DealerConfig, stats cache.Stats) g.Node {
	return Page(
		dealer,
		"Admin | Cache",
		Div(
			ID("admin-section"),
			pageHeader("Admin Dashboard"),
			Div(Class("text-gray-600 text-sm mb-6"), g.Text("Filter option lists are cached; clear the cache after importing new listings.")),
			Div(
				ID("admin-section-content"),
				Class("mt-6"),
				CacheStatsPanel(stats, "/api/admin/cache/clear", "/api/admin/cache/refresh"),
			),
		),
	)
}

func CacheStatsPanel(stats cache.Stats, clearEndpoint, refreshEndpoint string) g.Node {
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(stats.Name)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-3 gap-4 mb-4"),
			statCard("Hits", "%d", stats.Hits),
			statCard("Misses", "%d", stats.Misses),
			statCard("Hit Rate", "%.1f%%", stats.HitRate),
			statCard("Sets", "%d", stats.Sets),
			statCard("Memory Used", "%.1f KB", stats.MemoryUsedKB),
			statCard("Current Items", "%d", stats.CurrentItems),
		),
		Div(
			Class("flex gap-4"),
			buttonDanger("Clear Cache",
				withAttributes(
					hx.Post(clearEndpoint),
					hx.Target("#admin-section-content"),
					hx.Swap("innerHTML"),
				),
			),
			button("Refresh Stats",
				withAttributes(
					hx.Get(refreshEndpoint),
					hx.Target("#admin-section-content"),
					hx.Swap("innerHTML"),
				),
			),
		),
	)
}

func statCard(label, format string, value any) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}
