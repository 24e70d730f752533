package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/premier-auto/site/cache"
	"github.com/premier-auto/site/catalog"
	"github.com/premier-auto/site/config"
	"github.com/premier-auto/site/listing"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func sampleListing() listing.Listing {
	vin := "5YJ3E1EA7PF000001"
	return listing.Listing{
		ID:            "model3",
		Make:          "Tesla",
		Model:         "Model 3",
		Year:          2023,
		Price:         45000,
		Mileage:       2000,
		Condition:     listing.ConditionNew,
		Transmission:  "Automatic",
		FuelType:      "Electric",
		BodyType:      "Sedan",
		ExteriorColor: "Pearl White",
		InteriorColor: "Black",
		Description:   "Long range, dual motor.",
		Features:      []string{"Autopilot", "Glass Roof", "Heated Seats", "Premium Audio", "Wireless Charging"},
		ImageURL:      "https://img.example/model3.jpg",
		Location:      "Los Angeles, CA",
		VIN:           &vin,
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$25,000", FormatPrice(25000))
	assert.Equal(t, "$0", FormatPrice(0))
	assert.Equal(t, "$1,250,000", FormatPrice(1250000))
	assert.Equal(t, "$999", FormatPrice(999))
}

func TestFormatMileage(t *testing.T) {
	assert.Equal(t, "15,000 mi", FormatMileage(15000))
	assert.Equal(t, "0 mi", FormatMileage(0))
}

func TestListingCard(t *testing.T) {
	html := renderString(t, ListingCard(sampleListing()))

	assert.Contains(t, html, "2023 Tesla Model 3")
	assert.Contains(t, html, "NEW")
	assert.Contains(t, html, "$45,000")
	assert.Contains(t, html, "2,000 mi")
	assert.Contains(t, html, "Los Angeles, CA")
	assert.Contains(t, html, "Autopilot")
	assert.Contains(t, html, "Heated Seats")
	assert.NotContains(t, html, "Premium Audio")
	assert.Contains(t, html, "+2 more")
	assert.Contains(t, html, `hx-get="/listing/model3"`)
}

func TestListingCard_FewFeatures(t *testing.T) {
	l := sampleListing()
	l.Features = []string{"Bluetooth"}
	l.Condition = listing.ConditionUsed

	html := renderString(t, ListingCard(l))
	assert.Contains(t, html, "USED")
	assert.NotContains(t, html, "more")
}

func TestResults(t *testing.T) {
	html := renderString(t, Results([]listing.Listing{sampleListing()}, 7))
	assert.Contains(t, html, "Showing 1 of 7 vehicles")

	empty := renderString(t, Results(nil, 7))
	assert.Contains(t, empty, "No vehicles found")
	assert.Contains(t, empty, "Try adjusting your filters to see more results")
	assert.NotContains(t, empty, "Showing")
}

func TestDetailModal(t *testing.T) {
	html := renderString(t, DetailModal(sampleListing(), "info@premierautosales.com"))

	for _, want := range []string{
		"2023 Tesla Model 3",
		"NEW VEHICLE",
		"$45,000",
		"2,000 mi",
		"Automatic",
		"Electric",
		"Sedan",
		"Long range, dual motor.",
		"Pearl White",
		"Premium Audio",
		"Wireless Charging",
		"5YJ3E1EA7PF000001",
		`hx-get="/listing/model3/close"`,
		"mailto:info@premierautosales.com?subject=2023%20Tesla%20Model%203",
	} {
		assert.Contains(t, html, want)
	}
}

func TestDetailModal_NoVIN(t *testing.T) {
	l := sampleListing()
	l.VIN = nil
	l.Condition = listing.ConditionUsed

	html := renderString(t, DetailModal(l, ""))
	assert.Contains(t, html, "USED VEHICLE")
	assert.NotContains(t, html, "VIN")
	assert.NotContains(t, html, "Contact Seller")
}

func TestFilters_SelectsCurrentCriteria(t *testing.T) {
	c := catalog.Criteria{
		Search:     "civic",
		Condition:  "used",
		BodyType:   "SUV",
		PriceRange: "30000-50000",
		SortBy:     catalog.SortYearDesc,
	}
	opts := FilterOptions{BodyTypes: listing.DefaultBodyTypes, FuelTypes: listing.DefaultFuelTypes}

	html := renderString(t, Filters(c, opts))

	assert.Contains(t, html, `value="civic"`)
	assert.Contains(t, html, `<option value="used" selected>Used</option>`)
	assert.Contains(t, html, `<option value="SUV" selected>SUV</option>`)
	assert.Contains(t, html, `<option value="30000-50000" selected>$30,000 - $50,000</option>`)
	assert.Contains(t, html, `<option value="year-desc" selected>Year: Newest First</option>`)
	assert.Contains(t, html, `<option value="" selected>All Fuels</option>`)
	assert.Contains(t, html, `hx-get="/listings"`)
	assert.Contains(t, html, `hx-post="/filters/reset"`)
	assert.Contains(t, html, `hx-swap="outerHTML">Reset Filters</button>`, "reset is enabled while a filter is active")
}

func TestFilters_DefaultCriteria(t *testing.T) {
	html := renderString(t, Filters(catalog.DefaultCriteria(), FilterOptions{}))

	assert.Contains(t, html, `hx-swap="outerHTML" disabled>Reset Filters</button>`)
	assert.Contains(t, html, `action="/listings"`)
	assert.Contains(t, html, `method="get"`)
	assert.Contains(t, html, `<noscript><button type="submit"`)
	assert.Contains(t, html, `Apply Filters</button></noscript>`)
}

func TestHomePage(t *testing.T) {
	dealer := config.Default().Dealer
	html := renderString(t, HomePage(dealer, catalog.DefaultCriteria(), FilterOptions{}, nil, 0))

	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, "Premier Auto Sales")
	assert.Contains(t, html, "Find Your Perfect Vehicle")
	assert.Contains(t, html, "Browse our collection of 0 quality vehicles")
	assert.Contains(t, html, "No vehicles found")
	assert.Contains(t, html, "(123) 456-7890")
	assert.Contains(t, html, "Sunday: 11:00 AM - 5:00 PM")
	assert.Contains(t, html, `id="detail"`)
}

func TestErrorPage(t *testing.T) {
	html := renderString(t, ErrorPage(config.Default().Dealer, 404, "listing not found"))
	assert.Contains(t, html, "Error 404")
	assert.Contains(t, html, "listing not found")
}

func TestCacheStatsPanel(t *testing.T) {
	html := renderString(t, CacheStatsPanel(cache.Stats{
		Name:         "Filter Options Cache",
		Hits:         3,
		Misses:       1,
		HitRate:      75,
		CurrentItems: 2,
	}, "/clear", "/refresh"))

	assert.Contains(t, html, "Filter Options Cache")
	assert.Contains(t, html, "75.0%")
	assert.Contains(t, html, `hx-post="/clear"`)
}
