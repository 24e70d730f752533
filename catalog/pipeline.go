package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/premier-auto/site/listing"
)

// Apply derives the visible sequence from base and c. Filters are ANDed, then a
// stable sort on c.SortBy is applied. base is never modified and an unknown
// sort key leaves the filtered order untouched.
func Apply(base []listing.Listing, c Criteria) []listing.Listing {
	search := strings.ToLower(c.Search)
	priceRange, hasPrice := ParsePriceRange(c.PriceRange)

	out := make([]listing.Listing, 0, len(base))
	for _, l := range base {
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Make), search) &&
			!strings.Contains(strings.ToLower(l.Model), search) {
			continue
		}
		if c.Condition != "" && string(l.Condition) != c.Condition {
			continue
		}
		if c.BodyType != "" && l.BodyType != c.BodyType {
			continue
		}
		if c.FuelType != "" && l.FuelType != c.FuelType {
			continue
		}
		if hasPrice && !priceRange.Contains(l.Price) {
			continue
		}
		out = append(out, l)
	}

	if cmpFn := comparator(c.SortBy); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func comparator(key SortKey) func(a, b listing.Listing) int {
	switch key {
	case SortPriceAsc:
		return func(a, b listing.Listing) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b listing.Listing) int { return cmp.Compare(b.Price, a.Price) }
	case SortYearDesc:
		return func(a, b listing.Listing) int { return cmp.Compare(b.Year, a.Year) }
	case SortYearAsc:
		return func(a, b listing.Listing) int { return cmp.Compare(a.Year, b.Year) }
	case SortMileageAsc:
		return func(a, b listing.Listing) int { return cmp.Compare(a.Mileage, b.Mileage) }
	case SortMileageDesc:
		return func(a, b listing.Listing) int { return cmp.Compare(b.Mileage, a.Mileage) }
	default:
		return nil
	}
}
