package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/premier-auto/site/listing"
)

// SortKey selects the single ordering applied to the derived view.
type SortKey string

const (
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortYearDesc    SortKey = "year-desc"
	SortYearAsc     SortKey = "year-asc"
	SortMileageAsc  SortKey = "mileage-asc"
	SortMileageDesc SortKey = "mileage-desc"
)

// DefaultSort is the ordering of a fresh or reset session.
const DefaultSort = SortPriceAsc

// Criteria holds the user's current filter and sort selections. An empty string
// field means "no constraint".
type Criteria struct {
	Search     string  `json:"search" form:"search" query:"search"`
	Condition  string  `json:"condition" form:"condition" query:"condition"`
	BodyType   string  `json:"body_type" form:"body_type" query:"body_type"`
	FuelType   string  `json:"fuel_type" form:"fuel_type" query:"fuel_type"`
	PriceRange string  `json:"price_range" form:"price_range" query:"price_range"`
	SortBy     SortKey `json:"sort_by" form:"sort_by" query:"sort_by"`
}

func DefaultCriteria() Criteria {
	return Criteria{SortBy: DefaultSort}
}

// IsDefault reports whether no filter is active and the sort is the default.
func (c Criteria) IsDefault() bool {
	return c == DefaultCriteria()
}

// PriceRange is an inclusive [Min, Max] price window.
type PriceRange struct {
	Min float64
	Max float64
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// ParsePriceRange decodes "min-max". It reports false when the value is empty or
// cannot be read as two numbers, in which case no price filter applies.
func ParsePriceRange(s string) (PriceRange, bool) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return PriceRange{}, false
	}
	minPrice, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil || math.IsNaN(minPrice) {
		return PriceRange{}, false
	}
	maxPrice, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil || math.IsNaN(maxPrice) {
		return PriceRange{}, false
	}
	return PriceRange{Min: minPrice, Max: maxPrice}, true
}

// Option is a value/label pair for a select control.
type Option struct {
	Value string
	Label string
}

var PriceRangeOptions = []Option{
	{Value: "0-30000", Label: "Under $30,000"},
	{Value: "30000-50000", Label: "$30,000 - $50,000"},
	{Value: "50000-75000", Label: "$50,000 - $75,000"},
	{Value: "75000-100000", Label: "$75,000 - $100,000"},
	{Value: "100000-999999999", Label: "$100,000+"},
}

var SortOptions = []Option{
	{Value: string(SortPriceAsc), Label: "Price: Low to High"},
	{Value: string(SortPriceDesc), Label: "Price: High to Low"},
	{Value: string(SortYearDesc), Label: "Year: Newest First"},
	{Value: string(SortYearAsc), Label: "Year: Oldest First"},
	{Value: string(SortMileageAsc), Label: "Mileage: Low to High"},
	{Value: string(SortMileageDesc), Label: "Mileage: High to Low"},
}

var ConditionOptions = []Option{
	{Value: string(listing.ConditionNew), Label: "New"},
	{Value: string(listing.ConditionUsed), Label: "Used"},
}
