package listing

import (
	"context"
	"log/slog"
	"slices"

	"github.com/premier-auto/site/cache"
)

// Fixed option sets offered by the filter controls even before any listing
// carries the value.
var (
	DefaultBodyTypes = []string{"Sedan", "SUV", "Truck", "Coupe", "Hatchback", "Convertible", "Wagon", "Minivan"}
	DefaultFuelTypes = []string{"Gasoline", "Electric", "Hybrid", "Diesel"}
)

// Distincter is the part of Store the option lists read from.
type Distincter interface {
	Distinct(ctx context.Context, column string) ([]string, error)
}

// Options serves filter dropdown values, cached per column.
type Options struct {
	src    Distincter
	cache  *cache.Cache[[]string]
	logger *slog.Logger
}

func NewOptions(src Distincter, logger *slog.Logger) (*Options, error) {
	c, err := cache.New[[]string](func(value []string) int64 {
		return int64(len(value) * 30)
	}, "Filter Options Cache")
	if err != nil {
		return nil, err
	}
	logger.Info("options cache initialized")
	return &Options{src: src, cache: c, logger: logger}, nil
}

func (o *Options) BodyTypes(ctx context.Context) []string {
	return o.merged(ctx, "body_type", DefaultBodyTypes)
}

func (o *Options) FuelTypes(ctx context.Context) []string {
	return o.merged(ctx, "fuel_type", DefaultFuelTypes)
}

func (o *Options) Makes(ctx context.Context) []string {
	return o.merged(ctx, "make", nil)
}

// merged returns the fixed values followed by any stored values not already in
// the list. A store error falls back to the fixed values and is not cached.
func (o *Options) merged(ctx context.Context, column string, fixed []string) []string {
	cacheKey := "options:" + column
	if cached, found := o.cache.Get(cacheKey); found {
		return cached
	}

	values := slices.Clone(fixed)
	if values == nil {
		values = []string{}
	}

	stored, err := o.src.Distinct(ctx, column)
	if err != nil {
		o.logger.Warn("failed to load filter options", "column", column, "error", err)
		return values
	}
	for _, v := range stored {
		if !slices.Contains(values, v) {
			values = append(values, v)
		}
	}

	o.cache.Set(cacheKey, values, 0)
	return values
}

func (o *Options) Stats() cache.Stats {
	return o.cache.Stats()
}

// Clear drops every cached option list; the next request re-reads the store.
func (o *Options) Clear() {
	o.cache.Clear()
	o.logger.Info("options cache cleared")
}

func (o *Options) Close() {
	o.cache.Close()
}
