package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premier-auto/site/logging"
)

type fakeDistincter struct {
	values map[string][]string
	err    error
	calls  int
}

func (f *fakeDistincter) Distinct(_ context.Context, column string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.values[column], nil
}

func newTestOptions(t *testing.T, src Distincter) *Options {
	t.Helper()
	o, err := NewOptions(src, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(o.Close)
	return o
}

func TestOptions_MergesStoredValues(t *testing.T) {
	src := &fakeDistincter{values: map[string][]string{
		"body_type": {"SUV", "Crossover"},
		"fuel_type": {"Plug-in Hybrid"},
		"make":      {"Ford", "Tesla"},
	}}
	o := newTestOptions(t, src)
	ctx := context.Background()

	body := o.BodyTypes(ctx)
	assert.Equal(t, append(append([]string{}, DefaultBodyTypes...), "Crossover"), body)

	fuel := o.FuelTypes(ctx)
	assert.Equal(t, []string{"Gasoline", "Electric", "Hybrid", "Diesel", "Plug-in Hybrid"}, fuel)

	assert.Equal(t, []string{"Ford", "Tesla"}, o.Makes(ctx))
}

func TestOptions_CachesPerColumn(t *testing.T) {
	src := &fakeDistincter{values: map[string][]string{"body_type": {"Sedan"}}}
	o := newTestOptions(t, src)
	ctx := context.Background()

	o.BodyTypes(ctx)
	o.cache.Wait()
	o.BodyTypes(ctx)
	assert.Equal(t, 1, src.calls)

	stats := o.Stats()
	assert.Equal(t, "Filter Options Cache", stats.Name)
	assert.Equal(t, uint64(1), stats.Hits)

	o.Clear()
	o.BodyTypes(ctx)
	assert.Equal(t, 2, src.calls)
}

func TestOptions_StoreErrorFallsBackToFixed(t *testing.T) {
	src := &fakeDistincter{err: errors.New("no such table")}
	o := newTestOptions(t, src)
	ctx := context.Background()

	assert.Equal(t, DefaultFuelTypes, o.FuelTypes(ctx))
	assert.Equal(t, []string{}, o.Makes(ctx))

	// failures are not cached
	o.FuelTypes(ctx)
	assert.Equal(t, 3, src.calls)
}
