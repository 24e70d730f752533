package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL is applied by Set.
const DefaultTTL = time.Hour

// Cache is a named, cost-bounded cache keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
}

// Stats is a snapshot of cache metrics for the admin page.
type Stats struct {
	Name         string
	Hits         uint64
	Misses       uint64
	Sets         uint64
	HitRate      float64 // percent
	MemoryUsedKB float64
	CurrentItems int64
}

// New creates a cache whose entries are weighed by costFunc.
func New[T any](costFunc func(T) int64, name string) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // keys to track frequency of
		MaxCost:     1 << 22, // 4MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{impl: impl, name: name}, nil
}

func (c *Cache[T]) Name() string {
	return c.name
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with DefaultTTL. A zero cost lets the cost function decide.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, DefaultTTL)
}

func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics

	hitRate := 0.0
	total := m.Hits() + m.Misses()
	if total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return Stats{
		Name:         c.name,
		Hits:         m.Hits(),
		Misses:       m.Misses(),
		Sets:         m.KeysAdded(),
		HitRate:      hitRate,
		MemoryUsedKB: float64(m.CostAdded()-m.CostEvicted()) / 1024,
		CurrentItems: int64(m.KeysAdded() - m.KeysEvicted()),
	}
}
