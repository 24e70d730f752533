package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/premier-auto/site/listing"
)

// Session is the state container of one browsing session: the base collection
// loaded once, and the criteria the user has selected. The derived view is
// recomputed from both on every read.
type Session struct {
	mu       sync.Mutex
	base     []listing.Listing
	criteria Criteria
	loaded   bool
	lastSeen time.Time
}

func NewSession() *Session {
	return &Session{
		base:     []listing.Listing{},
		criteria: DefaultCriteria(),
		lastSeen: time.Now(),
	}
}

// EnsureLoaded runs the loader the first time it is called. Later calls are
// no-ops, including after a failed load.
func (s *Session) EnsureLoaded(ctx context.Context, src Source, logger *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.base = Load(ctx, src, logger)
	s.loaded = true
}

func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Total is the size of the base collection.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.base)
}

// Snapshot is a consistent read of a session: the criteria, the view derived
// from them and the size of the base collection.
type Snapshot struct {
	Criteria Criteria
	View     []listing.Listing
	Total    int
}

// Snapshot reads criteria, view and total under one lock.
func (s *Session) Snapshot() Snapshot {
	return s.SnapshotFor(nil)
}

// SnapshotFor derives the view from the current criteria as changed by
// overlay. The stored criteria are not modified. A nil overlay is Snapshot.
func (s *Session) SnapshotFor(overlay func(Criteria) Criteria) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.criteria
	if overlay != nil {
		c = overlay(c)
	}
	return Snapshot{Criteria: c, View: Apply(s.base, c), Total: len(s.base)}
}

// Find looks a listing up by id in the base collection.
func (s *Session) Find(id string) (listing.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.base {
		if l.ID == id {
			return l, true
		}
	}
	return listing.Listing{}, false
}

func (s *Session) update(fn func(c *Criteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.criteria)
}

func (s *Session) SetSearch(v string)     { s.update(func(c *Criteria) { c.Search = v }) }
func (s *Session) SetCondition(v string)  { s.update(func(c *Criteria) { c.Condition = v }) }
func (s *Session) SetBodyType(v string)   { s.update(func(c *Criteria) { c.BodyType = v }) }
func (s *Session) SetFuelType(v string)   { s.update(func(c *Criteria) { c.FuelType = v }) }
func (s *Session) SetPriceRange(v string) { s.update(func(c *Criteria) { c.PriceRange = v }) }
func (s *Session) SetSortBy(v SortKey)    { s.update(func(c *Criteria) { c.SortBy = v }) }

// Reset restores the default criteria. The base collection is kept.
func (s *Session) Reset() {
	s.update(func(c *Criteria) { *c = DefaultCriteria() })
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Registry maps browser session keys to their state containers.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	maxIdle  time.Duration
	now      func() time.Time
}

func NewRegistry(maxIdle time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

// Get returns the container for key, creating it on first use.
func (r *Registry) Get(key string) *Session {
	now := r.now()

	r.mu.Lock()
	s, ok := r.sessions[key]
	if !ok {
		s = NewSession()
		r.sessions[key] = s
	}
	r.mu.Unlock()

	s.touch(now)
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Prune drops containers idle for longer than the registry's max idle time and
// returns how many were removed.
func (r *Registry) Prune() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for key, s := range r.sessions {
		if s.idleSince(now) > r.maxIdle {
			delete(r.sessions, key)
			removed++
		}
	}
	return removed
}

// Run prunes idle containers every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Prune(); n > 0 {
				logger.Debug("pruned idle sessions", "count", n, "remaining", r.Len())
			}
		}
	}
}
