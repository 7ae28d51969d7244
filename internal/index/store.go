package index

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vyrodovalexey/avapolicy/internal/routes"
)

// Entry is a route together with its identity.
type Entry struct {
	Key   routes.GroupKindNamespaceName
	Route routes.HTTPRoute
}

// Store is a concurrency-safe in-memory route index.
type Store struct {
	mu     sync.RWMutex
	routes map[routes.GroupKindNamespaceName]routes.HTTPRoute
	size   *prometheus.GaugeVec
}

// NewStore creates an empty store. When reg is not nil the store registers
// the avapolicy_index_routes gauge with it.
func NewStore(reg prometheus.Registerer) *Store {
	size := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "avapolicy",
			Subsystem: "index",
			Name:      "routes",
			Help:      "Number of converted routes held by the index",
		},
		[]string{"group"},
	)
	if reg != nil {
		reg.MustRegister(size)
	}
	return &Store{
		routes: make(map[routes.GroupKindNamespaceName]routes.HTTPRoute),
		size:   size,
	}
}

// Apply inserts or replaces the route stored under key. It reports whether
// the key was new.
func (s *Store) Apply(key routes.GroupKindNamespaceName, route routes.HTTPRoute) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.routes[key]
	s.routes[key] = route
	if !exists {
		s.size.WithLabelValues(key.Group).Inc()
	}
	return !exists
}

// Delete removes the route stored under key. It reports whether a route was
// removed.
func (s *Store) Delete(key routes.GroupKindNamespaceName) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.routes[key]; !exists {
		return false
	}
	delete(s.routes, key)
	s.size.WithLabelValues(key.Group).Dec()
	return true
}

// Get returns the route stored under key.
func (s *Store) Get(key routes.GroupKindNamespaceName) (routes.HTTPRoute, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	route, ok := s.routes[key]
	return route, ok
}

// Len returns the number of stored routes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.routes)
}

// List returns all routes, oldest first. Routes created at the same instant
// are ordered by identity.
func (s *Store) List() []Entry {
	s.mu.RLock()
	entries := make([]Entry, 0, len(s.routes))
	for key, route := range s.routes {
		entries = append(entries, Entry{Key: key, Route: route})
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		ti, tj := entries[i].Route.CreationTimestamp, entries[j].Route.CreationTimestamp
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return entries[i].Key.String() < entries[j].Key.String()
	})
	return entries
}
