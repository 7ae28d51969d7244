package routes

import "time"

// Backend is a weighted destination for matched requests.
type Backend struct {
	Group     string
	Kind      string
	Namespace string
	Name      string
	Port      uint16
	Weight    uint32
}

// Timeouts bounds request processing. Zero durations are unset.
type Timeouts struct {
	Request        time.Duration
	BackendRequest time.Duration
}

// HTTPRouteRule is one match-plus-filters unit of a route. A request is
// selected by the rule when any one of Matches is satisfied.
type HTTPRouteRule struct {
	Matches  []HTTPRouteMatch
	Filters  []Filter
	Backends []Backend
	Timeouts Timeouts
}

// HTTPRoute is the canonical form of an HTTPRoute resource. CreationTimestamp
// is kept so the index can order conflicting routes the way Gateway API
// precedence requires.
type HTTPRoute struct {
	Hostnames         []HostMatch
	Rules             []HTTPRouteRule
	CreationTimestamp time.Time
}
