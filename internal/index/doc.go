// Package index keeps the canonical routes produced by the HTTPRoute
// controllers, keyed by route identity.
//
// The store does not resolve conflicts between routes. List returns routes
// ordered by creation timestamp and then by identity, which is the input
// order Gateway API precedence rules expect; deciding the winner is left to
// the consumer.
package index
