// Package controller provides the HTTPRoute controllers that feed converted
// routes into the route index.
package controller

import "time"

// ============================================================================
// Controller Tuning
// ============================================================================

const (
	// ReconcileTimeout bounds a single reconciliation.
	ReconcileTimeout = 30 * time.Second

	// RateLimiterBaseDelay is the base delay for the exponential backoff rate limiter.
	RateLimiterBaseDelay = time.Second

	// RateLimiterMaxDelay is the maximum delay for the exponential backoff rate limiter.
	RateLimiterMaxDelay = 30 * time.Second

	// DefaultMaxConcurrentReconciles is the number of concurrent reconciles
	// used when the reconciler does not set one.
	DefaultMaxConcurrentReconciles = 3
)

// ============================================================================
// Events
// ============================================================================

// Event reasons for controller events.
const (
	// EventReasonApplied is recorded when a route enters the index.
	EventReasonApplied = "Applied"

	// EventReasonConversionFailed is recorded when a route cannot be converted.
	EventReasonConversionFailed = "ConversionFailed"
)

// Event messages.
const (
	// MessageRouteApplied is the message when a route enters the index.
	MessageRouteApplied = "Route converted and added to the index"
)
