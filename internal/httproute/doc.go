// Package httproute converts HTTPRoute resources into the canonical route
// model defined in package routes.
//
// Two resource schemas are accepted: the Gateway API HTTPRoute
// (gateway.networking.k8s.io) and the policy HTTPRoute mirror defined in
// api/v1alpha1. Both are wrapped by Resource, which exposes one accessor set
// so that matchers, filter converters and Convert are written once and never
// branch on the schema.
//
// Every function in this package is pure: it reads its input, allocates new
// canonical values and keeps no state between calls. Conversions are
// fail-fast; the first invalid field aborts the conversion and its error is
// returned to the caller.
package httproute
