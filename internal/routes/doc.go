// Package routes defines the canonical, schema-agnostic HTTP route model.
//
// Values in this package are produced by the conversion layer in
// internal/httproute from either supported HTTPRoute schema and consumed by
// the index. They are plain immutable values: they hold no reference to the
// Kubernetes object they were converted from, and the same input always
// converts to an equal value.
//
// # Identity
//
// GroupKindName and GroupKindNamespaceName identify a route resource
// independently of its schema version:
//
//	gkn := routes.GroupKindName{Group: "gateway.networking.k8s.io", Kind: "HTTPRoute", Name: "api"}
//	key := gkn.Namespaced("default")
//
// # Tokens
//
// HeaderName, HeaderValue, Method, Scheme and StatusCode are validated
// string/int types. Use the Parse* constructors; a failed parse returns a
// *util.ValidationError naming the offending value.
//
// # Thread Safety
//
// All types are safe to share between goroutines once constructed.
package routes
