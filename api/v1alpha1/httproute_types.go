package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"
)

// ============================================================================
// HTTPRoute CRD
// ============================================================================

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=phr
// +kubebuilder:printcolumn:name="Hostnames",type="string",JSONPath=".spec.hostnames[*]"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// HTTPRoute is the Schema for the httproutes API.
// It carries the same matching and filtering vocabulary as the Gateway API
// HTTPRoute but restricts the filters to the ones the policy controller
// understands and evolves on its own release cadence.
type HTTPRoute struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec HTTPRouteSpec `json:"spec,omitempty"`

	// +optional
	Status *HTTPRouteStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// HTTPRouteList contains a list of HTTPRoute
type HTTPRouteList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []HTTPRoute `json:"items"`
}

// HTTPRouteSpec defines the desired state of HTTPRoute
type HTTPRouteSpec struct {
	// CommonRouteSpec carries the parent references shared with every
	// Gateway API route kind.
	gatewayv1.CommonRouteSpec `json:",inline"`

	// Hostnames defines a set of hostnames that should match against the HTTP
	// Host header to select a HTTPRoute used to process the request.
	// +kubebuilder:validation:MaxItems=16
	// +optional
	Hostnames []gatewayv1.Hostname `json:"hostnames,omitempty"`

	// Rules are a list of HTTP matchers, filters and actions.
	// +kubebuilder:validation:MaxItems=16
	// +optional
	Rules []HTTPRouteRule `json:"rules,omitempty"`
}

// HTTPRouteRule defines semantics for matching an HTTP request based on
// conditions (matches), processing it (filters), and forwarding the request
// to an API object (backendRefs).
type HTTPRouteRule struct {
	// Matches define conditions used for matching the rule against incoming
	// HTTP requests. Each match is independent, i.e. this rule will be matched
	// if any one of the matches is satisfied.
	// +kubebuilder:validation:MaxItems=8
	// +optional
	Matches []gatewayv1.HTTPRouteMatch `json:"matches,omitempty"`

	// Filters define the filters that are applied to requests that match this rule.
	// +kubebuilder:validation:MaxItems=16
	// +optional
	Filters []HTTPRouteFilter `json:"filters,omitempty"`

	// BackendRefs defines the backend(s) where matching requests should be sent.
	// +kubebuilder:validation:MaxItems=16
	// +optional
	BackendRefs []HTTPBackendRef `json:"backendRefs,omitempty"`

	// Timeouts defines the timeouts that can be configured for an HTTP request.
	// +optional
	Timeouts *gatewayv1.HTTPRouteTimeouts `json:"timeouts,omitempty"`
}

// ============================================================================
// HTTP Route Filters
// ============================================================================

// HTTPRouteFilter defines processing steps that must be completed during the
// request or response lifecycle.
type HTTPRouteFilter struct {
	// Type identifies the type of filter to apply.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Enum=RequestHeaderModifier;ResponseHeaderModifier;RequestRedirect
	Type HTTPRouteFilterType `json:"type"`

	// RequestHeaderModifier defines a schema for a filter that modifies request headers.
	// +optional
	RequestHeaderModifier *gatewayv1.HTTPHeaderFilter `json:"requestHeaderModifier,omitempty"`

	// ResponseHeaderModifier defines a schema for a filter that modifies response headers.
	// +optional
	ResponseHeaderModifier *gatewayv1.HTTPHeaderFilter `json:"responseHeaderModifier,omitempty"`

	// RequestRedirect defines a schema for a filter that responds to the request
	// with an HTTP redirection.
	// +optional
	RequestRedirect *gatewayv1.HTTPRequestRedirectFilter `json:"requestRedirect,omitempty"`
}

// HTTPRouteFilterType identifies a type of HTTPRoute filter.
// +kubebuilder:validation:Enum=RequestHeaderModifier;ResponseHeaderModifier;RequestRedirect
type HTTPRouteFilterType string

const (
	// HTTPRouteFilterRequestHeaderModifier modifies request headers
	HTTPRouteFilterRequestHeaderModifier HTTPRouteFilterType = "RequestHeaderModifier"
	// HTTPRouteFilterResponseHeaderModifier modifies response headers
	HTTPRouteFilterResponseHeaderModifier HTTPRouteFilterType = "ResponseHeaderModifier"
	// HTTPRouteFilterRequestRedirect redirects requests
	HTTPRouteFilterRequestRedirect HTTPRouteFilterType = "RequestRedirect"
)

// ============================================================================
// HTTP Backend Reference
// ============================================================================

// HTTPBackendRef defines how a HTTPRoute forwards a HTTP request. Unlike the
// Gateway API type it does not accept per-backend filters.
type HTTPBackendRef struct {
	gatewayv1.BackendRef `json:",inline"`
}

// ============================================================================
// HTTPRoute Status
// ============================================================================

// HTTPRouteStatus defines the observed state of HTTPRoute
type HTTPRouteStatus struct {
	gatewayv1.RouteStatus `json:",inline"`
}

func init() {
	SchemeBuilder.Register(&HTTPRoute{}, &HTTPRouteList{})
}
