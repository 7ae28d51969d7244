package httproute

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/api/v1alpha1"
	"github.com/vyrodovalexey/avapolicy/internal/routes"
)

// namespaceRequired is the panic value raised when a route has no namespace.
const namespaceRequired = "HTTPRoute must have a namespace"

// Resource is a schema-agnostic view of an HTTPRoute. It performs no
// validation; conversion of the payload happens in Convert.
type Resource interface {
	// Name returns the declared name of the route.
	Name() string

	// Namespace returns the namespace of the route. HTTPRoute is a namespaced
	// kind, so an empty namespace means the object was built incorrectly
	// upstream and Namespace panics instead of guessing one.
	Namespace() string

	// CommonSpec returns the parent references shared by all route kinds.
	CommonSpec() *gatewayv1.CommonRouteSpec

	// Status returns the route status, or nil when the resource has none.
	Status() *gatewayv1.RouteStatus

	// GKNN returns the namespaced identity key of the route.
	GKNN() routes.GroupKindNamespaceName

	// Hostnames returns the hostnames the route applies to.
	Hostnames() []gatewayv1.Hostname

	// Rules returns the route rules in a schema-independent shape.
	Rules() []Rule

	// CreationTimestamp returns the creation time of the underlying object.
	CreationTimestamp() metav1.Time

	// Object returns the wrapped Kubernetes object.
	Object() client.Object
}

// Rule is one rule of a route with its filters lifted into the Gateway API
// filter shape.
type Rule struct {
	Matches     []gatewayv1.HTTPRouteMatch
	Filters     []gatewayv1.HTTPRouteFilter
	BackendRefs []gatewayv1.HTTPBackendRef
	Timeouts    *gatewayv1.HTTPRouteTimeouts
}

// FromGateway wraps a Gateway API HTTPRoute.
func FromGateway(route *gatewayv1.HTTPRoute) Resource {
	return gatewayRoute{route: route}
}

// FromPolicy wraps a policy HTTPRoute.
func FromPolicy(route *v1alpha1.HTTPRoute) Resource {
	return policyRoute{route: route}
}

// FromObject wraps obj when it is one of the supported HTTPRoute types.
func FromObject(obj client.Object) (Resource, bool) {
	switch route := obj.(type) {
	case *gatewayv1.HTTPRoute:
		return FromGateway(route), true
	case *v1alpha1.HTTPRoute:
		return FromPolicy(route), true
	default:
		return nil, false
	}
}

func mustNamespace(obj metav1.Object) string {
	ns := obj.GetNamespace()
	if ns == "" {
		panic(namespaceRequired)
	}
	return ns
}

// ============================================================================
// Gateway API HTTPRoute
// ============================================================================

type gatewayRoute struct {
	route *gatewayv1.HTTPRoute
}

var _ Resource = gatewayRoute{}

func (r gatewayRoute) Name() string {
	return r.route.Name
}

func (r gatewayRoute) Namespace() string {
	return mustNamespace(r.route)
}

func (r gatewayRoute) CommonSpec() *gatewayv1.CommonRouteSpec {
	return &r.route.Spec.CommonRouteSpec
}

func (r gatewayRoute) Status() *gatewayv1.RouteStatus {
	return &r.route.Status.RouteStatus
}

func (r gatewayRoute) GKNN() routes.GroupKindNamespaceName {
	return GKNForResource(r.route).Namespaced(r.Namespace())
}

func (r gatewayRoute) Hostnames() []gatewayv1.Hostname {
	return r.route.Spec.Hostnames
}

func (r gatewayRoute) Rules() []Rule {
	rules := make([]Rule, 0, len(r.route.Spec.Rules))
	for i := range r.route.Spec.Rules {
		rule := &r.route.Spec.Rules[i]
		rules = append(rules, Rule{
			Matches:     rule.Matches,
			Filters:     rule.Filters,
			BackendRefs: rule.BackendRefs,
			Timeouts:    rule.Timeouts,
		})
	}
	return rules
}

func (r gatewayRoute) CreationTimestamp() metav1.Time {
	return r.route.CreationTimestamp
}

func (r gatewayRoute) Object() client.Object {
	return r.route
}

// ============================================================================
// Policy HTTPRoute
// ============================================================================

type policyRoute struct {
	route *v1alpha1.HTTPRoute
}

var _ Resource = policyRoute{}

func (r policyRoute) Name() string {
	return r.route.Name
}

func (r policyRoute) Namespace() string {
	return mustNamespace(r.route)
}

func (r policyRoute) CommonSpec() *gatewayv1.CommonRouteSpec {
	return &r.route.Spec.CommonRouteSpec
}

func (r policyRoute) Status() *gatewayv1.RouteStatus {
	if r.route.Status == nil {
		return nil
	}
	return &r.route.Status.RouteStatus
}

func (r policyRoute) GKNN() routes.GroupKindNamespaceName {
	return GKNForResource(r.route).Namespaced(r.Namespace())
}

func (r policyRoute) Hostnames() []gatewayv1.Hostname {
	return r.route.Spec.Hostnames
}

func (r policyRoute) Rules() []Rule {
	rules := make([]Rule, 0, len(r.route.Spec.Rules))
	for i := range r.route.Spec.Rules {
		rule := &r.route.Spec.Rules[i]
		rules = append(rules, Rule{
			Matches:     rule.Matches,
			Filters:     liftFilters(rule.Filters),
			BackendRefs: liftBackendRefs(rule.BackendRefs),
			Timeouts:    rule.Timeouts,
		})
	}
	return rules
}

func (r policyRoute) CreationTimestamp() metav1.Time {
	return r.route.CreationTimestamp
}

func (r policyRoute) Object() client.Object {
	return r.route
}

// liftFilters maps policy filters onto the Gateway API filter type. The
// payload pointers are shared, not copied; conversion never mutates them.
func liftFilters(filters []v1alpha1.HTTPRouteFilter) []gatewayv1.HTTPRouteFilter {
	if filters == nil {
		return nil
	}
	out := make([]gatewayv1.HTTPRouteFilter, 0, len(filters))
	for _, f := range filters {
		out = append(out, gatewayv1.HTTPRouteFilter{
			Type:                   gatewayv1.HTTPRouteFilterType(f.Type),
			RequestHeaderModifier:  f.RequestHeaderModifier,
			ResponseHeaderModifier: f.ResponseHeaderModifier,
			RequestRedirect:        f.RequestRedirect,
		})
	}
	return out
}

func liftBackendRefs(refs []v1alpha1.HTTPBackendRef) []gatewayv1.HTTPBackendRef {
	if refs == nil {
		return nil
	}
	out := make([]gatewayv1.HTTPBackendRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, gatewayv1.HTTPBackendRef{BackendRef: ref.BackendRef})
	}
	return out
}
