package httproute

import (
	"sigs.k8s.io/controller-runtime/pkg/client"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/api/v1alpha1"
	"github.com/vyrodovalexey/avapolicy/internal/routes"
)

const httpRouteKind = "HTTPRoute"

// RouteObject is the set of HTTPRoute types an identity can be derived for.
type RouteObject interface {
	*gatewayv1.HTTPRoute | *v1alpha1.HTTPRoute
	client.Object
}

// GKNForResource returns the identity of obj. Group and kind are fixed by
// the type parameter; only the name is read from the object.
func GKNForResource[T RouteObject](obj T) routes.GroupKindName {
	gkn := gknForType[T]()
	gkn.Name = obj.GetName()
	return gkn
}

// GKNForGatewayHTTPRoute returns the identity of the Gateway API HTTPRoute
// called name.
func GKNForGatewayHTTPRoute(name string) routes.GroupKindName {
	gkn := gknForType[*gatewayv1.HTTPRoute]()
	gkn.Name = name
	return gkn
}

// GKNForPolicyHTTPRoute returns the identity of the policy HTTPRoute called
// name.
func GKNForPolicyHTTPRoute(name string) routes.GroupKindName {
	gkn := gknForType[*v1alpha1.HTTPRoute]()
	gkn.Name = name
	return gkn
}

func gknForType[T RouteObject]() routes.GroupKindName {
	var zero T
	switch any(zero).(type) {
	case *gatewayv1.HTTPRoute:
		return routes.GroupKindName{Group: gatewayv1.GroupName, Kind: httpRouteKind}
	case *v1alpha1.HTTPRoute:
		return routes.GroupKindName{Group: v1alpha1.GroupVersion.Group, Kind: v1alpha1.HTTPRouteKind}
	default:
		panic("unreachable: RouteObject has no other members")
	}
}
