package controller

import (
	"sigs.k8s.io/controller-runtime/pkg/client"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/api/v1alpha1"
	"github.com/vyrodovalexey/avapolicy/internal/httproute"
	"github.com/vyrodovalexey/avapolicy/internal/routes"
)

// RouteKind describes one HTTPRoute schema handled by HTTPRouteReconciler.
type RouteKind struct {
	// Name is the short kind name used in metrics, logs and controller names.
	Name string

	// NewObject returns an empty object of the watched type.
	NewObject func() client.Object

	// Identity returns the identity of the route called name. It must agree
	// with the identity the route adapter derives from a full object, so
	// that deletions can be resolved without the object.
	Identity func(name string) routes.GroupKindName
}

// GatewayHTTPRouteKind handles gateway.networking.k8s.io HTTPRoutes.
var GatewayHTTPRouteKind = RouteKind{
	Name:      "gateway",
	NewObject: func() client.Object { return &gatewayv1.HTTPRoute{} },
	Identity:  httproute.GKNForGatewayHTTPRoute,
}

// PolicyHTTPRouteKind handles policy.avapigw.vyrodovalexey.github.com HTTPRoutes.
var PolicyHTTPRouteKind = RouteKind{
	Name:      "policy",
	NewObject: func() client.Object { return &v1alpha1.HTTPRoute{} },
	Identity:  httproute.GKNForPolicyHTTPRoute,
}

// Sink receives converted routes. It is implemented by the route index.
type Sink interface {
	// Apply stores route under key and reports whether the key was new.
	Apply(key routes.GroupKindNamespaceName, route routes.HTTPRoute) bool

	// Delete removes the route stored under key and reports whether one
	// was removed.
	Delete(key routes.GroupKindNamespaceName) bool
}
