package v1alpha1

import (
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"
)

func newTestRoute() *HTTPRoute {
	port := gatewayv1.PortNumber(8080)
	status := 302
	return &HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Name: "redirect", Namespace: "team-a"},
		Spec: HTTPRouteSpec{
			Hostnames: []gatewayv1.Hostname{"example.com"},
			Rules: []HTTPRouteRule{{
				Filters: []HTTPRouteFilter{{
					Type: HTTPRouteFilterRequestRedirect,
					RequestRedirect: &gatewayv1.HTTPRequestRedirectFilter{
						Port:       &port,
						StatusCode: &status,
					},
				}},
				BackendRefs: []HTTPBackendRef{{
					BackendRef: gatewayv1.BackendRef{
						BackendObjectReference: gatewayv1.BackendObjectReference{Name: "web", Port: &port},
					},
				}},
			}},
		},
		Status: &HTTPRouteStatus{},
	}
}

func TestHTTPRoute_DeepCopy(t *testing.T) {
	route := newTestRoute()
	copied := route.DeepCopy()

	copied.Spec.Hostnames[0] = "other.example.com"
	*copied.Spec.Rules[0].Filters[0].RequestRedirect.Port = 9090
	*copied.Spec.Rules[0].BackendRefs[0].Port = 9090

	if route.Spec.Hostnames[0] != "example.com" {
		t.Errorf("Hostnames[0] = %v, want example.com", route.Spec.Hostnames[0])
	}
	if *route.Spec.Rules[0].Filters[0].RequestRedirect.Port != 8080 {
		t.Errorf("redirect port = %v, want 8080", *route.Spec.Rules[0].Filters[0].RequestRedirect.Port)
	}
	if *route.Spec.Rules[0].BackendRefs[0].Port != 8080 {
		t.Errorf("backend port = %v, want 8080", *route.Spec.Rules[0].BackendRefs[0].Port)
	}
	if copied.Status == route.Status {
		t.Error("Status pointer was shared by the copy")
	}
}

func TestHTTPRoute_DeepCopyNil(t *testing.T) {
	var route *HTTPRoute
	if route.DeepCopy() != nil {
		t.Error("DeepCopy of nil HTTPRoute should be nil")
	}
	if route.DeepCopyObject() != nil {
		t.Error("DeepCopyObject of nil HTTPRoute should be nil")
	}
}

func TestHTTPRouteList_DeepCopyObject(t *testing.T) {
	list := &HTTPRouteList{Items: []HTTPRoute{*newTestRoute()}}
	obj := list.DeepCopyObject()

	copied, ok := obj.(*HTTPRouteList)
	if !ok {
		t.Fatalf("DeepCopyObject returned %T, want *HTTPRouteList", obj)
	}
	if len(copied.Items) != 1 {
		t.Fatalf("Items length = %v, want 1", len(copied.Items))
	}
	copied.Items[0].Name = "changed"
	if list.Items[0].Name != "redirect" {
		t.Errorf("Items[0].Name = %v, want redirect", list.Items[0].Name)
	}
}

func TestAddToScheme(t *testing.T) {
	scheme := runtime.NewScheme()
	if err := AddToScheme(scheme); err != nil {
		t.Fatalf("AddToScheme() error = %v", err)
	}

	for _, kind := range []string{HTTPRouteKind, HTTPRouteKind + "List"} {
		gvk := GroupVersion.WithKind(kind)
		if !scheme.Recognizes(gvk) {
			t.Errorf("scheme does not recognize %v", gvk)
		}
	}
}
