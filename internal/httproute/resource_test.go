package httproute

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/api/v1alpha1"
	"github.com/vyrodovalexey/avapolicy/internal/routes"
)

func newGatewayRoute(namespace, name string) *gatewayv1.HTTPRoute {
	return &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         namespace,
			CreationTimestamp: metav1.NewTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		},
		Spec: gatewayv1.HTTPRouteSpec{
			CommonRouteSpec: gatewayv1.CommonRouteSpec{
				ParentRefs: []gatewayv1.ParentReference{{Name: "gw"}},
			},
			Hostnames: []gatewayv1.Hostname{"example.com"},
			Rules: []gatewayv1.HTTPRouteRule{{
				Matches: []gatewayv1.HTTPRouteMatch{{Path: &gatewayv1.HTTPPathMatch{Value: ptr.To("/a")}}},
				Filters: []gatewayv1.HTTPRouteFilter{{
					Type:                  gatewayv1.HTTPRouteFilterRequestHeaderModifier,
					RequestHeaderModifier: &gatewayv1.HTTPHeaderFilter{},
				}},
			}},
		},
	}
}

func newPolicyRoute(namespace, name string) *v1alpha1.HTTPRoute {
	return &v1alpha1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         namespace,
			CreationTimestamp: metav1.NewTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		},
		Spec: v1alpha1.HTTPRouteSpec{
			CommonRouteSpec: gatewayv1.CommonRouteSpec{
				ParentRefs: []gatewayv1.ParentReference{{Name: "gw"}},
			},
			Hostnames: []gatewayv1.Hostname{"example.com"},
			Rules: []v1alpha1.HTTPRouteRule{{
				Matches: []gatewayv1.HTTPRouteMatch{{Path: &gatewayv1.HTTPPathMatch{Value: ptr.To("/a")}}},
				Filters: []v1alpha1.HTTPRouteFilter{{
					Type:                  v1alpha1.HTTPRouteFilterRequestHeaderModifier,
					RequestHeaderModifier: &gatewayv1.HTTPHeaderFilter{},
				}},
			}},
		},
	}
}

func TestResource_Accessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		resource  Resource
		wantGroup string
	}{
		{name: "gateway", resource: FromGateway(newGatewayRoute("prod", "web")), wantGroup: gatewayv1.GroupName},
		{name: "policy", resource: FromPolicy(newPolicyRoute("prod", "web")), wantGroup: v1alpha1.GroupVersion.Group},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := tt.resource
			assert.Equal(t, "web", r.Name())
			assert.Equal(t, "prod", r.Namespace())
			require.NotNil(t, r.CommonSpec())
			assert.Equal(t, gatewayv1.ObjectName("gw"), r.CommonSpec().ParentRefs[0].Name)
			assert.Equal(t, routes.GroupKindNamespaceName{
				Group:     tt.wantGroup,
				Kind:      "HTTPRoute",
				Namespace: "prod",
				Name:      "web",
			}, r.GKNN())
			assert.Equal(t, []gatewayv1.Hostname{"example.com"}, r.Hostnames())
			assert.Equal(t, 2024, r.CreationTimestamp().Year())
			assert.NotNil(t, r.Object())

			rules := r.Rules()
			require.Len(t, rules, 1)
			require.Len(t, rules[0].Filters, 1)
			assert.Equal(t, gatewayv1.HTTPRouteFilterRequestHeaderModifier, rules[0].Filters[0].Type)
			assert.NotNil(t, rules[0].Filters[0].RequestHeaderModifier)
		})
	}
}

func TestResource_Status(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, FromGateway(newGatewayRoute("ns", "a")).Status())

	policy := newPolicyRoute("ns", "a")
	assert.Nil(t, FromPolicy(policy).Status())

	policy.Status = &v1alpha1.HTTPRouteStatus{
		RouteStatus: gatewayv1.RouteStatus{
			Parents: []gatewayv1.RouteParentStatus{{ControllerName: "example.com/controller"}},
		},
	}
	status := FromPolicy(policy).Status()
	require.NotNil(t, status)
	assert.Len(t, status.Parents, 1)
}

func TestResource_NamespaceRequired(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "HTTPRoute must have a namespace", func() {
		_ = FromGateway(newGatewayRoute("", "web")).Namespace()
	})
	assert.PanicsWithValue(t, "HTTPRoute must have a namespace", func() {
		_ = FromPolicy(newPolicyRoute("", "web")).GKNN()
	})
}

func TestFromObject(t *testing.T) {
	t.Parallel()

	r, ok := FromObject(newGatewayRoute("ns", "a"))
	require.True(t, ok)
	assert.Equal(t, gatewayv1.GroupName, r.GKNN().Group)

	r, ok = FromObject(newPolicyRoute("ns", "a"))
	require.True(t, ok)
	assert.Equal(t, v1alpha1.GroupVersion.Group, r.GKNN().Group)

	_, ok = FromObject(&gatewayv1.Gateway{})
	assert.False(t, ok)
}

func TestResource_SchemasConvertIdentically(t *testing.T) {
	t.Parallel()

	fromGateway, err := Convert(FromGateway(newGatewayRoute("ns", "a")))
	require.NoError(t, err)

	fromPolicy, err := Convert(FromPolicy(newPolicyRoute("ns", "a")))
	require.NoError(t, err)

	assert.Equal(t, fromGateway, fromPolicy)
}
