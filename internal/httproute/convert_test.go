package httproute

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/internal/routes"
	"github.com/vyrodovalexey/avapolicy/internal/util"
)

func TestConvert_EndToEnd(t *testing.T) {
	t.Parallel()

	route := &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "default"},
		Spec: gatewayv1.HTTPRouteSpec{
			Hostnames: []gatewayv1.Hostname{"*.example.com", "example.com"},
			Rules: []gatewayv1.HTTPRouteRule{{
				Matches: []gatewayv1.HTTPRouteMatch{
					{Path: &gatewayv1.HTTPPathMatch{
						Type:  ptr.To(gatewayv1.PathMatchPathPrefix),
						Value: ptr.To("/api"),
					}},
					{Method: ptr.To(gatewayv1.HTTPMethodGet)},
				},
				Filters: []gatewayv1.HTTPRouteFilter{{
					Type: gatewayv1.HTTPRouteFilterRequestHeaderModifier,
					RequestHeaderModifier: &gatewayv1.HTTPHeaderFilter{
						Add: []gatewayv1.HTTPHeader{{Name: "x-trace", Value: "1"}},
					},
				}},
			}},
		},
	}

	got, err := Convert(FromGateway(route))
	require.NoError(t, err)

	assert.Equal(t, []routes.HostMatch{
		routes.SuffixHost("com", "example"),
		routes.ExactHost("example.com"),
	}, got.Hostnames)

	require.Len(t, got.Rules, 1)
	rule := got.Rules[0]

	prefix := routes.PrefixPath("/api")
	get := routes.MethodGet
	assert.Equal(t, []routes.HTTPRouteMatch{
		{Path: &prefix, Headers: []routes.HeaderMatch{}, QueryParams: []routes.QueryParamMatch{}},
		{Method: &get, Headers: []routes.HeaderMatch{}, QueryParams: []routes.QueryParamMatch{}},
	}, rule.Matches)

	assert.Equal(t, []routes.Filter{{
		Kind: routes.FilterRequestHeaderModifier,
		RequestHeaderModifier: &routes.HeaderModifierFilter{
			Add:    []routes.Header{{Name: "x-trace", Value: "1"}},
			Set:    []routes.Header{},
			Remove: []routes.HeaderName{},
		},
	}}, rule.Filters)
	assert.Empty(t, rule.Backends)
	assert.Equal(t, routes.Timeouts{}, rule.Timeouts)
}

func TestConvert_RuleIndexInError(t *testing.T) {
	t.Parallel()

	route := newGatewayRoute("default", "api")
	route.Spec.Rules = append(route.Spec.Rules, gatewayv1.HTTPRouteRule{
		Filters: []gatewayv1.HTTPRouteFilter{{
			Type: gatewayv1.HTTPRouteFilterRequestRedirect,
			RequestRedirect: &gatewayv1.HTTPRequestRedirectFilter{
				Path: &gatewayv1.HTTPPathModifier{
					Type:            gatewayv1.FullPathHTTPPathModifier,
					ReplaceFullPath: ptr.To("relative"),
				},
			},
		}},
	})

	_, err := Convert(FromGateway(route))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule[1]: ")
	assert.Contains(t, err.Error(), `"relative"`)

	var verr *util.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "relative", verr.Value)
}

func TestConvert_Backends(t *testing.T) {
	t.Parallel()

	route := newGatewayRoute("default", "api")
	route.Spec.Rules[0].BackendRefs = []gatewayv1.HTTPBackendRef{
		{BackendRef: gatewayv1.BackendRef{
			BackendObjectReference: gatewayv1.BackendObjectReference{
				Name: "web",
				Port: ptr.To(gatewayv1.PortNumber(8080)),
			},
		}},
		{BackendRef: gatewayv1.BackendRef{
			BackendObjectReference: gatewayv1.BackendObjectReference{
				Name:      "canary",
				Namespace: ptr.To(gatewayv1.Namespace("other")),
				Port:      ptr.To(gatewayv1.PortNumber(80)),
			},
			Weight: ptr.To(int32(0)),
		}},
	}

	got, err := Convert(FromGateway(route))
	require.NoError(t, err)
	assert.Equal(t, []routes.Backend{
		{Kind: "Service", Namespace: "default", Name: "web", Port: 8080, Weight: 1},
		{Kind: "Service", Namespace: "other", Name: "canary", Port: 80, Weight: 0},
	}, got.Rules[0].Backends)
}

func TestBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ref     gatewayv1.HTTPBackendRef
		want    routes.Backend
		wantErr bool
	}{
		{
			name: "custom kind without port",
			ref: gatewayv1.HTTPBackendRef{BackendRef: gatewayv1.BackendRef{
				BackendObjectReference: gatewayv1.BackendObjectReference{
					Group: ptr.To(gatewayv1.Group("example.com")),
					Kind:  ptr.To(gatewayv1.Kind("Bucket")),
					Name:  "assets",
				},
			}},
			want: routes.Backend{Group: "example.com", Kind: "Bucket", Namespace: "ns", Name: "assets", Weight: 1},
		},
		{
			name: "service without port",
			ref: gatewayv1.HTTPBackendRef{BackendRef: gatewayv1.BackendRef{
				BackendObjectReference: gatewayv1.BackendObjectReference{Name: "web"},
			}},
			wantErr: true,
		},
		{
			name: "invalid port",
			ref: gatewayv1.HTTPBackendRef{BackendRef: gatewayv1.BackendRef{
				BackendObjectReference: gatewayv1.BackendObjectReference{
					Name: "web",
					Port: ptr.To(gatewayv1.PortNumber(0)),
				},
			}},
			wantErr: true,
		},
		{
			name: "negative weight",
			ref: gatewayv1.HTTPBackendRef{BackendRef: gatewayv1.BackendRef{
				BackendObjectReference: gatewayv1.BackendObjectReference{
					Name: "web",
					Port: ptr.To(gatewayv1.PortNumber(80)),
				},
				Weight: ptr.To(int32(-1)),
			}},
			wantErr: true,
		},
		{
			name: "backend filters",
			ref: gatewayv1.HTTPBackendRef{
				BackendRef: gatewayv1.BackendRef{
					BackendObjectReference: gatewayv1.BackendObjectReference{
						Name: "web",
						Port: ptr.To(gatewayv1.PortNumber(80)),
					},
				},
				Filters: []gatewayv1.HTTPRouteFilter{{Type: gatewayv1.HTTPRouteFilterRequestHeaderModifier}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Backend("ns", tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, util.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeouts(t *testing.T) {
	t.Parallel()

	got, err := Timeouts(nil)
	require.NoError(t, err)
	assert.Equal(t, routes.Timeouts{}, got)

	got, err = Timeouts(&gatewayv1.HTTPRouteTimeouts{
		Request:        ptr.To(gatewayv1.Duration("10s")),
		BackendRequest: ptr.To(gatewayv1.Duration("1h2m")),
	})
	require.NoError(t, err)
	assert.Equal(t, routes.Timeouts{Request: 10 * time.Second, BackendRequest: time.Hour + 2*time.Minute}, got)

	_, err = Timeouts(&gatewayv1.HTTPRouteTimeouts{Request: ptr.To(gatewayv1.Duration("soon"))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeouts.request")

	_, err = Timeouts(&gatewayv1.HTTPRouteTimeouts{BackendRequest: ptr.To(gatewayv1.Duration("-1s"))})
	assert.Error(t, err)
}

func TestConvert_Pure(t *testing.T) {
	t.Parallel()

	route := newGatewayRoute("default", "api")
	snapshot := route.DeepCopy()

	first, err := Convert(FromGateway(route))
	require.NoError(t, err)
	second, err := Convert(FromGateway(route))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, route)
}
