package index

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avapolicy/internal/routes"
)

func key(group, namespace, name string) routes.GroupKindNamespaceName {
	return routes.GroupKindName{Group: group, Kind: "HTTPRoute", Name: name}.Namespaced(namespace)
}

func routeAt(ts time.Time) routes.HTTPRoute {
	return routes.HTTPRoute{CreationTimestamp: ts}
}

func TestStore_ApplyGetDelete(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	k := key("gateway.networking.k8s.io", "default", "web")

	_, ok := s.Get(k)
	assert.False(t, ok)

	assert.True(t, s.Apply(k, routes.HTTPRoute{Hostnames: []routes.HostMatch{routes.ExactHost("a")}}))
	assert.False(t, s.Apply(k, routes.HTTPRoute{Hostnames: []routes.HostMatch{routes.ExactHost("b")}}))
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(k)
	require.True(t, ok)
	assert.Equal(t, routes.ExactHost("b"), got.Hostnames[0])

	assert.True(t, s.Delete(k))
	assert.False(t, s.Delete(k))
	assert.Equal(t, 0, s.Len())
}

func TestStore_ListOrder(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Apply(key("g", "ns", "newest"), routeAt(base.Add(time.Hour)))
	s.Apply(key("g", "ns", "b"), routeAt(base))
	s.Apply(key("g", "ns", "a"), routeAt(base))
	s.Apply(key("g", "another", "z"), routeAt(base))

	entries := s.List()
	require.Len(t, entries, 4)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Key.Namespace+"/"+e.Key.Name)
	}
	assert.Equal(t, []string{"another/z", "ns/a", "ns/b", "ns/newest"}, names)
}

func TestStore_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	s := NewStore(reg)

	s.Apply(key("gateway.networking.k8s.io", "ns", "a"), routes.HTTPRoute{})
	s.Apply(key("gateway.networking.k8s.io", "ns", "a"), routes.HTTPRoute{})
	s.Apply(key("gateway.networking.k8s.io", "ns", "b"), routes.HTTPRoute{})
	s.Apply(key("policy.avapigw.vyrodovalexey.github.com", "ns", "a"), routes.HTTPRoute{})
	s.Delete(key("gateway.networking.k8s.io", "ns", "b"))

	assert.Equal(t, float64(1), testutil.ToFloat64(s.size.WithLabelValues("gateway.networking.k8s.io")))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.size.WithLabelValues("policy.avapigw.vyrodovalexey.github.com")))
	assert.Equal(t, 2, testutil.CollectAndCount(s.size))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	family := families[0]
	assert.Equal(t, "avapolicy_index_routes", family.GetName())
	assert.Equal(t, dto.MetricType_GAUGE, family.GetType())

	byGroup := map[string]float64{}
	for _, m := range family.GetMetric() {
		require.Len(t, m.GetLabel(), 1)
		byGroup[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
	}
	assert.Equal(t, map[string]float64{
		"gateway.networking.k8s.io":               1,
		"policy.avapigw.vyrodovalexey.github.com": 1,
	}, byGroup)
}

func TestStore_Concurrent(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := key("g", "ns", fmt.Sprintf("r%d", i))
			s.Apply(k, routes.HTTPRoute{})
			_, _ = s.Get(k)
			_ = s.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
