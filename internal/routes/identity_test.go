package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupKindName_Namespaced(t *testing.T) {
	t.Parallel()

	gkn := GroupKindName{Group: "gateway.networking.k8s.io", Kind: "HTTPRoute", Name: "api"}
	gknn := gkn.Namespaced("default")

	assert.Equal(t, GroupKindNamespaceName{
		Group:     "gateway.networking.k8s.io",
		Kind:      "HTTPRoute",
		Namespace: "default",
		Name:      "api",
	}, gknn)
	assert.Equal(t, gkn, gknn.GroupKindName())
}

func TestGroupKindName_String(t *testing.T) {
	t.Parallel()

	gkn := GroupKindName{Group: "gateway.networking.k8s.io", Kind: "HTTPRoute", Name: "api"}
	assert.Equal(t, "gateway.networking.k8s.io/HTTPRoute/api", gkn.String())
	assert.Equal(t, "gateway.networking.k8s.io/HTTPRoute/prod/api", gkn.Namespaced("prod").String())

	core := GroupKindName{Kind: "Service", Name: "web"}
	assert.Equal(t, "core/Service/web", core.String())
}

func TestGroupKindNamespaceName_Comparable(t *testing.T) {
	t.Parallel()

	a := GroupKindName{Group: "g", Kind: "K", Name: "n"}.Namespaced("ns")
	b := GroupKindName{Group: "g", Kind: "K", Name: "n"}.Namespaced("ns")

	m := map[GroupKindNamespaceName]int{a: 1}
	assert.Equal(t, 1, m[b])
}
