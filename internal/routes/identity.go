package routes

// GroupKindName identifies a resource by API group, kind and name. It is
// used as a lookup and cross-reference key, never for ownership.
type GroupKindName struct {
	Group string
	Kind  string
	Name  string
}

// Namespaced extends the key with the namespace the resource lives in.
func (g GroupKindName) Namespaced(namespace string) GroupKindNamespaceName {
	return GroupKindNamespaceName{
		Group:     g.Group,
		Kind:      g.Kind,
		Namespace: namespace,
		Name:      g.Name,
	}
}

// String renders the key as group/kind/name.
func (g GroupKindName) String() string {
	return groupOrCore(g.Group) + "/" + g.Kind + "/" + g.Name
}

// GroupKindNamespaceName identifies a namespaced resource.
type GroupKindNamespaceName struct {
	Group     string
	Kind      string
	Namespace string
	Name      string
}

// GroupKindName drops the namespace from the key.
func (g GroupKindNamespaceName) GroupKindName() GroupKindName {
	return GroupKindName{Group: g.Group, Kind: g.Kind, Name: g.Name}
}

// String renders the key as group/kind/namespace/name.
func (g GroupKindNamespaceName) String() string {
	return groupOrCore(g.Group) + "/" + g.Kind + "/" + g.Namespace + "/" + g.Name
}

func groupOrCore(group string) string {
	if group == "" {
		return "core"
	}
	return group
}
