// Package v1alpha1 contains API Schema definitions for the avapolicy v1alpha1 API group.
// This package defines the vendor HTTPRoute Custom Resource Definition, a mirror of the
// Gateway API HTTPRoute that is versioned independently of it.
//
// +kubebuilder:object:generate=true
// +groupName=policy.avapigw.vyrodovalexey.github.com
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "policy.avapigw.vyrodovalexey.github.com", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

// HTTPRouteKind is the kind of the HTTPRoute resource.
const HTTPRouteKind = "HTTPRoute"
