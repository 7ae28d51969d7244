package routes

// Header is a validated header name/value pair.
type Header struct {
	Name  HeaderName
	Value HeaderValue
}

// HeaderModifierFilter adds, sets and removes headers. Add and Set keep the
// source order; all three slices are non-nil.
type HeaderModifierFilter struct {
	Add    []Header
	Set    []Header
	Remove []HeaderName
}

// PathModifierKind selects how a redirect rewrites the path.
type PathModifierKind int

const (
	// PathModifierFull replaces the whole path.
	PathModifierFull PathModifierKind = iota
	// PathModifierPrefix replaces the matched prefix.
	PathModifierPrefix
)

// String returns the kind name.
func (k PathModifierKind) String() string {
	if k == PathModifierPrefix {
		return "Prefix"
	}
	return "Full"
}

// PathModifier rewrites a request path. Path always begins with '/'.
type PathModifier struct {
	Kind PathModifierKind
	Path string
}

// RequestRedirectFilter answers a request with a redirect. A zero value in
// any field means the corresponding part of the request is kept.
type RequestRedirectFilter struct {
	Scheme Scheme
	Host   string
	Path   *PathModifier
	Port   uint16
	Status StatusCode
}

// FilterKind identifies the payload of a Filter.
type FilterKind int

const (
	// FilterRequestHeaderModifier modifies request headers.
	FilterRequestHeaderModifier FilterKind = iota
	// FilterResponseHeaderModifier modifies response headers.
	FilterResponseHeaderModifier
	// FilterRequestRedirect redirects the request.
	FilterRequestRedirect
)

// String returns the kind name.
func (k FilterKind) String() string {
	switch k {
	case FilterRequestHeaderModifier:
		return "RequestHeaderModifier"
	case FilterResponseHeaderModifier:
		return "ResponseHeaderModifier"
	case FilterRequestRedirect:
		return "RequestRedirect"
	default:
		return "Unknown"
	}
}

// Filter is one request or response processing step. Exactly the payload
// matching Kind is set.
type Filter struct {
	Kind                   FilterKind
	RequestHeaderModifier  *HeaderModifierFilter
	ResponseHeaderModifier *HeaderModifierFilter
	RequestRedirect        *RequestRedirectFilter
}
