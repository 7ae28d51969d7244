package routes

import (
	"regexp"
	"strings"
)

// PathMatchKind selects how a PathMatch compares the request path.
type PathMatchKind int

const (
	// PathMatchExact matches the path exactly.
	PathMatchExact PathMatchKind = iota
	// PathMatchPrefix matches a path prefix.
	PathMatchPrefix
	// PathMatchRegex matches the path against a regular expression.
	PathMatchRegex
)

// String returns the kind name.
func (k PathMatchKind) String() string {
	switch k {
	case PathMatchExact:
		return "Exact"
	case PathMatchPrefix:
		return "Prefix"
	case PathMatchRegex:
		return "Regex"
	default:
		return "Unknown"
	}
}

// PathMatch is a request path predicate. Exact and Prefix values always
// begin with '/'; Regex carries the compiled pattern in Regex and its source
// in Value.
type PathMatch struct {
	Kind  PathMatchKind
	Value string
	Regex *regexp.Regexp
}

// ExactPath returns an exact path match.
func ExactPath(path string) PathMatch {
	return PathMatch{Kind: PathMatchExact, Value: path}
}

// PrefixPath returns a prefix path match.
func PrefixPath(path string) PathMatch {
	return PathMatch{Kind: PathMatchPrefix, Value: path}
}

// RegexPath returns a regular expression path match.
func RegexPath(re *regexp.Regexp) PathMatch {
	return PathMatch{Kind: PathMatchRegex, Value: re.String(), Regex: re}
}

// String renders the match for logs.
func (m PathMatch) String() string {
	return m.Kind.String() + "(" + m.Value + ")"
}

// StringMatchKind selects how a header or query parameter value is compared.
type StringMatchKind int

const (
	// StringMatchExact compares values for equality.
	StringMatchExact StringMatchKind = iota
	// StringMatchRegex matches values against a regular expression.
	StringMatchRegex
)

// String returns the kind name.
func (k StringMatchKind) String() string {
	switch k {
	case StringMatchExact:
		return "Exact"
	case StringMatchRegex:
		return "Regex"
	default:
		return "Unknown"
	}
}

// HeaderMatch is a request header predicate.
type HeaderMatch struct {
	Kind  StringMatchKind
	Name  HeaderName
	Value HeaderValue
	Regex *regexp.Regexp
}

// QueryParamMatch is a query parameter predicate. Names and values are not
// restricted to header grammar.
type QueryParamMatch struct {
	Kind  StringMatchKind
	Name  string
	Value string
	Regex *regexp.Regexp
}

// HostMatchKind selects how a HostMatch compares the request authority.
type HostMatchKind int

const (
	// HostMatchExact compares the full hostname.
	HostMatchExact HostMatchKind = iota
	// HostMatchSuffix compares trailing DNS labels of a wildcard hostname.
	HostMatchSuffix
)

// HostMatch is a hostname predicate. For HostMatchSuffix, ReverseLabels holds
// the labels after the wildcard in outer-to-inner order: "*.example.com"
// becomes ["com", "example"].
type HostMatch struct {
	Kind          HostMatchKind
	Hostname      string
	ReverseLabels []string
}

// ExactHost returns an exact host match.
func ExactHost(hostname string) HostMatch {
	return HostMatch{Kind: HostMatchExact, Hostname: hostname}
}

// SuffixHost returns a suffix host match over the given reversed labels.
func SuffixHost(reverseLabels ...string) HostMatch {
	return HostMatch{Kind: HostMatchSuffix, ReverseLabels: reverseLabels}
}

// String renders the match in its source form.
func (m HostMatch) String() string {
	if m.Kind == HostMatchExact {
		return m.Hostname
	}
	labels := make([]string, len(m.ReverseLabels))
	for i, l := range m.ReverseLabels {
		labels[len(labels)-1-i] = l
	}
	return "*." + strings.Join(labels, ".")
}

// HTTPRouteMatch is the conjunction of predicates one request must satisfy.
// Headers and QueryParams are empty, not nil, when the source omitted them.
type HTTPRouteMatch struct {
	Path        *PathMatch
	Headers     []HeaderMatch
	QueryParams []QueryParamMatch
	Method      *Method
}
