package httproute

import (
	"fmt"
	"strings"

	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/internal/routes"
	"github.com/vyrodovalexey/avapolicy/internal/util"
)

// TryMatch converts one Gateway API match into a canonical match. Absent
// header and query parameter lists become empty slices. The first failing
// predicate aborts the conversion and its error is returned unchanged.
func TryMatch(match gatewayv1.HTTPRouteMatch) (routes.HTTPRouteMatch, error) {
	out := routes.HTTPRouteMatch{
		Headers:     make([]routes.HeaderMatch, 0, len(match.Headers)),
		QueryParams: make([]routes.QueryParamMatch, 0, len(match.QueryParams)),
	}

	if match.Path != nil {
		path, err := PathMatch(*match.Path)
		if err != nil {
			return routes.HTTPRouteMatch{}, err
		}
		out.Path = &path
	}

	for _, h := range match.Headers {
		header, err := HeaderMatch(h)
		if err != nil {
			return routes.HTTPRouteMatch{}, err
		}
		out.Headers = append(out.Headers, header)
	}

	for _, q := range match.QueryParams {
		param, err := QueryParamMatch(q)
		if err != nil {
			return routes.HTTPRouteMatch{}, err
		}
		out.QueryParams = append(out.QueryParams, param)
	}

	if match.Method != nil {
		method, err := Method(*match.Method)
		if err != nil {
			return routes.HTTPRouteMatch{}, err
		}
		out.Method = &method
	}

	return out, nil
}

// PathMatch converts a path predicate. A missing type means PathPrefix and a
// missing value means "/", as defaulted by the Gateway API CRDs.
func PathMatch(match gatewayv1.HTTPPathMatch) (routes.PathMatch, error) {
	kind := gatewayv1.PathMatchPathPrefix
	if match.Type != nil {
		kind = *match.Type
	}
	value := "/"
	if match.Value != nil {
		value = *match.Value
	}

	switch kind {
	case gatewayv1.PathMatchExact, gatewayv1.PathMatchPathPrefix:
		if !strings.HasPrefix(value, "/") {
			return routes.PathMatch{}, util.NewValidationError("path", value, fmt.Sprintf(
				"HTTPPathMatch paths must be absolute (begin with '/'); %q is not an absolute path", value))
		}
		if kind == gatewayv1.PathMatchExact {
			return routes.ExactPath(value), nil
		}
		return routes.PrefixPath(value), nil

	case gatewayv1.PathMatchRegularExpression:
		re, err := routes.CompileRegex("path", value)
		if err != nil {
			return routes.PathMatch{}, err
		}
		return routes.RegexPath(re), nil

	default:
		return routes.PathMatch{}, util.NewUnsupportedError("path.type", string(kind))
	}
}

// HostMatch converts a route hostname. "*.example.com" becomes a suffix
// match over the labels ["com", "example"]; anything else is an exact
// match. Hostnames are not validated here.
func HostMatch(hostname gatewayv1.Hostname) routes.HostMatch {
	host := string(hostname)
	if !strings.HasPrefix(host, "*.") {
		return routes.ExactHost(host)
	}

	labels := strings.Split(host, ".")[1:]
	reversed := make([]string, 0, len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		reversed = append(reversed, labels[i])
	}
	return routes.SuffixHost(reversed...)
}

// HeaderMatch converts a header predicate. Both the name and the value are
// validated against the HTTP grammar; a RegularExpression value is also
// compiled.
func HeaderMatch(match gatewayv1.HTTPHeaderMatch) (routes.HeaderMatch, error) {
	kind := gatewayv1.HeaderMatchExact
	if match.Type != nil {
		kind = *match.Type
	}

	name, err := routes.ParseHeaderName(string(match.Name))
	if err != nil {
		return routes.HeaderMatch{}, err
	}
	value, err := routes.ParseHeaderValue(match.Value)
	if err != nil {
		return routes.HeaderMatch{}, err
	}

	switch kind {
	case gatewayv1.HeaderMatchExact:
		return routes.HeaderMatch{Kind: routes.StringMatchExact, Name: name, Value: value}, nil

	case gatewayv1.HeaderMatchRegularExpression:
		re, err := routes.CompileRegex("header value", match.Value)
		if err != nil {
			return routes.HeaderMatch{}, err
		}
		return routes.HeaderMatch{Kind: routes.StringMatchRegex, Name: name, Value: value, Regex: re}, nil

	default:
		return routes.HeaderMatch{}, util.NewUnsupportedError("headers.type", string(kind))
	}
}

// QueryParamMatch converts a query parameter predicate. Exact matches copy
// the name and value verbatim.
func QueryParamMatch(match gatewayv1.HTTPQueryParamMatch) (routes.QueryParamMatch, error) {
	kind := gatewayv1.QueryParamMatchExact
	if match.Type != nil {
		kind = *match.Type
	}
	name := string(match.Name)

	switch kind {
	case gatewayv1.QueryParamMatchExact:
		return routes.QueryParamMatch{Kind: routes.StringMatchExact, Name: name, Value: match.Value}, nil

	case gatewayv1.QueryParamMatchRegularExpression:
		re, err := routes.CompileRegex("query parameter value", match.Value)
		if err != nil {
			return routes.QueryParamMatch{}, err
		}
		return routes.QueryParamMatch{Kind: routes.StringMatchRegex, Name: name, Value: match.Value, Regex: re}, nil

	default:
		return routes.QueryParamMatch{}, util.NewUnsupportedError("queryParams.type", string(kind))
	}
}

// Method converts a method token.
func Method(method gatewayv1.HTTPMethod) (routes.Method, error) {
	return routes.ParseMethod(string(method))
}
