package httproute

import (
	"fmt"
	"strings"

	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/internal/routes"
	"github.com/vyrodovalexey/avapolicy/internal/util"
)

// Filter converts a route filter. Only header modifiers and redirects are
// understood; every other filter type is rejected as unsupported so that a
// route is never applied with part of its behavior silently missing.
func Filter(filter gatewayv1.HTTPRouteFilter) (routes.Filter, error) {
	switch filter.Type {
	case gatewayv1.HTTPRouteFilterRequestHeaderModifier:
		if filter.RequestHeaderModifier == nil {
			return routes.Filter{}, missingPayload(filter.Type)
		}
		modifier, err := HeaderModifier(*filter.RequestHeaderModifier)
		if err != nil {
			return routes.Filter{}, err
		}
		return routes.Filter{Kind: routes.FilterRequestHeaderModifier, RequestHeaderModifier: &modifier}, nil

	case gatewayv1.HTTPRouteFilterResponseHeaderModifier:
		if filter.ResponseHeaderModifier == nil {
			return routes.Filter{}, missingPayload(filter.Type)
		}
		modifier, err := HeaderModifier(*filter.ResponseHeaderModifier)
		if err != nil {
			return routes.Filter{}, err
		}
		return routes.Filter{Kind: routes.FilterResponseHeaderModifier, ResponseHeaderModifier: &modifier}, nil

	case gatewayv1.HTTPRouteFilterRequestRedirect:
		if filter.RequestRedirect == nil {
			return routes.Filter{}, missingPayload(filter.Type)
		}
		redirect, err := RequestRedirect(*filter.RequestRedirect)
		if err != nil {
			return routes.Filter{}, err
		}
		return routes.Filter{Kind: routes.FilterRequestRedirect, RequestRedirect: &redirect}, nil

	default:
		return routes.Filter{}, util.NewUnsupportedError("filter.type", string(filter.Type))
	}
}

func missingPayload(kind gatewayv1.HTTPRouteFilterType) error {
	return util.NewValidationError("filter", string(kind),
		fmt.Sprintf("filter of type %s has no %s configuration", kind, lowerFirst(string(kind))))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// HeaderModifier converts a header modifier. Absent lists become empty
// slices; add and set keep their order.
func HeaderModifier(filter gatewayv1.HTTPHeaderFilter) (routes.HeaderModifierFilter, error) {
	add, err := headers(filter.Add)
	if err != nil {
		return routes.HeaderModifierFilter{}, err
	}
	set, err := headers(filter.Set)
	if err != nil {
		return routes.HeaderModifierFilter{}, err
	}

	remove := make([]routes.HeaderName, 0, len(filter.Remove))
	for _, raw := range filter.Remove {
		name, err := routes.ParseHeaderName(raw)
		if err != nil {
			return routes.HeaderModifierFilter{}, err
		}
		remove = append(remove, name)
	}

	return routes.HeaderModifierFilter{Add: add, Set: set, Remove: remove}, nil
}

func headers(in []gatewayv1.HTTPHeader) ([]routes.Header, error) {
	out := make([]routes.Header, 0, len(in))
	for _, h := range in {
		name, err := routes.ParseHeaderName(string(h.Name))
		if err != nil {
			return nil, err
		}
		value, err := routes.ParseHeaderValue(h.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, routes.Header{Name: name, Value: value})
	}
	return out, nil
}

// RequestRedirect converts a redirect filter. A port outside 1-65535 is
// dropped rather than rejected and the redirect keeps the request port.
func RequestRedirect(filter gatewayv1.HTTPRequestRedirectFilter) (routes.RequestRedirectFilter, error) {
	var out routes.RequestRedirectFilter

	if filter.Scheme != nil {
		scheme, err := routes.ParseScheme(*filter.Scheme)
		if err != nil {
			return routes.RequestRedirectFilter{}, err
		}
		out.Scheme = scheme
	}

	if filter.Hostname != nil {
		out.Host = string(*filter.Hostname)
	}

	if filter.Path != nil {
		path, err := pathModifier(*filter.Path)
		if err != nil {
			return routes.RequestRedirectFilter{}, err
		}
		out.Path = &path
	}

	if filter.Port != nil {
		if port := int(*filter.Port); util.ValidatePort(port) == nil {
			out.Port = uint16(port) //nolint:gosec // G115: bounded by ValidatePort
		}
	}

	if filter.StatusCode != nil {
		status, err := routes.ParseStatusCode(*filter.StatusCode)
		if err != nil {
			return routes.RequestRedirectFilter{}, err
		}
		out.Status = status
	}

	return out, nil
}

func pathModifier(modifier gatewayv1.HTTPPathModifier) (routes.PathModifier, error) {
	var (
		kind  routes.PathModifierKind
		value *string
	)
	switch modifier.Type {
	case gatewayv1.FullPathHTTPPathModifier:
		kind, value = routes.PathModifierFull, modifier.ReplaceFullPath
	case gatewayv1.PrefixMatchHTTPPathModifier:
		kind, value = routes.PathModifierPrefix, modifier.ReplacePrefixMatch
	default:
		return routes.PathModifier{}, util.NewUnsupportedError("path.type", string(modifier.Type))
	}

	if value == nil {
		return routes.PathModifier{}, util.NewValidationError("path", string(modifier.Type),
			fmt.Sprintf("%s path modifier has no %s value", modifier.Type, lowerFirst(string(modifier.Type))))
	}
	if !strings.HasPrefix(*value, "/") {
		return routes.PathModifier{}, util.NewValidationError("path", *value, fmt.Sprintf(
			"RequestRedirect filters may only contain absolute paths (starting with '/'); %q is not an absolute path",
			*value))
	}
	return routes.PathModifier{Kind: kind, Path: *value}, nil
}
