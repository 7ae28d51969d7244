package httproute

import (
	"fmt"
	"time"

	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/internal/routes"
	"github.com/vyrodovalexey/avapolicy/internal/util"
)

const (
	backendKindService = "Service"
	defaultWeight      = 1
)

// Convert converts a whole route. Conversion stops at the first invalid
// field; the error is wrapped with the index of the offending rule.
func Convert(r Resource) (routes.HTTPRoute, error) {
	namespace := r.Namespace()

	hostnames := make([]routes.HostMatch, 0, len(r.Hostnames()))
	for _, h := range r.Hostnames() {
		hostnames = append(hostnames, HostMatch(h))
	}

	rules := r.Rules()
	out := routes.HTTPRoute{
		Hostnames:         hostnames,
		Rules:             make([]routes.HTTPRouteRule, 0, len(rules)),
		CreationTimestamp: r.CreationTimestamp().Time,
	}
	for i, rule := range rules {
		converted, err := convertRule(namespace, rule)
		if err != nil {
			return routes.HTTPRoute{}, fmt.Errorf("rule[%d]: %w", i, err)
		}
		out.Rules = append(out.Rules, converted)
	}
	return out, nil
}

func convertRule(namespace string, rule Rule) (routes.HTTPRouteRule, error) {
	out := routes.HTTPRouteRule{
		Matches:  make([]routes.HTTPRouteMatch, 0, len(rule.Matches)),
		Filters:  make([]routes.Filter, 0, len(rule.Filters)),
		Backends: make([]routes.Backend, 0, len(rule.BackendRefs)),
	}

	for _, m := range rule.Matches {
		match, err := TryMatch(m)
		if err != nil {
			return routes.HTTPRouteRule{}, err
		}
		out.Matches = append(out.Matches, match)
	}

	for _, f := range rule.Filters {
		filter, err := Filter(f)
		if err != nil {
			return routes.HTTPRouteRule{}, err
		}
		out.Filters = append(out.Filters, filter)
	}

	for _, ref := range rule.BackendRefs {
		backend, err := Backend(namespace, ref)
		if err != nil {
			return routes.HTTPRouteRule{}, err
		}
		out.Backends = append(out.Backends, backend)
	}

	timeouts, err := Timeouts(rule.Timeouts)
	if err != nil {
		return routes.HTTPRouteRule{}, err
	}
	out.Timeouts = timeouts

	return out, nil
}

// Backend converts a backend reference of a route in namespace. Missing
// namespace, group, kind and weight take the Gateway API defaults. Service
// backends must name a port. Per-backend filters are not supported.
func Backend(namespace string, ref gatewayv1.HTTPBackendRef) (routes.Backend, error) {
	if len(ref.Filters) > 0 {
		return routes.Backend{}, util.NewUnsupportedError("backendRefs.filters", string(ref.Filters[0].Type))
	}

	out := routes.Backend{
		Kind:      backendKindService,
		Namespace: namespace,
		Name:      string(ref.Name),
		Weight:    defaultWeight,
	}
	if ref.Group != nil {
		out.Group = string(*ref.Group)
	}
	if ref.Kind != nil {
		out.Kind = string(*ref.Kind)
	}
	if ref.Namespace != nil {
		out.Namespace = string(*ref.Namespace)
	}

	if ref.Port != nil {
		port := int(*ref.Port)
		if err := util.ValidatePort(port); err != nil {
			return routes.Backend{}, util.NewValidationErrorWithCause("backendRefs.port", fmt.Sprint(port),
				fmt.Sprintf("backend %q has an invalid port", ref.Name), err)
		}
		out.Port = uint16(port) //nolint:gosec // G115: bounded by ValidatePort
	} else if out.Group == "" && out.Kind == backendKindService {
		return routes.Backend{}, util.NewValidationError("backendRefs.port", string(ref.Name),
			fmt.Sprintf("Service backend %q must specify a port", ref.Name))
	}

	if ref.Weight != nil {
		if *ref.Weight < 0 {
			return routes.Backend{}, util.NewValidationError("backendRefs.weight", fmt.Sprint(*ref.Weight),
				fmt.Sprintf("backend %q weight must not be negative", ref.Name))
		}
		out.Weight = uint32(*ref.Weight) //nolint:gosec // G115: checked non-negative above
	}

	return out, nil
}

// Timeouts parses the Gateway API duration strings of a rule. A nil value
// yields zero timeouts.
func Timeouts(in *gatewayv1.HTTPRouteTimeouts) (routes.Timeouts, error) {
	var out routes.Timeouts
	if in == nil {
		return out, nil
	}

	var err error
	if out.Request, err = duration("timeouts.request", in.Request); err != nil {
		return routes.Timeouts{}, err
	}
	if out.BackendRequest, err = duration("timeouts.backendRequest", in.BackendRequest); err != nil {
		return routes.Timeouts{}, err
	}
	return out, nil
}

func duration(field string, d *gatewayv1.Duration) (time.Duration, error) {
	if d == nil {
		return 0, nil
	}
	parsed, err := time.ParseDuration(string(*d))
	if err != nil {
		return 0, util.NewValidationErrorWithCause(field, string(*d),
			fmt.Sprintf("%q is not a valid duration", string(*d)), err)
	}
	if parsed < 0 {
		return 0, util.NewValidationError(field, string(*d),
			fmt.Sprintf("%q must not be negative", string(*d)))
	}
	return parsed, nil
}
