package routes

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/vyrodovalexey/avapolicy/internal/util"
)

// HeaderName is a validated, lower-cased HTTP header field name.
type HeaderName string

// ParseHeaderName validates name against the RFC 7230 token grammar.
func ParseHeaderName(name string) (HeaderName, error) {
	if !httpguts.ValidHeaderFieldName(name) {
		return "", util.NewValidationError("header name", name,
			fmt.Sprintf("%q is not a valid HTTP header name", name))
	}
	return HeaderName(strings.ToLower(name)), nil
}

// String returns the header name.
func (h HeaderName) String() string {
	return string(h)
}

// HeaderValue is a validated HTTP header field value.
type HeaderValue string

// ParseHeaderValue validates value against the RFC 7230 field-value grammar.
func ParseHeaderValue(value string) (HeaderValue, error) {
	if !httpguts.ValidHeaderFieldValue(value) {
		return "", util.NewValidationError("header value", value,
			fmt.Sprintf("%q is not a valid HTTP header value", value))
	}
	return HeaderValue(value), nil
}

// String returns the header value.
func (h HeaderValue) String() string {
	return string(h)
}

// Method is an HTTP request method.
type Method string

// Supported HTTP methods.
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
)

var methods = map[string]Method{
	string(MethodGet):     MethodGet,
	string(MethodHead):    MethodHead,
	string(MethodPost):    MethodPost,
	string(MethodPut):     MethodPut,
	string(MethodDelete):  MethodDelete,
	string(MethodConnect): MethodConnect,
	string(MethodOptions): MethodOptions,
	string(MethodTrace):   MethodTrace,
	string(MethodPatch):   MethodPatch,
}

// ParseMethod parses one of the enumerated HTTP method tokens. Matching is
// case-sensitive; methods are upper-case tokens on the wire.
func ParseMethod(method string) (Method, error) {
	m, ok := methods[method]
	if !ok {
		return "", util.NewValidationError("method", method,
			fmt.Sprintf("%q is not a supported HTTP method", method))
	}
	return m, nil
}

// Scheme is a redirect URI scheme.
type Scheme string

// Supported schemes.
const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// ParseScheme parses http or https, ignoring ASCII case.
func ParseScheme(scheme string) (Scheme, error) {
	switch strings.ToLower(scheme) {
	case string(SchemeHTTP):
		return SchemeHTTP, nil
	case string(SchemeHTTPS):
		return SchemeHTTPS, nil
	default:
		return "", util.NewValidationError("scheme", scheme,
			fmt.Sprintf("%q is not a supported URI scheme", scheme))
	}
}

// StatusCode is an HTTP response status code in the range 100-599.
type StatusCode int

// ParseStatusCode validates code.
func ParseStatusCode(code int) (StatusCode, error) {
	if err := util.ValidateHTTPStatusCode(code); err != nil {
		return 0, util.NewValidationErrorWithCause("status code", fmt.Sprint(code),
			fmt.Sprintf("%d is not a valid HTTP status code", code), err)
	}
	return StatusCode(code), nil
}

// CompileRegex compiles pattern, reporting failures as a validation error on
// field whose cause is the underlying *syntax.Error.
func CompileRegex(field, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, util.NewValidationErrorWithCause(field, pattern,
			fmt.Sprintf("%q is not a valid regular expression", pattern), err)
	}
	return re, nil
}
