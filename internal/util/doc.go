// Package util provides utility functions and types shared by the route
// conversion core and the operator around it.
//
// # Error Types
//
// Structured error types for consistent error handling:
//
//   - ValidationError: a route field failed conversion; names the field
//     and the offending value and matches ErrInvalidInput
//   - ConfigError: operator configuration errors; matches ErrConfigInvalid
//   - Sentinel errors: ErrInvalidInput, ErrUnsupported, ErrConfigInvalid
//
// # Validation
//
// Small range and enum validators:
//
//	err := util.ValidatePort(8080)
//	err := util.ValidateHTTPStatusCode(302)
//	err := util.ValidateOneOf(level, "log level", "debug", "info")
package util
