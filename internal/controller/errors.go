package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/vyrodovalexey/avapolicy/internal/util"
)

// ErrorType represents the classification of an error for handling purposes.
type ErrorType string

const (
	// ErrorTypeTransient indicates a temporary error that should be retried.
	// Examples: API server timeouts, conflicts, rate limiting.
	ErrorTypeTransient ErrorType = "Transient"

	// ErrorTypeValidation indicates that the route itself is invalid. Retrying
	// cannot help; the next resource version is reconciled anyway.
	ErrorTypeValidation ErrorType = "Validation"

	// ErrorTypeInternal indicates an unexpected error in the controller.
	ErrorTypeInternal ErrorType = "Internal"
)

// ReconcileError represents a structured error for controller reconciliation.
type ReconcileError struct {
	// Type classifies the error for handling decisions.
	Type ErrorType

	// Op is the operation that failed (e.g., "getRoute", "convertRoute").
	Op string

	// Resource identifies the resource being reconciled.
	Resource string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether the error should trigger a retry.
	Retryable bool
}

// Error implements the error interface.
func (e *ReconcileError) Error() string {
	errType := strings.ToLower(string(e.Type))
	if e.Resource != "" {
		return fmt.Sprintf("%s error during %s for %s: %v", errType, e.Op, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s error during %s: %v", errType, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for ReconcileError.
func (e *ReconcileError) Is(target error) bool {
	if t, ok := target.(*ReconcileError); ok {
		return e.Type == t.Type
	}
	return errors.Is(e.Err, target)
}

func newReconcileError(errType ErrorType, op, resource string, err error) *ReconcileError {
	return &ReconcileError{
		Type:      errType,
		Op:        op,
		Resource:  resource,
		Err:       err,
		Retryable: errType != ErrorTypeValidation,
	}
}

// ClassifyError analyzes an error and returns a typed ReconcileError.
func ClassifyError(op, resource string, err error) *ReconcileError {
	if err == nil {
		return nil
	}

	var reconcileErr *ReconcileError
	if errors.As(err, &reconcileErr) {
		return reconcileErr
	}

	switch {
	case util.IsValidationError(err):
		return newReconcileError(ErrorTypeValidation, op, resource, err)
	case isTransientAPIError(err), isContextError(err):
		return newReconcileError(ErrorTypeTransient, op, resource, err)
	default:
		return newReconcileError(ErrorTypeInternal, op, resource, err)
	}
}

// isTransientAPIError checks if the error is a transient Kubernetes API error.
func isTransientAPIError(err error) bool {
	return apierrors.IsConflict(err) ||
		apierrors.IsServerTimeout(err) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsTooManyRequests(err) ||
		apierrors.IsServiceUnavailable(err) ||
		apierrors.IsInternalError(err)
}

// isContextError checks if the error is a context-related error.
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsRetryable reports whether err should be retried.
func IsRetryable(err error) bool {
	var reconcileErr *ReconcileError
	if errors.As(err, &reconcileErr) {
		return reconcileErr.Retryable
	}
	return err != nil
}
