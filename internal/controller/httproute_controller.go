package controller

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/tools/record"
	"k8s.io/client-go/util/workqueue"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/vyrodovalexey/avapolicy/internal/httproute"
)

// HTTPRouteReconciler converts HTTPRoutes of one schema and keeps the sink
// in step with the cluster. It never writes to the API server.
type HTTPRouteReconciler struct {
	client.Client
	Recorder record.EventRecorder
	Kind     RouteKind
	Sink     Sink

	// Metrics defaults to GetControllerMetrics.
	Metrics *ControllerMetrics

	// MaxConcurrentReconciles defaults to DefaultMaxConcurrentReconciles.
	MaxConcurrentReconciles int
}

// +kubebuilder:rbac:groups=gateway.networking.k8s.io,resources=httproutes,verbs=get;list;watch
// +kubebuilder:rbac:groups=policy.avapigw.vyrodovalexey.github.com,resources=httproutes,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

// Reconcile converts the requested route and updates the sink. Invalid routes
// are removed from the sink and reported with a Warning event; they are not
// requeued because only a new resource version can fix them.
func (r *HTTPRouteReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, ReconcileTimeout)
	defer cancel()

	logger := log.FromContext(ctx).WithValues("routeKind", r.Kind.Name)
	metrics := r.metrics()
	key := r.Kind.Identity(req.Name).Namespaced(req.Namespace)

	start := time.Now()
	defer func() {
		metrics.ObserveReconcile(r.Kind.Name, time.Since(start))
	}()

	obj := r.Kind.NewObject()
	if err := r.Get(ctx, req.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			if r.Sink.Delete(key) {
				logger.Info("HTTPRoute deleted, removed from index", "route", key.String())
			}
			return ctrl.Result{}, nil
		}
		reconcileErr := ClassifyError("getHTTPRoute", req.String(), err)
		metrics.RecordError(r.Kind.Name, reconcileErr.Type)
		logger.Error(reconcileErr, "Failed to get HTTPRoute",
			"errorType", reconcileErr.Type,
			"retryable", reconcileErr.Retryable,
		)
		return ctrl.Result{}, reconcileErr
	}

	if !obj.GetDeletionTimestamp().IsZero() {
		if r.Sink.Delete(key) {
			logger.Info("HTTPRoute is being deleted, removed from index", "route", key.String())
		}
		return ctrl.Result{}, nil
	}

	return r.convert(ctx, obj)
}

func (r *HTTPRouteReconciler) convert(ctx context.Context, obj client.Object) (ctrl.Result, error) {
	logger := log.FromContext(ctx).WithValues("routeKind", r.Kind.Name)
	metrics := r.metrics()

	resource, ok := httproute.FromObject(obj)
	if !ok {
		err := ClassifyError("adaptHTTPRoute", client.ObjectKeyFromObject(obj).String(),
			fmt.Errorf("unsupported object type %T", obj))
		metrics.RecordError(r.Kind.Name, err.Type)
		return ctrl.Result{}, err
	}
	key := resource.GKNN()

	route, err := httproute.Convert(resource)
	if err != nil {
		metrics.RecordConversion(r.Kind.Name, false)
		reconcileErr := ClassifyError("convertHTTPRoute", key.String(), err)
		metrics.RecordError(r.Kind.Name, reconcileErr.Type)

		// The previously indexed version no longer reflects the spec.
		removed := r.Sink.Delete(key)
		logger.Info("HTTPRoute conversion failed",
			"route", key.String(),
			"error", err.Error(),
			"removedFromIndex", removed,
		)
		r.Recorder.Event(obj, corev1.EventTypeWarning, EventReasonConversionFailed, err.Error())

		if reconcileErr.Retryable {
			return ctrl.Result{}, reconcileErr
		}
		return ctrl.Result{}, nil
	}

	metrics.RecordConversion(r.Kind.Name, true)
	if r.Sink.Apply(key, route) {
		logger.Info("HTTPRoute added to index", "route", key.String(), "rules", len(route.Rules))
		r.Recorder.Event(obj, corev1.EventTypeNormal, EventReasonApplied, MessageRouteApplied)
	} else {
		logger.V(1).Info("HTTPRoute updated in index", "route", key.String(), "rules", len(route.Rules))
	}
	return ctrl.Result{}, nil
}

func (r *HTTPRouteReconciler) metrics() *ControllerMetrics {
	if r.Metrics == nil {
		return GetControllerMetrics()
	}
	return r.Metrics
}

// SetupWithManager sets up the controller with the Manager.
func (r *HTTPRouteReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Metrics == nil {
		r.Metrics = GetControllerMetrics()
	}
	maxConcurrent := r.MaxConcurrentReconciles
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentReconciles
	}

	return ctrl.NewControllerManagedBy(mgr).
		Named(r.Kind.Name + "-httproute").
		For(r.Kind.NewObject()).
		WithOptions(controller.Options{
			MaxConcurrentReconciles: maxConcurrent,
			RateLimiter: workqueue.NewTypedItemExponentialFailureRateLimiter[reconcile.Request](
				RateLimiterBaseDelay,
				RateLimiterMaxDelay,
			),
		}).
		Complete(r)
}
