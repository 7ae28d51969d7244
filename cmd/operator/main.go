// Package main is the entry point for the avapolicy operator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/vyrodovalexey/avapolicy/api/v1alpha1"
	"github.com/vyrodovalexey/avapolicy/internal/config"
	"github.com/vyrodovalexey/avapolicy/internal/controller"
	"github.com/vyrodovalexey/avapolicy/internal/index"
	"github.com/vyrodovalexey/avapolicy/internal/observability/logging"
)

// Version information (set at build time).
var (
	operatorVersion   = "dev"
	operatorBuildTime = "unknown"
	operatorGitCommit = "unknown"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

var (
	operatorBuildInfo     *prometheus.GaugeVec
	operatorBuildInfoOnce sync.Once
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(gatewayv1.AddToScheme(scheme))
	utilruntime.Must(v1alpha1.AddToScheme(scheme))
}

// initOperatorBuildInfo registers the build info metric with registerer.
// Subsequent calls are no-ops.
func initOperatorBuildInfo(registerer prometheus.Registerer) {
	operatorBuildInfoOnce.Do(func() {
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}
		operatorBuildInfo = promauto.With(registerer).NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "avapolicy_operator",
				Name:      "build_info",
				Help:      "Build information for the operator",
			},
			[]string{"version", "commit", "build_time"},
		)
	})
}

func main() {
	if err := run(); err != nil {
		setupLog.Error(err, "operator failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	return runWithConfig(cfg, nil)
}

// runWithConfig wires and starts the operator. When restConfig is nil the
// in-cluster or kubeconfig configuration is used.
func runWithConfig(cfg *config.Config, restConfig *rest.Config) error {
	logger, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	ctrl.SetLogger(logger.Logr())

	initOperatorBuildInfo(metrics.Registry)
	operatorBuildInfo.WithLabelValues(operatorVersion, operatorGitCommit, operatorBuildTime).Set(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if restConfig == nil {
		restConfig, err = ctrl.GetConfig()
		if err != nil {
			return fmt.Errorf("unable to load kubeconfig: %w", err)
		}
	}

	mgr, err := createManagerWithConfig(restConfig, cfg)
	if err != nil {
		return err
	}

	store := index.NewStore(metrics.Registry)
	if err := setupControllers(mgr, store, cfg); err != nil {
		return err
	}
	if err := setupHealthChecks(mgr); err != nil {
		return err
	}

	if cfg.ConfigFile != "" {
		watcher, err := startConfigWatcher(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Stop() }()
	}

	setupLog.Info("starting manager",
		"version", operatorVersion,
		"gatewayAPIRoutes", cfg.EnableGatewayAPIRoutes,
		"policyRoutes", cfg.EnablePolicyRoutes,
	)
	if err := mgr.Start(ctx); err != nil {
		return fmt.Errorf("problem running manager: %w", err)
	}

	return nil
}

// createManagerWithConfig creates the controller-runtime manager using the provided REST config.
func createManagerWithConfig(restConfig *rest.Config, cfg *config.Config) (ctrl.Manager, error) {
	mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
		Scheme: scheme,
		Metrics: metricsserver.Options{
			BindAddress: cfg.MetricsAddr,
		},
		HealthProbeBindAddress: cfg.ProbeAddr,
		LeaderElection:         cfg.EnableLeaderElection,
		LeaderElectionID:       cfg.LeaderElectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create manager: %w", err)
	}
	return mgr, nil
}

// routeKinds returns the route kinds enabled by cfg.
func routeKinds(cfg *config.Config) []controller.RouteKind {
	var kinds []controller.RouteKind
	if cfg.EnableGatewayAPIRoutes {
		kinds = append(kinds, controller.GatewayHTTPRouteKind)
	}
	if cfg.EnablePolicyRoutes {
		kinds = append(kinds, controller.PolicyHTTPRouteKind)
	}
	return kinds
}

func setupControllers(mgr ctrl.Manager, sink controller.Sink, cfg *config.Config) error {
	for _, kind := range routeKinds(cfg) {
		err := (&controller.HTTPRouteReconciler{
			Client: mgr.GetClient(),
			//nolint:staticcheck // Using deprecated API for compatibility with record.EventRecorder
			Recorder:                mgr.GetEventRecorderFor(kind.Name + "-httproute-controller"),
			Kind:                    kind,
			Sink:                    sink,
			MaxConcurrentReconciles: cfg.MaxConcurrentReconciles,
		}).SetupWithManager(mgr)
		if err != nil {
			return fmt.Errorf("unable to setup %s HTTPRoute controller: %w", kind.Name, err)
		}
		setupLog.Info("controller registered", "routeKind", kind.Name)
	}
	return nil
}

// healthCheckAdder is satisfied by ctrl.Manager and can be mocked in tests.
type healthCheckAdder interface {
	AddHealthzCheck(name string, check healthz.Checker) error
	AddReadyzCheck(name string, check healthz.Checker) error
}

// setupHealthChecks adds health and ready checks to the manager.
func setupHealthChecks(mgr healthCheckAdder) error {
	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		return fmt.Errorf("unable to set up health check: %w", err)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		return fmt.Errorf("unable to set up ready check: %w", err)
	}
	return nil
}

func setupLogger(cfg *config.Config) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(&logging.Config{
		Level:       level,
		Format:      format,
		Output:      "stdout",
		Development: level == logging.LevelDebug,
	})
}

// levelUpdater returns a config callback that applies log level changes.
func levelUpdater(logger *logging.Logger) config.ConfigCallback {
	return func(cfg *config.Config) {
		previous := logger.GetLevel()
		if err := logger.SetLevel(logging.Level(cfg.LogLevel)); err != nil {
			setupLog.Error(err, "ignoring invalid log level from configuration file")
			return
		}
		if current := logger.GetLevel(); current != previous {
			setupLog.Info("log level changed", "from", previous, "to", current)
		}
	}
}

func startConfigWatcher(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*config.Watcher, error) {
	watcher, err := config.NewWatcher(cfg.ConfigFile, *cfg, levelUpdater(logger),
		config.WithLogger(ctrl.Log.WithName("config-watcher")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create config watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		_ = watcher.Stop()
		return nil, fmt.Errorf("unable to start config watcher: %w", err)
	}
	return watcher, nil
}

func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		setupLog.Info("received signal, shutting down", "signal", sig.String())
		cancel()

		// A second signal forces shutdown.
		sig = <-sigCh
		setupLog.Info("received second signal, forcing shutdown", "signal", sig.String())
		os.Exit(1)
	}()
}
