// Package config provides configuration management for the avapolicy operator.
//
// Configuration is layered: built-in defaults, then an optional YAML file,
// then command-line flags, then AVAPOLICY_* environment variables. The YAML
// file can be watched for changes while the operator runs.
package config

import (
	"strings"

	"github.com/vyrodovalexey/avapolicy/internal/observability/logging"
	"github.com/vyrodovalexey/avapolicy/internal/util"
)

// Default values.
const (
	DefaultMetricsAddr             = ":8080"
	DefaultProbeAddr               = ":8081"
	DefaultLeaderElectionID        = "avapolicy-operator-leader.avapigw.io"
	DefaultLogLevel                = "info"
	DefaultLogFormat               = "json"
	DefaultMaxConcurrentReconciles = 3
)

// Config holds the operator configuration.
type Config struct {
	// MetricsAddr is the address the metric endpoint binds to.
	MetricsAddr string `yaml:"metricsBindAddress"`

	// ProbeAddr is the address the probe endpoint binds to.
	ProbeAddr string `yaml:"healthProbeBindAddress"`

	// EnableLeaderElection enables leader election for controller manager.
	EnableLeaderElection bool `yaml:"leaderElect"`

	// LeaderElectionID is the name of the resource that leader election will use for holding the leader lock.
	LeaderElectionID string `yaml:"leaderElectionID"`

	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel"`

	// LogFormat is the log format (json, console).
	LogFormat string `yaml:"logFormat"`

	// EnableGatewayAPIRoutes watches gateway.networking.k8s.io HTTPRoutes.
	EnableGatewayAPIRoutes bool `yaml:"enableGatewayAPIRoutes"`

	// EnablePolicyRoutes watches policy.avapigw.vyrodovalexey.github.com HTTPRoutes.
	EnablePolicyRoutes bool `yaml:"enablePolicyRoutes"`

	// MaxConcurrentReconciles bounds the workers of each route controller.
	MaxConcurrentReconciles int `yaml:"maxConcurrentReconciles"`

	// ConfigFile is the optional YAML file the other fields are read from.
	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		MetricsAddr:             DefaultMetricsAddr,
		ProbeAddr:               DefaultProbeAddr,
		LeaderElectionID:        DefaultLeaderElectionID,
		LogLevel:                DefaultLogLevel,
		LogFormat:               DefaultLogFormat,
		EnableGatewayAPIRoutes:  true,
		EnablePolicyRoutes:      true,
		MaxConcurrentReconciles: DefaultMaxConcurrentReconciles,
	}
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return util.NewConfigErrorWithCause("logLevel", "must be one of debug, info, warn, error", err)
	}
	if err := util.ValidateOneOf(strings.ToLower(c.LogFormat), "logFormat",
		string(logging.FormatJSON), string(logging.FormatConsole)); err != nil {
		return util.NewConfigErrorWithCause("logFormat", "must be one of json, console", err)
	}
	if !c.EnableGatewayAPIRoutes && !c.EnablePolicyRoutes {
		return util.NewConfigError("enableGatewayAPIRoutes",
			"at least one of enableGatewayAPIRoutes or enablePolicyRoutes must be set")
	}
	if c.MaxConcurrentReconciles <= 0 {
		return util.NewConfigError("maxConcurrentReconciles", "must be positive")
	}
	if c.EnableLeaderElection {
		if err := util.ValidateNonEmpty(c.LeaderElectionID, "leaderElectionID"); err != nil {
			return util.NewConfigErrorWithCause("leaderElectionID", "is required when leader election is enabled", err)
		}
	}
	return nil
}
