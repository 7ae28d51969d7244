package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vyrodovalexey/avapolicy/internal/util"
)

// EnvPrefix prefixes every environment variable read by ApplyEnvOverrides.
const EnvPrefix = "AVAPOLICY_"

// Load builds the effective configuration from args and the environment.
// Values are layered as defaults, config file, flags, environment.
func Load(args []string) (*Config, error) {
	// The config file location must be known before the file is read, and
	// the file must be read before flags are bound so that unset flags keep
	// the file's values.
	probe := DefaultConfig()
	probeFlags := flag.NewFlagSet("avapolicy", flag.ContinueOnError)
	probeFlags.SetOutput(io.Discard)
	DefineFlags(probeFlags, probe)
	if err := probeFlags.Parse(args); err != nil {
		return nil, util.WrapError(err, "failed to parse flags")
	}
	applyStringEnv(&probe.ConfigFile, EnvPrefix+"CONFIG_FILE")

	cfg := DefaultConfig()
	if probe.ConfigFile != "" {
		if err := LoadFile(probe.ConfigFile, cfg); err != nil {
			return nil, err
		}
	}

	fs := flag.NewFlagSet("avapolicy", flag.ContinueOnError)
	DefineFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, util.WrapError(err, "failed to parse flags")
	}
	ApplyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefineFlags binds cfg to fs. The current values of cfg are the flag defaults.
func DefineFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.MetricsAddr, "metrics-bind-address", cfg.MetricsAddr,
		"The address the metric endpoint binds to.")
	fs.StringVar(&cfg.ProbeAddr, "health-probe-bind-address", cfg.ProbeAddr,
		"The address the probe endpoint binds to.")
	fs.BoolVar(&cfg.EnableLeaderElection, "leader-elect", cfg.EnableLeaderElection,
		"Enable leader election for controller manager.")
	fs.StringVar(&cfg.LeaderElectionID, "leader-election-id", cfg.LeaderElectionID,
		"The name of the resource that leader election will use for holding the leader lock.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel,
		"The log level (debug, info, warn, error).")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat,
		"The log format (json, console).")
	fs.BoolVar(&cfg.EnableGatewayAPIRoutes, "enable-gateway-api-routes", cfg.EnableGatewayAPIRoutes,
		"Watch gateway.networking.k8s.io HTTPRoutes.")
	fs.BoolVar(&cfg.EnablePolicyRoutes, "enable-policy-routes", cfg.EnablePolicyRoutes,
		"Watch policy.avapigw.vyrodovalexey.github.com HTTPRoutes.")
	fs.IntVar(&cfg.MaxConcurrentReconciles, "max-concurrent-reconciles", cfg.MaxConcurrentReconciles,
		"Maximum number of concurrent reconciles per route controller.")
	fs.StringVar(&cfg.ConfigFile, "config-file", cfg.ConfigFile,
		"Optional YAML configuration file. Its logLevel is reloaded on change.")
}

// ApplyEnvOverrides applies AVAPOLICY_* environment variables to cfg.
func ApplyEnvOverrides(cfg *Config) {
	applyStringEnv(&cfg.MetricsAddr, EnvPrefix+"METRICS_BIND_ADDRESS")
	applyStringEnv(&cfg.ProbeAddr, EnvPrefix+"HEALTH_PROBE_BIND_ADDRESS")
	applyStringEnv(&cfg.LeaderElectionID, EnvPrefix+"LEADER_ELECTION_ID")
	applyStringEnv(&cfg.LogLevel, EnvPrefix+"LOG_LEVEL")
	applyStringEnv(&cfg.LogFormat, EnvPrefix+"LOG_FORMAT")
	applyStringEnv(&cfg.ConfigFile, EnvPrefix+"CONFIG_FILE")

	applyIntEnv(&cfg.MaxConcurrentReconciles, EnvPrefix+"MAX_CONCURRENT_RECONCILES")

	applyBoolEnv(&cfg.EnableLeaderElection, EnvPrefix+"LEADER_ELECT")
	applyBoolEnv(&cfg.EnableGatewayAPIRoutes, EnvPrefix+"ENABLE_GATEWAY_API_ROUTES")
	applyBoolEnv(&cfg.EnablePolicyRoutes, EnvPrefix+"ENABLE_POLICY_ROUTES")
}

// applyBoolEnv handles both true and false values symmetrically.
func applyBoolEnv(target *bool, envKey string) {
	if v := os.Getenv(envKey); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			*target = true
		case "false", "0", "no":
			*target = false
		}
	}
}

func applyStringEnv(target *string, envKey string) {
	if v := os.Getenv(envKey); v != "" {
		*target = v
	}
}

func applyIntEnv(target *int, envKey string) {
	if v := os.Getenv(envKey); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}
