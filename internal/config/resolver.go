package config

import "os"

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates the value came from the config file.
	SourceConfig Source = "config"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is a configuration value together with its provenance.
type ResolvedValue struct {
	Value  string
	Source Source
}

// resolve applies the flag > env > config > default precedence.
func resolve(flagValue, envKey, configValue, defaultValue string) ResolvedValue {
	if flagValue != "" {
		return ResolvedValue{Value: flagValue, Source: SourceFlag}
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return ResolvedValue{Value: envValue, Source: SourceEnv}
	}
	if configValue != "" {
		return ResolvedValue{Value: configValue, Source: SourceConfig}
	}
	return ResolvedValue{Value: defaultValue, Source: SourceDefault}
}

// ResolveOptions carries the flag values participating in resolution.
type ResolveOptions struct {
	// RegistryFlag is the --registry flag value (empty if not set).
	RegistryFlag string

	// ManifestPathFlag is the --output-path flag value (empty if not set).
	ManifestPathFlag string

	// RunHostFlag is the --host flag value (empty if not set).
	RunHostFlag string

	// Config is the loaded config file, may be nil.
	Config *Config
}

// Resolved holds every resolved configuration value with provenance.
type Resolved struct {
	Registry     ResolvedValue
	ManifestPath ResolvedValue
	RunHost      ResolvedValue
}

// ResolveAll resolves all configuration values using the precedence
// flag > env > config file > default.
func ResolveAll(opts ResolveOptions) *Resolved {
	var registry, manifestPath, runHost string
	if opts.Config != nil {
		registry = opts.Config.Registry
		manifestPath = opts.Config.ManifestPath
		runHost = opts.Config.Run.Host
	}

	return &Resolved{
		Registry:     resolve(opts.RegistryFlag, "APPHOST_REGISTRY", registry, ""),
		ManifestPath: resolve(opts.ManifestPathFlag, "APPHOST_MANIFEST_PATH", manifestPath, DefaultManifestPath),
		RunHost:      resolve(opts.RunHostFlag, "APPHOST_RUN_HOST", runHost, DefaultRunHost),
	}
}
