// Package config provides CLI configuration loading, precedence resolution,
// and schema validation.
package config

// RunConfig contains run-mode settings.
type RunConfig struct {
	// Host is the host endpoints are allocated on in run mode.
	// Env: APPHOST_RUN_HOST, Default: "localhost"
	Host string `json:"host,omitempty" yaml:"host,omitempty" mapstructure:"host"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the apphost CLI configuration.
// Loaded from ~/.apphost/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Registry is the default image registry applied to container images that
	// do not declare their own at publish time.
	// Env: APPHOST_REGISTRY
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty" mapstructure:"registry"`

	// ManifestPath is the default output path for published manifests.
	// Env: APPHOST_MANIFEST_PATH, Default: "./apphost-manifest.json"
	ManifestPath string `json:"manifestPath,omitempty" yaml:"manifestPath,omitempty" mapstructure:"manifestPath"`

	// Run contains run-mode settings.
	Run RunConfig `json:"run,omitempty" yaml:"run,omitempty" mapstructure:"run"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// Defaults applied when neither flag, env, nor config file provide a value.
const (
	DefaultManifestPath = "./apphost-manifest.json"
	DefaultRunHost      = "localhost"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `apphost config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		ManifestPath: DefaultManifestPath,
		Run:          RunConfig{Host: DefaultRunHost},
	}
}
