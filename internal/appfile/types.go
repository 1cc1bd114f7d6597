// Package appfile loads the declarative application file (apphost.yaml) and
// drives the builder API, so CLI commands exercise the same graph engine as
// library callers.
package appfile

// File is the root of an apphost.yaml document. Declaration order in the file
// is graph order, which in turn fixes manifest and environment ordering.
type File struct {
	// Parameters declares named configuration values.
	Parameters []ParameterSpec `yaml:"parameters,omitempty"`

	// Containers declares container resources.
	Containers []ContainerSpec `yaml:"containers,omitempty"`

	// Executables declares locally launched executable resources.
	Executables []ExecutableSpec `yaml:"executables,omitempty"`
}

// ParameterSpec declares one parameter resource.
type ParameterSpec struct {
	Name string `yaml:"name"`

	// Value is the configured value. When empty, the value resolves from the
	// APPHOST_PARAMETER_<NAME> environment variable, or a generated secret
	// default.
	Value string `yaml:"value,omitempty"`

	// Secret marks the value as sensitive.
	Secret bool `yaml:"secret,omitempty"`
}

// ContainerSpec declares one container resource.
type ContainerSpec struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Tag   string `yaml:"tag,omitempty"`

	// Registry overrides the default image registry for this container.
	Registry string `yaml:"registry,omitempty"`

	Endpoints        []EndpointSpec  `yaml:"endpoints,omitempty"`
	Env              []EnvSpec       `yaml:"env,omitempty"`
	References       []ReferenceSpec `yaml:"references,omitempty"`
	ConnectionString string          `yaml:"connectionString,omitempty"`
}

// ExecutableSpec declares one executable resource.
type ExecutableSpec struct {
	Name       string   `yaml:"name"`
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args,omitempty"`
	WorkingDir string   `yaml:"workingDir,omitempty"`

	Endpoints        []EndpointSpec  `yaml:"endpoints,omitempty"`
	Env              []EnvSpec       `yaml:"env,omitempty"`
	References       []ReferenceSpec `yaml:"references,omitempty"`
	ConnectionString string          `yaml:"connectionString,omitempty"`
}

// EndpointSpec declares one named endpoint.
type EndpointSpec struct {
	Name       string `yaml:"name"`
	TargetPort int    `yaml:"targetPort"`
	Scheme     string `yaml:"scheme,omitempty"`
	Transport  string `yaml:"transport,omitempty"`
	Protocol   string `yaml:"protocol,omitempty"`
	External   bool   `yaml:"external,omitempty"`
}

// EnvSpec declares one environment variable: either a literal value or a
// parameter binding, never both.
type EnvSpec struct {
	Name      string `yaml:"name"`
	Value     string `yaml:"value,omitempty"`
	Parameter string `yaml:"parameter,omitempty"`
}

// ReferenceSpec declares a dependency on another declared resource, optionally
// narrowed to one named endpoint.
type ReferenceSpec struct {
	Resource string `yaml:"resource"`
	Endpoint string `yaml:"endpoint,omitempty"`
}
