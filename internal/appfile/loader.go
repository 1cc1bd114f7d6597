package appfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appmodel/apphost/internal/builder"
	"github.com/appmodel/apphost/internal/model"
	"github.com/appmodel/apphost/internal/output"
)

// DefaultFileName is the app file looked up when a directory is given.
const DefaultFileName = "apphost.yaml"

// parameterEnvPrefix is the prefix for parameter value environment overrides.
const parameterEnvPrefix = "APPHOST_PARAMETER_"

// Resolve turns a path argument (file or directory, empty means ".") into the
// app file path and verifies it exists.
func Resolve(path string) (string, error) {
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("app file path %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, DefaultFileName)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("app file %s: %w", path, err)
		}
	}
	return path, nil
}

// Load parses the app file at path and builds the frozen resource graph.
func Load(path string) (*model.Graph, error) {
	path, err := Resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening app file: %w", err)
	}
	defer f.Close()

	var file File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	output.Debug("app file parsed",
		"path", path,
		"parameters", len(file.Parameters),
		"containers", len(file.Containers),
		"executables", len(file.Executables),
	)

	return file.BuildGraph()
}

// BuildGraph drives the builder API from the parsed file. Resources are
// declared in file order; references are attached in a second pass so they may
// target resources declared later in the file.
func (f *File) BuildGraph() (*model.Graph, error) {
	b := builder.New()

	params := make(map[string]*builder.ParameterBuilder, len(f.Parameters))
	for _, p := range f.Parameters {
		params[p.Name] = b.AddParameter(p.Name, parameterValue(p), p.Secret)
	}

	resources := make(map[string]*builder.ResourceBuilder, len(f.Containers)+len(f.Executables))

	for i := range f.Containers {
		c := &f.Containers[i]
		rb := b.AddContainer(c.Name, c.Image, c.Tag)
		if c.Registry != "" {
			if img, ok := rb.Resource().Image(); ok {
				img.Registry = c.Registry
			}
		}
		if err := attachCommon(rb, params, c.Endpoints, c.Env, c.ConnectionString); err != nil {
			return nil, fmt.Errorf("container %q: %w", c.Name, err)
		}
		resources[c.Name] = rb
	}

	for i := range f.Executables {
		e := &f.Executables[i]
		rb := b.AddExecutable(e.Name, e.Command, e.Args...)
		if e.WorkingDir != "" {
			if cmd, ok := rb.Resource().Command(); ok {
				cmd.WorkingDir = e.WorkingDir
			}
		}
		if err := attachCommon(rb, params, e.Endpoints, e.Env, e.ConnectionString); err != nil {
			return nil, fmt.Errorf("executable %q: %w", e.Name, err)
		}
		resources[e.Name] = rb
	}

	// Second pass: references, in file order per resource.
	attachRefs := func(name string, refs []ReferenceSpec) error {
		rb := resources[name]
		for _, ref := range refs {
			target, ok := resources[ref.Resource]
			if !ok {
				return fmt.Errorf("resource %q references undeclared resource %q", name, ref.Resource)
			}
			if ref.Endpoint != "" {
				rb.WithEndpointReference(target, ref.Endpoint)
			} else {
				rb.WithReference(target)
			}
		}
		return nil
	}
	for i := range f.Containers {
		if err := attachRefs(f.Containers[i].Name, f.Containers[i].References); err != nil {
			return nil, err
		}
	}
	for i := range f.Executables {
		if err := attachRefs(f.Executables[i].Name, f.Executables[i].References); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// attachCommon wires endpoints, env entries, and the connection string.
func attachCommon(rb *builder.ResourceBuilder, params map[string]*builder.ParameterBuilder, endpoints []EndpointSpec, env []EnvSpec, connectionString string) error {
	if rb.Resource() == nil {
		// Declaration already failed; the builder holds the error.
		return nil
	}

	for _, ep := range endpoints {
		var opts []builder.EndpointOption
		if ep.Scheme != "" {
			opts = append(opts, builder.WithScheme(ep.Scheme))
		}
		if ep.Transport != "" {
			opts = append(opts, builder.WithTransport(ep.Transport))
		}
		if ep.Protocol != "" {
			opts = append(opts, builder.WithProtocol(ep.Protocol))
		}
		if ep.External {
			opts = append(opts, builder.External())
		}
		rb.WithEndpoint(ep.Name, ep.TargetPort, opts...)
	}

	for _, e := range env {
		switch {
		case e.Value != "" && e.Parameter != "":
			return fmt.Errorf("env %q declares both value and parameter", e.Name)
		case e.Parameter != "":
			pb, ok := params[e.Parameter]
			if !ok {
				return fmt.Errorf("env %q references undeclared parameter %q", e.Name, e.Parameter)
			}
			rb.WithEnvironmentParameter(e.Name, pb)
		default:
			rb.WithEnvironment(e.Name, e.Value)
		}
	}

	if connectionString != "" {
		rb.WithConnectionString(connectionString)
	}
	return nil
}

// parameterValue returns the configured value for a parameter spec, with the
// APPHOST_PARAMETER_<NAME> environment variable taking precedence over the
// file value. Empty means "generate a secret default".
func parameterValue(p ParameterSpec) string {
	envKey := parameterEnvPrefix + strings.ToUpper(strings.ReplaceAll(p.Name, "-", "_"))
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return p.Value
}
