// Package model defines the resource annotation graph: declared resources,
// their typed annotations, endpoints, and parameters. The graph is mutable
// during the builder phase and read-only after Freeze; evaluation and manifest
// serialization live in internal/eval and internal/manifest.
package model

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// Kind tags a resource variant. The values double as the manifest "type" field.
type Kind string

const (
	// KindContainer is a container resource ("container.v0").
	KindContainer Kind = "container.v0"

	// KindExecutable is a locally launched executable resource ("executable.v0").
	KindExecutable Kind = "executable.v0"

	// KindParameter is a named configuration value resource ("parameter.v0").
	KindParameter Kind = "parameter.v0"
)

// Resource is a declared infrastructure unit in the graph. Identity is
// immutable; annotations may be appended until the graph is frozen.
type Resource struct {
	name        string
	kind        Kind
	annotations []Annotation
	param       *Parameter
	frozen      bool
}

func newResource(name string, kind Kind) (*Resource, error) {
	if errs := validation.IsQualifiedName(name); len(errs) > 0 {
		return nil, fmt.Errorf("resource name %q: %s: %w", name, strings.Join(errs, "; "), ErrInvalidName)
	}
	return &Resource{name: name, kind: kind}, nil
}

// Name returns the resource name, unique within its graph.
func (r *Resource) Name() string { return r.name }

// Kind returns the resource kind tag.
func (r *Resource) Kind() Kind { return r.kind }

// Annotations returns the annotations in declaration order. The returned
// slice is shared; callers must not mutate it.
func (r *Resource) Annotations() []Annotation { return r.annotations }

// Annotate appends an annotation. Endpoint annotations are checked for name
// collisions against endpoints already declared on this resource.
func (r *Resource) Annotate(a Annotation) error {
	if r.frozen {
		return fmt.Errorf("resource %q: %w", r.name, ErrFrozen)
	}
	if ep, ok := a.(*EndpointAnnotation); ok {
		if errs := validation.IsQualifiedName(ep.Name); len(errs) > 0 {
			return fmt.Errorf("endpoint name %q on %q: %s: %w", ep.Name, r.name, strings.Join(errs, "; "), ErrInvalidName)
		}
		if _, exists := r.Endpoint(ep.Name); exists {
			return fmt.Errorf("endpoint %q on resource %q: %w", ep.Name, r.name, ErrDuplicateEndpoint)
		}
	}
	r.annotations = append(r.annotations, a)
	return nil
}

// Endpoint returns the first endpoint annotation with the given name.
func (r *Resource) Endpoint(name string) (*EndpointAnnotation, bool) {
	for _, a := range r.annotations {
		if ep, ok := a.(*EndpointAnnotation); ok && ep.Name == name {
			return ep, true
		}
	}
	return nil, false
}

// Endpoints returns all endpoint annotations in declaration order.
func (r *Resource) Endpoints() []*EndpointAnnotation {
	var eps []*EndpointAnnotation
	for _, a := range r.annotations {
		if ep, ok := a.(*EndpointAnnotation); ok {
			eps = append(eps, ep)
		}
	}
	return eps
}

// ConnectionString returns the connection string annotation, if declared.
func (r *Resource) ConnectionString() (*ConnectionStringAnnotation, bool) {
	for _, a := range r.annotations {
		if cs, ok := a.(*ConnectionStringAnnotation); ok {
			return cs, true
		}
	}
	return nil, false
}

// Image returns the image annotation, if declared.
func (r *Resource) Image() (*ImageAnnotation, bool) {
	for _, a := range r.annotations {
		if img, ok := a.(*ImageAnnotation); ok {
			return img, true
		}
	}
	return nil, false
}

// Command returns the command annotation, if declared.
func (r *Resource) Command() (*CommandAnnotation, bool) {
	for _, a := range r.annotations {
		if cmd, ok := a.(*CommandAnnotation); ok {
			return cmd, true
		}
	}
	return nil, false
}

// Parameter returns the parameter backing a parameter resource, nil otherwise.
func (r *Resource) Parameter() *Parameter { return r.param }

// SetParameter attaches the parameter value holder. Called by the builder for
// parameter resources.
func (r *Resource) SetParameter(p *Parameter) error {
	if r.frozen {
		return fmt.Errorf("resource %q: %w", r.name, ErrFrozen)
	}
	r.param = p
	return nil
}
