package model

import (
	"context"
	"fmt"
)

// Annotation is a typed fact or behavior attached to a resource. The set of
// variants is closed; evaluation and serialization dispatch on the concrete
// type. Order within a resource is significant: name-keyed lookups return the
// first match, and environment evaluation walks annotations in declaration
// order.
type Annotation interface {
	annotation()
}

// ImageAnnotation records the container image for a container resource.
type ImageAnnotation struct {
	// Image is the repository path without registry or tag (e.g. "qdrant/qdrant").
	Image string

	// Tag is the image tag (e.g. "v1.13.0").
	Tag string

	// Registry is an optional registry host prepended to the image reference.
	Registry string
}

func (*ImageAnnotation) annotation() {}

// Ref returns the full image reference, including the registry prefix when set.
func (a *ImageAnnotation) Ref() string {
	ref := a.Image
	if a.Registry != "" {
		ref = a.Registry + "/" + ref
	}
	if a.Tag != "" {
		ref = ref + ":" + a.Tag
	}
	return ref
}

// EnvContext is the resolution surface handed to environment callbacks. Values
// obtained through it are concrete in run mode and symbolic placeholders in
// publish mode, so a callback never needs to know which mode it runs under.
type EnvContext interface {
	// Set records an environment variable. Setting an existing key overwrites
	// its value in place (last write wins, position preserved).
	Set(key, value string)

	// ParameterValue resolves the value of the named parameter resource.
	ParameterValue(name string) (string, error)

	// EndpointURL resolves "scheme://host:port" for the named endpoint of the
	// named resource.
	EndpointURL(resource, endpoint string) (string, error)
}

// EnvironmentCallbackAnnotation contributes environment variables to a
// resource. Callbacks run sequentially in declaration order and may perform
// their own I/O; the evaluator waits for each one before moving on.
type EnvironmentCallbackAnnotation struct {
	Callback func(ctx context.Context, env EnvContext) error
}

func (*EnvironmentCallbackAnnotation) annotation() {}

// ConnectionStringAnnotation declares how a resource's connection string is
// composed. The expression contains placeholders of the form
// {endpointName.scheme|host|port} and {parameterName.value}.
type ConnectionStringAnnotation struct {
	Expression string
}

func (*ConnectionStringAnnotation) annotation() {}

// ReferenceAnnotation records that a resource consumes another resource.
// With an empty EndpointName the target's connection string is injected as
// ConnectionStrings__<target>; with a named endpoint the endpoint URL is
// injected as ConnectionStrings__<target>_<endpoint> instead.
type ReferenceAnnotation struct {
	Target       *Resource
	EndpointName string
}

func (*ReferenceAnnotation) annotation() {}

// CommandAnnotation records the launch command for an executable resource.
type CommandAnnotation struct {
	Command    string
	Args       []string
	WorkingDir string
}

func (*CommandAnnotation) annotation() {}

// String implements fmt.Stringer for diagnostics.
func (a *ReferenceAnnotation) String() string {
	if a.EndpointName != "" {
		return fmt.Sprintf("reference %s:%s", a.Target.Name(), a.EndpointName)
	}
	return fmt.Sprintf("reference %s", a.Target.Name())
}
