package builder

import (
	"context"

	"github.com/appmodel/apphost/internal/model"
)

// EndpointOption mutates an endpoint annotation before it is attached.
type EndpointOption func(*model.EndpointAnnotation)

// WithScheme sets the URI scheme.
func WithScheme(scheme string) EndpointOption {
	return func(ep *model.EndpointAnnotation) { ep.Scheme = scheme }
}

// WithTransport sets the transport hint.
func WithTransport(transport string) EndpointOption {
	return func(ep *model.EndpointAnnotation) { ep.Transport = transport }
}

// WithProtocol sets the L4 protocol.
func WithProtocol(protocol string) EndpointOption {
	return func(ep *model.EndpointAnnotation) { ep.Protocol = protocol }
}

// External marks the endpoint as externally reachable.
func External() EndpointOption {
	return func(ep *model.EndpointAnnotation) { ep.External = true }
}

// ResourceBuilder wraps a declared container or executable resource.
type ResourceBuilder struct {
	b   *Builder
	res *model.Resource
}

// Resource returns the underlying resource, nil if declaration failed.
func (rb *ResourceBuilder) Resource() *model.Resource { return rb.res }

func (rb *ResourceBuilder) annotate(a model.Annotation) *ResourceBuilder {
	if rb.b.err != nil || rb.res == nil {
		return rb
	}
	rb.b.setErr(rb.res.Annotate(a))
	return rb
}

// WithEndpoint declares a named endpoint. Protocol, transport, and scheme
// default to "tcp" unless overridden by options.
func (rb *ResourceBuilder) WithEndpoint(name string, targetPort int, opts ...EndpointOption) *ResourceBuilder {
	ep := &model.EndpointAnnotation{
		Name:       name,
		TargetPort: targetPort,
		Protocol:   model.DefaultProtocol,
		Transport:  model.DefaultTransport,
		Scheme:     model.DefaultScheme,
	}
	for _, opt := range opts {
		opt(ep)
	}
	return rb.annotate(ep)
}

// WithHTTPEndpoint declares an endpoint with http scheme and transport.
func (rb *ResourceBuilder) WithHTTPEndpoint(name string, targetPort int, opts ...EndpointOption) *ResourceBuilder {
	merged := append([]EndpointOption{WithScheme("http"), WithTransport("http")}, opts...)
	return rb.WithEndpoint(name, targetPort, merged...)
}

// WithEnvironment sets a literal environment variable.
func (rb *ResourceBuilder) WithEnvironment(key, value string) *ResourceBuilder {
	return rb.annotate(&model.EnvironmentCallbackAnnotation{
		Callback: func(_ context.Context, env model.EnvContext) error {
			env.Set(key, value)
			return nil
		},
	})
}

// WithEnvironmentParameter binds an environment variable to a parameter
// resource. The value is concrete in run mode and "{name.value}" in publish
// mode.
func (rb *ResourceBuilder) WithEnvironmentParameter(key string, param *ParameterBuilder) *ResourceBuilder {
	if rb.b.err != nil || rb.res == nil || param.res == nil {
		return rb
	}
	name := param.res.Name()
	return rb.annotate(&model.EnvironmentCallbackAnnotation{
		Callback: func(_ context.Context, env model.EnvContext) error {
			v, err := env.ParameterValue(name)
			if err != nil {
				return err
			}
			env.Set(key, v)
			return nil
		},
	})
}

// WithEnvironmentCallback attaches a raw environment callback.
func (rb *ResourceBuilder) WithEnvironmentCallback(fn func(ctx context.Context, env model.EnvContext) error) *ResourceBuilder {
	return rb.annotate(&model.EnvironmentCallbackAnnotation{Callback: fn})
}

// WithReference records a dependency on another resource's connection string.
func (rb *ResourceBuilder) WithReference(target *ResourceBuilder) *ResourceBuilder {
	if target.res == nil {
		return rb
	}
	return rb.annotate(&model.ReferenceAnnotation{Target: target.res})
}

// WithEndpointReference records a dependency on one named endpoint of another
// resource.
func (rb *ResourceBuilder) WithEndpointReference(target *ResourceBuilder, endpoint string) *ResourceBuilder {
	if target.res == nil {
		return rb
	}
	return rb.annotate(&model.ReferenceAnnotation{Target: target.res, EndpointName: endpoint})
}

// WithConnectionString declares the connection string expression template.
func (rb *ResourceBuilder) WithConnectionString(expression string) *ResourceBuilder {
	return rb.annotate(&model.ConnectionStringAnnotation{Expression: expression})
}
