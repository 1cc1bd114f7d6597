// Package builder is the fluent construction API over the resource graph.
// Errors are accumulated: the first failure sticks and Build returns it, so
// call chains stay readable without per-call error handling.
package builder

import (
	"github.com/appmodel/apphost/internal/model"
)

// Builder assembles a resource graph.
type Builder struct {
	graph *model.Graph
	err   error
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{graph: model.NewGraph()}
}

// setErr records the first error encountered.
func (b *Builder) setErr(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// AddParameter declares a parameter resource. An empty value means "generate
// a secret default on first resolution".
func (b *Builder) AddParameter(name, value string, secret bool) *ParameterBuilder {
	pb := &ParameterBuilder{b: b}
	if b.err != nil {
		return pb
	}
	res, err := b.graph.Add(name, model.KindParameter)
	if err != nil {
		b.setErr(err)
		return pb
	}
	b.setErr(res.SetParameter(model.NewParameter(name, value, secret)))
	pb.res = res
	return pb
}

// AddContainer declares a container resource with its image annotation.
func (b *Builder) AddContainer(name, image, tag string) *ResourceBuilder {
	rb := &ResourceBuilder{b: b}
	if b.err != nil {
		return rb
	}
	res, err := b.graph.Add(name, model.KindContainer)
	if err != nil {
		b.setErr(err)
		return rb
	}
	b.setErr(res.Annotate(&model.ImageAnnotation{Image: image, Tag: tag}))
	rb.res = res
	return rb
}

// AddExecutable declares an executable resource with its command annotation.
func (b *Builder) AddExecutable(name, command string, args ...string) *ResourceBuilder {
	rb := &ResourceBuilder{b: b}
	if b.err != nil {
		return rb
	}
	res, err := b.graph.Add(name, model.KindExecutable)
	if err != nil {
		b.setErr(err)
		return rb
	}
	b.setErr(res.Annotate(&model.CommandAnnotation{Command: command, Args: args}))
	rb.res = res
	return rb
}

// Build freezes the graph and returns it together with any accumulated error.
func (b *Builder) Build() (*model.Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.graph.Freeze()
	return b.graph, nil
}

// ParameterBuilder wraps a declared parameter resource.
type ParameterBuilder struct {
	b   *Builder
	res *model.Resource
}

// Resource returns the underlying resource, nil if declaration failed.
func (pb *ParameterBuilder) Resource() *model.Resource { return pb.res }
