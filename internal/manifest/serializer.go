// Package manifest renders a resource graph into the deterministic deployment
// manifest consumed by external tooling. Field emission order is fixed (type,
// connectionString, image, env, bindings) and output is byte-for-byte stable,
// since downstream golden comparisons diff full document text.
package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/appmodel/apphost/internal/eval"
	"github.com/appmodel/apphost/internal/model"
)

// Serializer renders resources and graphs against one execution context.
// Manifest documents are normally produced in publish mode; a run-mode
// serializer yields concrete values instead of placeholders.
type Serializer struct {
	ec       *eval.ExecutionContext
	registry string
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithRegistry sets a default image registry applied to image annotations that
// do not carry their own.
func WithRegistry(registry string) Option {
	return func(s *Serializer) { s.registry = registry }
}

// NewSerializer creates a serializer over the execution context.
func NewSerializer(ec *eval.ExecutionContext, opts ...Option) *Serializer {
	s := &Serializer{ec: ec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document renders the whole graph: {"resources": {<name>: <doc>, ...}} with
// resources in declaration order.
func (s *Serializer) Document(ctx context.Context) ([]byte, error) {
	resources := newObject()
	for _, res := range s.ec.Graph().Resources() {
		doc, err := s.resourceObject(ctx, res)
		if err != nil {
			return nil, err
		}
		resources.set(res.Name(), doc)
	}
	root := newObject()
	root.set("resources", resources)
	return encode(root)
}

// Resource renders a single resource subtree.
func (s *Serializer) Resource(ctx context.Context, res *model.Resource) ([]byte, error) {
	doc, err := s.resourceObject(ctx, res)
	if err != nil {
		return nil, err
	}
	return encode(doc)
}

// resourceObject builds the ordered document for one resource.
func (s *Serializer) resourceObject(ctx context.Context, res *model.Resource) (*object, error) {
	if res.Kind() == model.KindParameter {
		return s.parameterObject(res)
	}

	doc := newObject()
	doc.set("type", string(res.Kind()))

	cs, err := s.ec.ConnectionString(res)
	switch {
	case err == nil:
		doc.set("connectionString", cs)
	case errors.Is(err, model.ErrNoConnectionString):
		// Optional field; resources without the capability simply omit it.
	default:
		return nil, fmt.Errorf("serializing %q: %w", res.Name(), err)
	}

	if img, ok := res.Image(); ok {
		doc.set("image", s.imageRef(img))
	}

	if cmd, ok := res.Command(); ok {
		doc.set("command", cmd.Command)
		if len(cmd.Args) > 0 {
			doc.set("args", cmd.Args)
		}
		if cmd.WorkingDir != "" {
			doc.set("workingDirectory", cmd.WorkingDir)
		}
	}

	env, err := s.ec.Environment(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("serializing %q: %w", res.Name(), err)
	}
	if len(env) > 0 {
		envObj := newObject()
		for _, v := range env {
			envObj.set(v.Name, v.Value)
		}
		doc.set("env", envObj)
	}

	if eps := res.Endpoints(); len(eps) > 0 {
		bindings := newObject()
		for _, ep := range eps {
			bindings.set(ep.Name, bindingObject(ep))
		}
		doc.set("bindings", bindings)
	}

	return doc, nil
}

// bindingObject renders the static declared endpoint fields. Host and port are
// omitted; they exist only at run time.
func bindingObject(ep *model.EndpointAnnotation) *object {
	binding := newObject()
	binding.set("scheme", ep.Scheme)
	binding.set("protocol", ep.Protocol)
	binding.set("transport", ep.Transport)
	binding.set("targetPort", ep.TargetPort)
	if ep.External {
		binding.set("external", true)
	}
	return binding
}

// parameterObject renders a parameter resource document.
func (s *Serializer) parameterObject(res *model.Resource) (*object, error) {
	value, err := s.ec.ParameterValue(res)
	if err != nil {
		return nil, fmt.Errorf("serializing parameter %q: %w", res.Name(), err)
	}

	doc := newObject()
	doc.set("type", string(res.Kind()))
	doc.set("value", value)

	valueInput := newObject()
	valueInput.set("type", "string")
	if res.Parameter().Secret() {
		valueInput.set("secret", true)
	}
	inputs := newObject()
	inputs.set("value", valueInput)
	doc.set("inputs", inputs)

	return doc, nil
}

// imageRef applies the serializer's default registry to images without one.
func (s *Serializer) imageRef(img *model.ImageAnnotation) string {
	if s.registry != "" && img.Registry == "" {
		withRegistry := *img
		withRegistry.Registry = s.registry
		return withRegistry.Ref()
	}
	return img.Ref()
}
