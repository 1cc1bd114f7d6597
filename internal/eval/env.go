package eval

import (
	"context"
	"fmt"

	"github.com/appmodel/apphost/internal/model"
	"github.com/appmodel/apphost/internal/output"
)

// EnvVar is one resolved environment variable.
type EnvVar struct {
	Name  string
	Value string
}

// Environment evaluates the resource's environment variables: callback
// annotations in declaration order first, then connection string entries for
// each reference annotation. Given the same graph and mode the output is
// identical on every call, modulo first-time secret generation.
func (ec *ExecutionContext) Environment(ctx context.Context, res *model.Resource) ([]EnvVar, error) {
	acc := newEnvAccumulator()

	for _, a := range res.Annotations() {
		switch ann := a.(type) {
		case *model.EnvironmentCallbackAnnotation:
			envCtx := &envContext{ec: ec, acc: acc}
			if err := ann.Callback(ctx, envCtx); err != nil {
				return nil, fmt.Errorf("environment callback on resource %q: %w", res.Name(), err)
			}
		case *model.ReferenceAnnotation:
			if err := ec.appendReference(acc, res, ann); err != nil {
				return nil, err
			}
		}
	}

	return acc.vars, nil
}

// appendReference injects the ConnectionStrings__ entry for one reference.
func (ec *ExecutionContext) appendReference(acc *envAccumulator, res *model.Resource, ref *model.ReferenceAnnotation) error {
	target := ref.Target
	if ref.EndpointName != "" {
		ep, ok := target.Endpoint(ref.EndpointName)
		if !ok {
			return fmt.Errorf("resource %q references endpoint %q on %q: %w",
				res.Name(), ref.EndpointName, target.Name(), model.ErrUnresolvedPlaceholder)
		}
		url, err := ec.EndpointURL(target, ep)
		if err != nil {
			return err
		}
		acc.set("ConnectionStrings__"+target.Name()+"_"+ep.Name, url)
		return nil
	}

	cs, err := ec.ConnectionString(target)
	if err != nil {
		return fmt.Errorf("resource %q references %q: %w", res.Name(), target.Name(), err)
	}
	acc.set("ConnectionStrings__"+target.Name(), cs)
	return nil
}

// envAccumulator keeps insertion order with last-write-wins value semantics.
type envAccumulator struct {
	vars []EnvVar
	idx  map[string]int
}

func newEnvAccumulator() *envAccumulator {
	return &envAccumulator{idx: make(map[string]int)}
}

func (a *envAccumulator) set(key, value string) {
	if i, ok := a.idx[key]; ok {
		output.Debug("environment variable overwritten", "key", key)
		a.vars[i].Value = value
		return
	}
	a.idx[key] = len(a.vars)
	a.vars = append(a.vars, EnvVar{Name: key, Value: value})
}

// envContext implements model.EnvContext for callbacks.
type envContext struct {
	ec  *ExecutionContext
	acc *envAccumulator
}

func (c *envContext) Set(key, value string) {
	c.acc.set(key, value)
}

func (c *envContext) ParameterValue(name string) (string, error) {
	res, ok := c.ec.graph.Resource(name)
	if !ok || res.Parameter() == nil {
		return "", fmt.Errorf("parameter %q: %w", name, model.ErrUnresolvedPlaceholder)
	}
	return c.ec.resolver.ParameterValue(res)
}

func (c *envContext) EndpointURL(resource, endpoint string) (string, error) {
	res, ok := c.ec.graph.Resource(resource)
	if !ok {
		return "", fmt.Errorf("resource %q: %w", resource, model.ErrUnresolvedPlaceholder)
	}
	ep, ok := res.Endpoint(endpoint)
	if !ok {
		return "", fmt.Errorf("endpoint %q on resource %q: %w", endpoint, resource, model.ErrUnresolvedPlaceholder)
	}
	return c.ec.EndpointURL(res, ep)
}
