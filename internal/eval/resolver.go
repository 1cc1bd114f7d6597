package eval

import (
	"fmt"
	"strconv"

	"github.com/appmodel/apphost/internal/model"
)

// ValueResolver produces the string value of an endpoint field or parameter.
// Exactly one implementation is active per ExecutionContext; placeholder
// substitution is single-sourced on top of it.
type ValueResolver interface {
	// EndpointValue resolves one field ("scheme", "host", "port") of an
	// endpoint belonging to the resource.
	EndpointValue(res *model.Resource, ep *model.EndpointAnnotation, field string) (string, error)

	// ParameterValue resolves the value of a parameter resource.
	ParameterValue(res *model.Resource) (string, error)
}

// runResolver returns concrete values from allocations and parameter stores.
type runResolver struct{}

func (runResolver) EndpointValue(res *model.Resource, ep *model.EndpointAnnotation, field string) (string, error) {
	if field == "scheme" {
		return ep.Scheme, nil
	}
	alloc, ok := ep.Allocated()
	if !ok {
		return "", fmt.Errorf("endpoint %q on resource %q: %w", ep.Name, res.Name(), model.ErrMissingAllocation)
	}
	switch field {
	case "host":
		return alloc.Host, nil
	case "port":
		return strconv.Itoa(alloc.Port), nil
	default:
		return "", fmt.Errorf("endpoint field %q on %s.%s: %w", field, res.Name(), ep.Name, model.ErrUnresolvedPlaceholder)
	}
}

func (runResolver) ParameterValue(res *model.Resource) (string, error) {
	p := res.Parameter()
	if p == nil {
		return "", fmt.Errorf("resource %q is not a parameter: %w", res.Name(), model.ErrUnresolvedPlaceholder)
	}
	return p.Value(), nil
}

// publishResolver returns resource-qualified symbolic references for the
// manifest document.
type publishResolver struct{}

func (publishResolver) EndpointValue(res *model.Resource, ep *model.EndpointAnnotation, field string) (string, error) {
	switch field {
	case "scheme", "host", "port":
		return fmt.Sprintf("{%s.bindings.%s.%s}", res.Name(), ep.Name, field), nil
	default:
		return "", fmt.Errorf("endpoint field %q on %s.%s: %w", field, res.Name(), ep.Name, model.ErrUnresolvedPlaceholder)
	}
}

func (publishResolver) ParameterValue(res *model.Resource) (string, error) {
	if res.Parameter() == nil {
		return "", fmt.Errorf("resource %q is not a parameter: %w", res.Name(), model.ErrUnresolvedPlaceholder)
	}
	return fmt.Sprintf("{%s.value}", res.Name()), nil
}
