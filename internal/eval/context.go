// Package eval resolves values against a frozen resource graph: connection
// string expressions, endpoint and parameter placeholders, and per-resource
// environment variables. Resolution behavior is selected once by the execution
// mode; run mode yields concrete values, publish mode yields symbolic manifest
// placeholders.
package eval

import (
	"fmt"

	"github.com/appmodel/apphost/internal/model"
)

// Mode is the process-wide execution mode, chosen once at startup.
type Mode string

const (
	// ModeRun resolves endpoints and parameters to concrete values.
	ModeRun Mode = "run"

	// ModePublish resolves to symbolic {identifier.path} placeholders.
	ModePublish Mode = "publish"
)

// ExecutionContext binds a frozen graph to an execution mode. All resolution
// goes through the single ValueResolver selected at construction, so concrete
// and symbolic values are never mixed within one output.
type ExecutionContext struct {
	graph    *model.Graph
	mode     Mode
	resolver ValueResolver
}

// NewExecutionContext creates an execution context for the graph. The graph
// should already be frozen; evaluation treats it as read-only.
func NewExecutionContext(g *model.Graph, mode Mode) *ExecutionContext {
	ec := &ExecutionContext{graph: g, mode: mode}
	switch mode {
	case ModePublish:
		ec.resolver = publishResolver{}
	default:
		ec.resolver = runResolver{}
	}
	return ec
}

// Mode returns the execution mode.
func (ec *ExecutionContext) Mode() Mode { return ec.mode }

// Graph returns the underlying graph.
func (ec *ExecutionContext) Graph() *model.Graph { return ec.graph }

// ConnectionString resolves the resource's declared connection string
// expression. Resources without a ConnectionStringAnnotation cannot produce
// one; that is a configuration error, not an empty result.
func (ec *ExecutionContext) ConnectionString(res *model.Resource) (string, error) {
	cs, ok := res.ConnectionString()
	if !ok {
		return "", fmt.Errorf("resource %q: %w", res.Name(), model.ErrNoConnectionString)
	}
	return ec.resolveExpression(res, cs.Expression)
}

// EndpointURL resolves "scheme://host:port" for one endpoint of a resource.
func (ec *ExecutionContext) EndpointURL(res *model.Resource, ep *model.EndpointAnnotation) (string, error) {
	scheme, err := ec.resolver.EndpointValue(res, ep, "scheme")
	if err != nil {
		return "", err
	}
	host, err := ec.resolver.EndpointValue(res, ep, "host")
	if err != nil {
		return "", err
	}
	port, err := ec.resolver.EndpointValue(res, ep, "port")
	if err != nil {
		return "", err
	}
	return scheme + "://" + host + ":" + port, nil
}

// ParameterValue resolves the value of a parameter resource.
func (ec *ExecutionContext) ParameterValue(res *model.Resource) (string, error) {
	return ec.resolver.ParameterValue(res)
}
