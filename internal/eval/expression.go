package eval

import (
	"fmt"
	"strings"

	"github.com/appmodel/apphost/internal/model"
)

// resolveExpression substitutes every {identifier.field} placeholder in the
// expression in a single left-to-right pass. Identifiers resolve first against
// the owning resource's endpoints, then against parameter resources in the
// graph. Unmatched placeholders fail; partial output is never returned.
func (ec *ExecutionContext) resolveExpression(owner *model.Resource, expr string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(expr); {
		c := expr[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(expr[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("resource %q: unterminated placeholder in %q: %w", owner.Name(), expr, model.ErrUnresolvedPlaceholder)
		}
		placeholder := expr[i+1 : i+end]
		value, err := ec.resolvePlaceholder(owner, placeholder)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
		i += end + 1
	}
	return b.String(), nil
}

// resolvePlaceholder resolves one "identifier.field" placeholder body.
func (ec *ExecutionContext) resolvePlaceholder(owner *model.Resource, placeholder string) (string, error) {
	dot := strings.LastIndexByte(placeholder, '.')
	if dot <= 0 || dot == len(placeholder)-1 {
		return "", fmt.Errorf("resource %q: malformed placeholder {%s}: %w", owner.Name(), placeholder, model.ErrUnresolvedPlaceholder)
	}
	ident, field := placeholder[:dot], placeholder[dot+1:]

	if ep, ok := owner.Endpoint(ident); ok {
		return ec.resolver.EndpointValue(owner, ep, field)
	}

	if res, ok := ec.graph.Resource(ident); ok && res.Parameter() != nil {
		if field != "value" {
			return "", fmt.Errorf("resource %q: parameter placeholder {%s} must use .value: %w", owner.Name(), placeholder, model.ErrUnresolvedPlaceholder)
		}
		return ec.resolver.ParameterValue(res)
	}

	return "", fmt.Errorf("resource %q: placeholder {%s} matches no endpoint or parameter: %w", owner.Name(), placeholder, model.ErrUnresolvedPlaceholder)
}
