package model

import (
	"fmt"

	"github.com/appmodel/apphost/internal/output"
)

// Endpoint field defaults applied by the builder when not set explicitly.
const (
	DefaultProtocol  = "tcp"
	DefaultTransport = "tcp"
	DefaultScheme    = "tcp"
)

// AllocatedEndpoint is the concrete placement of an endpoint, bound only once
// the hosting environment has placed the resource in run mode. Publish mode
// never allocates; symbolic placeholders stand in instead.
type AllocatedEndpoint struct {
	Host string
	Port int
}

// Address returns "host:port".
func (a AllocatedEndpoint) Address() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// EndpointAnnotation declares a named network binding on a resource. The
// declared fields are static; Allocated is set at run time via Allocate.
type EndpointAnnotation struct {
	// Name is the logical endpoint name, unique within the resource.
	Name string

	// TargetPort is the port the resource listens on.
	TargetPort int

	// External marks the endpoint as reachable from outside the application.
	External bool

	// Protocol is the L4 protocol ("tcp" or "udp").
	Protocol string

	// Transport is the transport hint for proxies ("tcp", "http", "http2").
	Transport string

	// Scheme is the URI scheme used when composing URLs ("http", "https", "tcp").
	Scheme string

	allocated *AllocatedEndpoint
}

func (*EndpointAnnotation) annotation() {}

// Allocate binds the endpoint to a concrete host and port. Re-allocation
// overwrites the previous binding and is logged at debug level.
func (e *EndpointAnnotation) Allocate(host string, port int) {
	if e.allocated != nil {
		output.Debug("endpoint reallocated",
			"endpoint", e.Name,
			"previous", e.allocated.Address(),
			"next", fmt.Sprintf("%s:%d", host, port),
		)
	}
	e.allocated = &AllocatedEndpoint{Host: host, Port: port}
}

// Allocated returns the concrete allocation, if any.
func (e *EndpointAnnotation) Allocated() (AllocatedEndpoint, bool) {
	if e.allocated == nil {
		return AllocatedEndpoint{}, false
	}
	return *e.allocated, true
}
