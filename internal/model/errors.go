package model

import "errors"

// Sentinel errors for graph construction and evaluation failures.
var (
	// ErrDuplicateResource indicates a resource name is already taken in the graph.
	ErrDuplicateResource = errors.New("duplicate resource name")

	// ErrDuplicateEndpoint indicates an endpoint name is already declared on the resource.
	ErrDuplicateEndpoint = errors.New("duplicate endpoint name")

	// ErrInvalidName indicates a resource or endpoint name failed validation.
	ErrInvalidName = errors.New("invalid name")

	// ErrFrozen indicates a mutation was attempted after the graph was frozen.
	ErrFrozen = errors.New("graph is frozen")

	// ErrUnresolvedPlaceholder indicates an expression references a name with no
	// matching endpoint or parameter.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

	// ErrMissingAllocation indicates run-mode resolution was attempted before the
	// endpoint was allocated.
	ErrMissingAllocation = errors.New("endpoint not allocated")

	// ErrNoConnectionString indicates a referenced resource cannot produce a
	// connection string.
	ErrNoConnectionString = errors.New("resource has no connection string")
)
