// Package core: sentinel errors and construction options.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates a nil node pointer was supplied.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNilArc indicates a nil arc pointer was supplied.
	ErrNilArc = errors.New("core: arc is nil")

	// ErrNotMember indicates an arc references an endpoint that is not a
	// member of the graph it is being added to.
	ErrNotMember = errors.New("core: arc endpoint not in graph")

	// ErrNegativeWeight indicates an arc weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: arc weight must be non-negative")

	// ErrEmptyCollection indicates a bounding box was requested over an
	// empty node collection.
	ErrEmptyCollection = errors.New("core: empty node collection")

	// ErrEmptyGraph indicates a spatial query was issued against a graph
	// with no nodes (or, for ClosestArc, no arcs).
	ErrEmptyGraph = errors.New("core: graph is empty")
)

// NodeOption configures a Node at construction time.
type NodeOption[S any] func(*Node[S])

// WithPayload attaches a user payload to the node. The payload is opaque
// to the library: stored at construction, returned unchanged by Payload,
// never compared.
func WithPayload[S any](payload S) NodeOption[S] {
	return func(n *Node[S]) { n.payload = payload }
}
