package core

import (
	"math"

	"github.com/katalvlaran/wayfind/geom"
)

// Node is a vertex embedded in 3D space, carrying a payload of type S,
// ordered adjacency lists, and a passability flag.
//
// Nodes are compared by pointer identity throughout the library. Two
// distinct nodes may occupy the same position; geometric coincidence is
// observable only through Position().
type Node[S any] struct {
	pos      geom.Point3D
	passable bool
	payload  S

	incoming []*Arc[S]
	outgoing []*Arc[S]
}

// NewNode creates a passable node at the given position.
// Use WithPayload to attach a payload at construction.
func NewNode[S any](pos geom.Point3D, opts ...NodeOption[S]) *Node[S] {
	n := &Node[S]{pos: pos, passable: true}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Position returns the node's current position.
func (n *Node[S]) Position() geom.Point3D {
	return n.pos
}

// SetPosition moves the node and invalidates the cached length of every
// incident arc, so subsequent Length calls reflect the new geometry.
func (n *Node[S]) SetPosition(p geom.Point3D) {
	n.pos = p
	for _, a := range n.incoming {
		a.invalidateLength()
	}
	for _, a := range n.outgoing {
		a.invalidateLength()
	}
}

// Passable reports whether the search may visit this node.
func (n *Node[S]) Passable() bool {
	return n.passable
}

// SetPassable stores v on the node and cascades it to every incident arc.
// The cascade is one-way: arcs never propagate passability back to nodes.
func (n *Node[S]) SetPassable(v bool) {
	for _, a := range n.incoming {
		a.passable = v
	}
	for _, a := range n.outgoing {
		a.passable = v
	}
	n.passable = v
}

// Payload returns the payload stored at construction.
func (n *Node[S]) Payload() S {
	return n.payload
}

// IncomingArcs returns a snapshot of the arcs ending at this node, in
// insertion order.
func (n *Node[S]) IncomingArcs() []*Arc[S] {
	out := make([]*Arc[S], len(n.incoming))
	copy(out, n.incoming)

	return out
}

// OutgoingArcs returns a snapshot of the arcs starting at this node, in
// insertion order.
func (n *Node[S]) OutgoingArcs() []*Arc[S] {
	out := make([]*Arc[S], len(n.outgoing))
	copy(out, n.outgoing)

	return out
}

// ArcGoingTo scans the outgoing arcs in insertion order and returns the
// first whose end node is dst (by identity), or nil if none exists.
// Returns ErrNilNode when dst is nil.
func (n *Node[S]) ArcGoingTo(dst *Node[S]) (*Arc[S], error) {
	if dst == nil {
		return nil, ErrNilNode
	}
	for _, a := range n.outgoing {
		if a.end == dst {
			return a, nil
		}
	}

	return nil, nil
}

// ArcComingFrom scans the incoming arcs in insertion order and returns the
// first whose start node is src (by identity), or nil if none exists.
// Returns ErrNilNode when src is nil.
func (n *Node[S]) ArcComingFrom(src *Node[S]) (*Arc[S], error) {
	if src == nil {
		return nil, ErrNilNode
	}
	for _, a := range n.incoming {
		if a.start == src {
			return a, nil
		}
	}

	return nil, nil
}

// AccessibleNodes returns the end nodes of the outgoing arcs, in arc
// insertion order, without duplicates.
func (n *Node[S]) AccessibleNodes() []*Node[S] {
	seen := make(map[*Node[S]]bool, len(n.outgoing))
	out := make([]*Node[S], 0, len(n.outgoing))
	for _, a := range n.outgoing {
		if !seen[a.end] {
			seen[a.end] = true
			out = append(out, a.end)
		}
	}

	return out
}

// AccessingNodes returns the start nodes of the incoming arcs, in arc
// insertion order, without duplicates.
func (n *Node[S]) AccessingNodes() []*Node[S] {
	seen := make(map[*Node[S]]bool, len(n.incoming))
	out := make([]*Node[S], 0, len(n.incoming))
	for _, a := range n.incoming {
		if !seen[a.start] {
			seen[a.start] = true
			out = append(out, a.start)
		}
	}

	return out
}

// Molecule returns the node itself plus every adjacent node (both
// directions), deduplicated, with the node first and neighbors following
// in arc insertion order (outgoing before incoming).
func (n *Node[S]) Molecule() []*Node[S] {
	seen := map[*Node[S]]bool{n: true}
	out := []*Node[S]{n}
	for _, a := range n.outgoing {
		if !seen[a.end] {
			seen[a.end] = true
			out = append(out, a.end)
		}
	}
	for _, a := range n.incoming {
		if !seen[a.start] {
			seen[a.start] = true
			out = append(out, a.start)
		}
	}

	return out
}

// Isolate detaches the node from its neighborhood: every incident arc is
// removed from the opposite endpoint's adjacency list, and both of this
// node's own lists are cleared. The node remains a valid object.
//
// Isolate does NOT touch any Graph's arc catalog; use Graph.RemoveNode to
// detach and deregister in one step.
func (n *Node[S]) Isolate() {
	for _, a := range n.outgoing {
		if a.end != n {
			a.end.dropIncoming(a)
		}
	}
	for _, a := range n.incoming {
		if a.start != n {
			a.start.dropOutgoing(a)
		}
	}
	n.outgoing = nil
	n.incoming = nil
}

// dropOutgoing removes the first identity match of a from the outgoing list.
func (n *Node[S]) dropOutgoing(a *Arc[S]) {
	for i, cur := range n.outgoing {
		if cur == a {
			n.outgoing = append(n.outgoing[:i], n.outgoing[i+1:]...)

			return
		}
	}
}

// dropIncoming removes the first identity match of a from the incoming list.
func (n *Node[S]) dropIncoming(a *Arc[S]) {
	for i, cur := range n.incoming {
		if cur == a {
			n.incoming = append(n.incoming[:i], n.incoming[i+1:]...)

			return
		}
	}
}

// EuclideanDistance returns the straight-line distance between two nodes'
// positions. Symmetric, non-negative, zero iff the positions coincide.
func EuclideanDistance[S any](u, v *Node[S]) float64 {
	return geom.Distance(u.pos, v.pos)
}

// SquaredEuclideanDistance returns the squared straight-line distance
// between two nodes' positions.
func SquaredEuclideanDistance[S any](u, v *Node[S]) float64 {
	return geom.SquaredDistance(u.pos, v.pos)
}

// ManhattanDistance returns the L1 distance between two nodes' positions.
func ManhattanDistance[S any](u, v *Node[S]) float64 {
	return geom.ManhattanDistance(u.pos, v.pos)
}

// ChebyshevDistance returns the L∞ distance between two nodes' positions.
func ChebyshevDistance[S any](u, v *Node[S]) float64 {
	return geom.ChebyshevDistance(u.pos, v.pos)
}

// BoundingBox computes the axis-aligned bounding box of the given nodes'
// positions, returned as the minimum and maximum corner.
// Returns ErrEmptyCollection when nodes is empty.
func BoundingBox[S any](nodes []*Node[S]) (geom.Point3D, geom.Point3D, error) {
	if len(nodes) == 0 {
		return geom.Point3D{}, geom.Point3D{}, ErrEmptyCollection
	}
	lo := geom.Point3D{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := geom.Point3D{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, n := range nodes {
		p := n.pos
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		lo.Z = math.Min(lo.Z, p.Z)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
		hi.Z = math.Max(hi.Z, p.Z)
	}

	return lo, hi, nil
}
