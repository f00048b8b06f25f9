package core

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/wayfind/geom"
)

// Graph owns ordered catalogs of nodes and arcs. Catalog membership is by
// identity: the same *Node or *Arc is never stored twice, but two distinct
// arcs between the same endpoints are allowed.
//
// Catalog access is guarded by an internal RWMutex. See the package doc
// for what is — and is not — synchronized.
type Graph[S any] struct {
	mu sync.RWMutex

	nodes []*Node[S]
	arcs  []*Arc[S]

	nodeSet map[*Node[S]]bool
	arcSet  map[*Arc[S]]bool
}

// NewGraph creates an empty graph.
func NewGraph[S any]() *Graph[S] {
	return &Graph[S]{
		nodeSet: make(map[*Node[S]]bool),
		arcSet:  make(map[*Arc[S]]bool),
	}
}

// Lock acquires the graph's write lock. astar.SearchPath holds it for the
// duration of a search so that catalog mutators block until the search
// ends. Callers driving the stepwise API across goroutines may use it the
// same way.
func (g *Graph[S]) Lock() { g.mu.Lock() }

// Unlock releases the write lock taken by Lock.
func (g *Graph[S]) Unlock() { g.mu.Unlock() }

// AddNode inserts n into the node catalog. Reports false when n is nil or
// already a member.
func (g *Graph[S]) AddNode(n *Node[S]) bool {
	if n == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nodeSet[n] {
		return false
	}
	g.nodeSet[n] = true
	g.nodes = append(g.nodes, n)

	return true
}

// AddArc inserts an externally constructed arc into the arc catalog.
// Both endpoints must already be members; otherwise ErrNotMember.
// Adding an arc that is already a member is a no-op.
func (g *Graph[S]) AddArc(a *Arc[S]) error {
	if a == nil {
		return ErrNilArc
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addArcLocked(a)
}

// addArcLocked inserts a under an already-held write lock.
func (g *Graph[S]) addArcLocked(a *Arc[S]) error {
	if g.arcSet[a] {
		return nil
	}
	if !g.nodeSet[a.start] {
		return fmt.Errorf("%w: start node %s", ErrNotMember, a.start.pos)
	}
	if !g.nodeSet[a.end] {
		return fmt.Errorf("%w: end node %s", ErrNotMember, a.end.pos)
	}
	g.arcSet[a] = true
	g.arcs = append(g.arcs, a)

	return nil
}

// AddArcBetween creates an arc from u to v with weight w, wires its
// adjacency, and inserts it into the catalog.
// Returns ErrNilNode, ErrNotMember, or ErrNegativeWeight on bad input.
func (g *Graph[S]) AddArcBetween(u, v *Node[S], w float64) (*Arc[S], error) {
	if u == nil || v == nil {
		return nil, ErrNilNode
	}
	if w < 0 {
		return nil, ErrNegativeWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.nodeSet[u] {
		return nil, fmt.Errorf("%w: start node %s", ErrNotMember, u.pos)
	}
	if !g.nodeSet[v] {
		return nil, fmt.Errorf("%w: end node %s", ErrNotMember, v.pos)
	}
	a, err := NewArc(u, v)
	if err != nil {
		return nil, err
	}
	a.weight = w
	g.arcSet[a] = true
	g.arcs = append(g.arcs, a)

	return a, nil
}

// AddBidirectional creates two opposing arcs between u and v, both with
// weight w, and inserts them into the catalog.
func (g *Graph[S]) AddBidirectional(u, v *Node[S], w float64) (*Arc[S], *Arc[S], error) {
	fwd, err := g.AddArcBetween(u, v, w)
	if err != nil {
		return nil, nil, err
	}
	rev, err := g.AddArcBetween(v, u, w)
	if err != nil {
		return nil, nil, err
	}

	return fwd, rev, nil
}

// RemoveNode removes n from the catalog along with every incident arc,
// detaching each arc from the opposite endpoint's adjacency list.
// Reports false when n is nil or not a member; internal inconsistencies
// are swallowed and reported as false rather than propagated.
func (g *Graph[S]) RemoveNode(n *Node[S]) bool {
	if n == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.nodeSet[n] {
		return false
	}

	// Collect incident arcs before detaching mutates the lists.
	incident := make([]*Arc[S], 0, len(n.outgoing)+len(n.incoming))
	incident = append(incident, n.outgoing...)
	incident = append(incident, n.incoming...)
	for _, a := range incident {
		g.detachArcLocked(a)
	}

	delete(g.nodeSet, n)
	for i, cur := range g.nodes {
		if cur == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)

			return true
		}
	}

	// Catalog set and slice disagreed; report soft failure.
	return false
}

// RemoveArc removes a from the catalog and from both endpoints' adjacency
// lists. Reports false when a is nil or not a member.
func (g *Graph[S]) RemoveArc(a *Arc[S]) bool {
	if a == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.arcSet[a] {
		return false
	}
	g.detachArcLocked(a)

	return true
}

// detachArcLocked unwires a from its endpoints and drops it from the
// catalog, under an already-held write lock. Arcs not in the catalog are
// still unwired from their endpoints.
func (g *Graph[S]) detachArcLocked(a *Arc[S]) {
	a.start.dropOutgoing(a)
	a.end.dropIncoming(a)
	if !g.arcSet[a] {
		return
	}
	delete(g.arcSet, a)
	for i, cur := range g.arcs {
		if cur == a {
			g.arcs = append(g.arcs[:i], g.arcs[i+1:]...)

			return
		}
	}
}

// Clear empties both catalogs. Per-node adjacency lists are left alone:
// a cleared graph is expected to be discarded together with everything it
// referenced.
func (g *Graph[S]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.arcs = nil
	g.nodeSet = make(map[*Node[S]]bool)
	g.arcSet = make(map[*Arc[S]]bool)
}

// Nodes returns a snapshot of the node catalog in insertion order.
func (g *Graph[S]) Nodes() []*Node[S] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node[S], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Arcs returns a snapshot of the arc catalog in insertion order.
func (g *Graph[S]) Arcs() []*Arc[S] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Arc[S], len(g.arcs))
	copy(out, g.arcs)

	return out
}

// NodeCount returns the number of nodes in the catalog.
func (g *Graph[S]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// ArcCount returns the number of arcs in the catalog.
func (g *Graph[S]) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arcs)
}

// HasNode reports catalog membership of n (by identity).
func (g *Graph[S]) HasNode(n *Node[S]) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeSet[n]
}

// HasArc reports catalog membership of a (by identity).
func (g *Graph[S]) HasArc(a *Arc[S]) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcSet[a]
}

// BoundingBox returns the axis-aligned bounding box over all nodes.
// Returns ErrEmptyGraph when the graph has no nodes.
func (g *Graph[S]) BoundingBox() (geom.Point3D, geom.Point3D, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	lo, hi, err := BoundingBox(g.nodes)
	if err != nil {
		return geom.Point3D{}, geom.Point3D{}, ErrEmptyGraph
	}

	return lo, hi, nil
}

// ClosestNode scans the node catalog and returns the node minimizing the
// Euclidean distance to p, along with that distance. Ties resolve to the
// first node encountered in insertion order. With skipImpassable set,
// impassable nodes are not considered; if the filter rejects every node
// the result is (nil, +Inf, nil).
// Returns ErrEmptyGraph when the graph has no nodes at all.
func (g *Graph[S]) ClosestNode(p geom.Point3D, skipImpassable bool) (*Node[S], float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return nil, 0, ErrEmptyGraph
	}
	var best *Node[S]
	bestDist := math.Inf(1)
	for _, n := range g.nodes {
		if skipImpassable && !n.passable {
			continue
		}
		if d := geom.Distance(p, n.pos); d < bestDist {
			best = n
			bestDist = d
		}
	}

	return best, bestDist, nil
}

// ClosestArc scans the arc catalog and returns the arc minimizing the
// distance from p to the projection of p onto the infinite line through
// the arc's endpoints, along with that distance. The measure is to the
// line, not the segment, so the foot of the perpendicular may lie outside
// the arc. Ties resolve to the first arc in insertion order. With
// skipImpassable set, impassable arcs are not considered; if the filter
// rejects every arc the result is (nil, +Inf, nil).
// Returns ErrEmptyGraph when the graph has no arcs at all.
func (g *Graph[S]) ClosestArc(p geom.Point3D, skipImpassable bool) (*Arc[S], float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.arcs) == 0 {
		return nil, 0, ErrEmptyGraph
	}
	var best *Arc[S]
	bestDist := math.Inf(1)
	for _, a := range g.arcs {
		if skipImpassable && !a.passable {
			continue
		}
		foot := geom.ProjectOnLine(p, a.start.pos, a.end.pos)
		if d := geom.Distance(p, foot); d < bestDist {
			best = a
			bestDist = d
		}
	}

	return best, bestDist, nil
}
