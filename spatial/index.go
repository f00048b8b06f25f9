package spatial

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/geom"
)

// Sentinel errors for index operations.
var (
	// ErrNilGraph indicates an index was requested over a nil graph.
	ErrNilGraph = errors.New("spatial: graph is nil")

	// ErrNilNode indicates a nil node was passed to a mutation method.
	ErrNilNode = errors.New("spatial: node is nil")

	// ErrEmptyIndex indicates a nearest-node query against an empty index.
	ErrEmptyIndex = errors.New("spatial: index is empty")

	// ErrBadBox indicates a box query whose minimum corner exceeds its
	// maximum corner on some axis.
	ErrBadBox = errors.New("spatial: box min exceeds max")
)

// R-tree geometry parameters. Nodes are points; the R-tree needs strictly
// positive rectangle extents, so every entry is a cube of pointExtent.
const (
	dimensions  = 3
	minBranch   = 25
	maxBranch   = 50
	pointExtent = 1e-9
)

// entry wraps a node for R-tree storage.
type entry[S any] struct {
	node *core.Node[S]
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry[S]) Bounds() rtreego.Rect {
	return e.rect
}

// pointRect builds the degenerate cube the R-tree stores for a position.
func pointRect(p geom.Point3D) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{p.X, p.Y, p.Z},
		[]float64{pointExtent, pointExtent, pointExtent},
	)
}

// Index is a 3D R-tree over a graph's nodes, answering nearest-node and
// box queries without scanning the whole catalog.
type Index[S any] struct {
	graph   *core.Graph[S]
	tree    *rtreego.Rtree
	entries map[*core.Node[S]]*entry[S]
}

// NewIndex builds an index over every node currently in g.
// Returns ErrNilGraph for a nil graph.
func NewIndex[S any](g *core.Graph[S]) (*Index[S], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	idx := &Index[S]{
		graph:   g,
		tree:    rtreego.NewTree(dimensions, minBranch, maxBranch),
		entries: make(map[*core.Node[S]]*entry[S]),
	}
	for _, n := range g.Nodes() {
		if err := idx.Insert(n); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Len returns the number of indexed nodes.
func (idx *Index[S]) Len() int {
	return len(idx.entries)
}

// Insert adds n at its current position. Inserting an already-indexed
// node is a no-op. Returns ErrNilNode for nil.
func (idx *Index[S]) Insert(n *core.Node[S]) error {
	if n == nil {
		return ErrNilNode
	}
	if _, ok := idx.entries[n]; ok {
		return nil
	}
	rect, err := pointRect(n.Position())
	if err != nil {
		return fmt.Errorf("spatial: indexing %s: %w", n.Position(), err)
	}
	e := &entry[S]{node: n, rect: rect}
	idx.tree.Insert(e)
	idx.entries[n] = e

	return nil
}

// Remove drops n from the index. Reports false when n was not indexed.
func (idx *Index[S]) Remove(n *core.Node[S]) bool {
	e, ok := idx.entries[n]
	if !ok {
		return false
	}
	idx.tree.Delete(e)
	delete(idx.entries, n)

	return true
}

// Update re-indexes n at its current position; call it after SetPosition.
// Returns ErrNilNode for nil. Updating an unindexed node inserts it.
func (idx *Index[S]) Update(n *core.Node[S]) error {
	if n == nil {
		return ErrNilNode
	}
	idx.Remove(n)

	return idx.Insert(n)
}

// Rebuild discards the tree and re-indexes every node currently in the
// graph, picking up membership changes and node movement at once.
func (idx *Index[S]) Rebuild() error {
	idx.tree = rtreego.NewTree(dimensions, minBranch, maxBranch)
	idx.entries = make(map[*core.Node[S]]*entry[S])
	for _, n := range idx.graph.Nodes() {
		if err := idx.Insert(n); err != nil {
			return err
		}
	}

	return nil
}

// NearestNode returns the indexed node closest to p (Euclidean), along
// with that distance. Returns ErrEmptyIndex when nothing is indexed.
func (idx *Index[S]) NearestNode(p geom.Point3D) (*core.Node[S], float64, error) {
	if len(idx.entries) == 0 {
		return nil, 0, ErrEmptyIndex
	}
	got := idx.tree.NearestNeighbor(rtreego.Point{p.X, p.Y, p.Z})
	e, ok := got.(*entry[S])
	if !ok {
		return nil, 0, ErrEmptyIndex
	}

	return e.node, geom.Distance(p, e.node.Position()), nil
}

// NodesInBox returns every indexed node whose position lies inside the
// axis-aligned box [lo, hi], in no particular order.
// Returns ErrBadBox when lo exceeds hi on some axis.
func (idx *Index[S]) NodesInBox(lo, hi geom.Point3D) ([]*core.Node[S], error) {
	lengths := []float64{hi.X - lo.X, hi.Y - lo.Y, hi.Z - lo.Z}
	for i, l := range lengths {
		if l < 0 {
			return nil, fmt.Errorf("%w: axis %d", ErrBadBox, i)
		}
		// rtreego rejects zero extents and does not count rects that only
		// touch as intersecting; padding every axis by pointExtent lets the
		// query overlap the point cubes of nodes sitting on the max face
		lengths[i] = l + pointExtent
	}
	rect, err := rtreego.NewRect(rtreego.Point{lo.X, lo.Y, lo.Z}, lengths)
	if err != nil {
		return nil, fmt.Errorf("spatial: box query: %w", err)
	}

	hits := idx.tree.SearchIntersect(rect)
	out := make([]*core.Node[S], 0, len(hits))
	for _, h := range hits {
		e, ok := h.(*entry[S])
		if !ok {
			continue
		}
		// the R-tree matched the padded rect; confirm the actual position
		p := e.node.Position()
		if p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y && p.Z >= lo.Z && p.Z <= hi.Z {
			out = append(out, e.node)
		}
	}

	return out, nil
}
