package astar

import (
	"github.com/katalvlaran/wayfind/core"
)

// Track is a path prefix from the start node to some frontier node,
// recorded as a back-linked chain: each track extends its predecessor by
// exactly one arc. Tracks are immutable once created; the engine builds
// them during propagation and walks the winning chain backwards to
// reconstruct the result.
type Track[S any] struct {
	end  *core.Node[S]
	prev *Track[S]
	via  *core.Arc[S] // the arc that extended prev into this track; nil for the start track

	cost        float64
	arcsVisited int
}

// newStartTrack builds the zero-cost track seeding the open set.
func newStartTrack[S any](start *core.Node[S]) *Track[S] {
	return &Track[S]{end: start}
}

// extend builds the successor track obtained by traversing a from t's end
// node. a must start at t.end.
func (t *Track[S]) extend(a *core.Arc[S]) *Track[S] {
	return &Track[S]{
		end:         a.EndNode(),
		prev:        t,
		via:         a,
		cost:        t.cost + a.Cost(),
		arcsVisited: t.arcsVisited + 1,
	}
}

// EndNode returns the node this track terminates at.
func (t *Track[S]) EndNode() *core.Node[S] {
	return t.end
}

// Prev returns the track one arc shorter, or nil for the start track.
func (t *Track[S]) Prev() *Track[S] {
	return t.prev
}

// Cost returns the cumulative arc cost from the start to EndNode.
func (t *Track[S]) Cost() float64 {
	return t.cost
}

// ArcsVisited returns the number of arcs in the prefix (0 for the start
// track).
func (t *Track[S]) ArcsVisited() int {
	return t.arcsVisited
}

// nodes materializes the chain as a start→end node sequence.
func (t *Track[S]) nodes() []*core.Node[S] {
	out := make([]*core.Node[S], t.arcsVisited+1)
	for cur, i := t, t.arcsVisited; cur != nil; cur, i = cur.prev, i-1 {
		out[i] = cur.end
	}

	return out
}
