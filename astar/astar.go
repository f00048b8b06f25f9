package astar

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/geom"
)

// notFoundArcs / notFoundCost are the ResultInformation values reported
// when the search ended without reaching the target.
const (
	notFoundArcs = -1
	notFoundCost = -1.0
)

// AStar is the search engine. It binds the graph, the heuristic, the
// balance, and all per-search state (open and closed sets, step counter,
// winning track), so independent engines may search independent graphs
// concurrently.
//
// An engine is reusable: each Initialize (or SearchPath) resets the
// search state. It is not safe for concurrent use by multiple goroutines.
type AStar[S any] struct {
	graph     *core.Graph[S]
	heuristic Heuristic[S]
	balance   float64
	logger    *log.Logger

	target      *core.Node[S]
	open        *openSet[S]
	closed      map[*core.Node[S]]*Track[S]
	closedOrder []*Track[S]
	leaf        *Track[S]
	stepCounter int
}

// New creates an engine over g. Returns ErrNilGraph for a nil graph and
// ErrBalanceRange for an out-of-range balance option.
func New[S any](g *core.Graph[S], opts ...Option[S]) (*AStar[S], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &AStar[S]{
		graph:       g,
		heuristic:   o.Heuristic,
		balance:     o.Balance,
		logger:      o.Logger,
		open:        newOpenSet[S](),
		closed:      make(map[*core.Node[S]]*Track[S]),
		stepCounter: -1,
	}, nil
}

// Balance returns the engine's Dijkstra/heuristic balance.
func (e *AStar[S]) Balance() float64 {
	return e.balance
}

// SearchPath runs the whole search from start to end and reports whether
// a path was found. It holds the graph's write lock for the duration, so
// catalog mutation from other goroutines blocks until the search ends.
// Returns ErrNilNode when either node is nil.
func (e *AStar[S]) SearchPath(start, end *core.Node[S]) (bool, error) {
	if start == nil || end == nil {
		return false, ErrNilNode
	}
	e.graph.Lock()
	defer e.graph.Unlock()

	if err := e.Initialize(start, end); err != nil {
		return false, err
	}
	for {
		more, err := e.NextStep()
		if err != nil {
			return false, err
		}
		if !more {
			break
		}
	}

	return e.PathFound(), nil
}

// Initialize resets the search state: clears both sets and the winning
// track, binds the target, seeds the open set with the zero-cost start
// track, and zeroes the step counter. It takes no lock; see SearchPath.
// Returns ErrNilNode when either node is nil.
func (e *AStar[S]) Initialize(start, end *core.Node[S]) error {
	if start == nil || end == nil {
		return ErrNilNode
	}
	e.target = end
	e.leaf = nil
	e.open.clear()
	e.closed = make(map[*core.Node[S]]*Track[S])
	e.closedOrder = nil
	e.stepCounter = 0

	st := newStartTrack(start)
	e.open.push(st, e.evaluate(st))

	return nil
}

// NextStep advances the search by one expansion. It reports true when
// this step popped the target (the path is found and the open set is
// cleared) or when the open set still holds tracks after the expansion.
// Returns ErrNotInitialized before Initialize. With an empty open set it
// reports false: the search has ended (the target was either found on an
// earlier step or is unreachable).
func (e *AStar[S]) NextStep() (bool, error) {
	if !e.Initialized() {
		return false, ErrNotInitialized
	}
	if e.open.len() == 0 {
		return false, nil
	}

	t := e.open.popMin()
	if e.logger != nil {
		e.logger.Debug("expanding",
			"node", t.end.Position(),
			"cost", t.cost,
			"arcs", t.arcsVisited,
			"step", e.stepCounter,
			"open", e.open.len(),
		)
	}

	if t.end == e.target {
		// Target popped: the chain ending here is the result. Clearing
		// the open set flips SearchEnded.
		e.leaf = t
		e.open.clear()
		e.stepCounter++

		return true, nil
	}

	e.propagate(t)
	e.closed[t.end] = t
	e.closedOrder = append(e.closedOrder, t)
	e.stepCounter++

	return e.open.len() > 0, nil
}

// propagate extends t along every traversable outgoing arc, applying the
// discard/reopen rules against the closed and open sets.
func (e *AStar[S]) propagate(t *Track[S]) {
	for _, a := range t.end.OutgoingArcs() {
		if !a.Passable() || !a.EndNode().Passable() {
			continue
		}
		succ := t.extend(a)

		// An already-expanded track to the same node at equal-or-lower
		// cost makes the successor useless.
		if ct, ok := e.closed[succ.end]; ok && ct.cost <= succ.cost {
			continue
		}
		// Likewise a cheaper-or-equal frontier entry.
		if it, ok := e.open.lookup(succ.end); ok && it.track.cost <= succ.cost {
			continue
		}

		// The successor supersedes whatever either set held for its node.
		delete(e.closed, succ.end)
		if it, ok := e.open.lookup(succ.end); ok {
			e.open.remove(it)
		}
		e.open.push(succ, e.evaluate(succ))
	}
}

// evaluate computes the frontier ordering key for t.
func (e *AStar[S]) evaluate(t *Track[S]) float64 {
	return e.balance*t.cost + (1-e.balance)*e.heuristic(t.end, e.target)
}

// Initialized reports whether Initialize has run.
func (e *AStar[S]) Initialized() bool {
	return e.stepCounter >= 0
}

// SearchStarted reports whether at least one step has run.
func (e *AStar[S]) SearchStarted() bool {
	return e.stepCounter > 0
}

// SearchEnded reports whether the search has started and the open set is
// exhausted (target found or proven unreachable).
func (e *AStar[S]) SearchEnded() bool {
	return e.SearchStarted() && e.open.len() == 0
}

// PathFound reports whether the last search reached the target.
func (e *AStar[S]) PathFound() bool {
	return e.leaf != nil
}

// StepCount returns −1 before Initialize, 0 right after, and the number
// of completed expansions afterwards.
func (e *AStar[S]) StepCount() int {
	return e.stepCounter
}

// PathByNodes returns the found path as a start→end node sequence, or
// nil when no path exists. Returns ErrSearchNotEnded while the search is
// still in progress.
func (e *AStar[S]) PathByNodes() ([]*core.Node[S], error) {
	if !e.SearchEnded() {
		return nil, ErrSearchNotEnded
	}
	if e.leaf == nil {
		return nil, nil
	}

	return e.leaf.nodes(), nil
}

// PathByArcs returns the found path as the sequence of traversed arcs,
// or nil when no path exists. Returns ErrSearchNotEnded while the search
// is still in progress.
func (e *AStar[S]) PathByArcs() ([]*core.Arc[S], error) {
	if !e.SearchEnded() {
		return nil, ErrSearchNotEnded
	}
	if e.leaf == nil {
		return nil, nil
	}
	out := make([]*core.Arc[S], e.leaf.arcsVisited)
	for t, i := e.leaf, e.leaf.arcsVisited-1; t.via != nil; t, i = t.prev, i-1 {
		out[i] = t.via
	}

	return out, nil
}

// PathByCoordinates returns the found path as a position sequence, or
// nil when no path exists. Returns ErrSearchNotEnded while the search is
// still in progress.
func (e *AStar[S]) PathByCoordinates() ([]geom.Point3D, error) {
	nodes, err := e.PathByNodes()
	if err != nil || nodes == nil {
		return nil, err
	}
	out := make([]geom.Point3D, len(nodes))
	for i, n := range nodes {
		out[i] = n.Position()
	}

	return out, nil
}

// ResultInformation returns the found path's arc count and total cost,
// or (−1, −1) when the search ended without a path. Returns
// ErrSearchNotEnded while the search is still in progress.
func (e *AStar[S]) ResultInformation() (int, float64, error) {
	if !e.SearchEnded() {
		return notFoundArcs, notFoundCost, ErrSearchNotEnded
	}
	if e.leaf == nil {
		return notFoundArcs, notFoundCost, nil
	}

	return e.leaf.arcsVisited, e.leaf.cost, nil
}

// OpenSnapshot returns the open set as node sequences, one per frontier
// track, in ascending evaluation order. Intended for debugging and
// visualization; the returned slices are detached from engine state.
func (e *AStar[S]) OpenSnapshot() [][]*core.Node[S] {
	items := e.open.snapshot()
	out := make([][]*core.Node[S], len(items))
	for i, it := range items {
		out[i] = it.track.nodes()
	}

	return out
}

// ClosedSnapshot returns the closed set as node sequences, one per
// expanded track, in expansion order. Tracks superseded by a reopening
// are omitted.
func (e *AStar[S]) ClosedSnapshot() [][]*core.Node[S] {
	out := make([][]*core.Node[S], 0, len(e.closedOrder))
	for _, t := range e.closedOrder {
		if e.closed[t.end] == t {
			out = append(out, t.nodes())
		}
	}

	return out
}
