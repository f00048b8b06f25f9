// Package astar implements A* shortest-path search over a core.Graph,
// with a tunable balance between pure Dijkstra and pure greedy
// best-first behavior, and a step-by-step control surface for callers
// that want to watch the frontier evolve.
//
// Overview:
//
//   - The engine maintains an open set of Track records (path prefixes
//     from the start node), ordered by evaluation, and a closed set of
//     already-expanded tracks indexed by end node.
//   - Each step pops the minimum-evaluation track, stops if it ends at
//     the target, and otherwise extends it along every passable outgoing
//     arc whose destination is passable, applying the classical
//     discard/reopen rules against both sets.
//   - evaluation(t) = balance × cost(t) + (1 − balance) × h(end(t), target)
//     with balance ∈ [0,1]: 1 is pure Dijkstra, 0 is pure greedy
//     best-first, and 0.5 is the classical f = g + h scaled by one half
//     (order-preserving).
//
// Optimality note: the search stops as soon as the target is popped from
// the open set. That yields the minimum-cost path only while the scaled
// evaluation stays monotone along paths — with balance ≠ 1 this requires
// the heuristic to be consistent relative to the scaled costs. The
// engine does not enforce this; callers picking exotic balances are on
// their own.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — the open set is a binary heap with an
//     end-node index map, so pop, membership, and reopen are O(log V),
//     O(1), and O(log V) respectively.
//   - Space: O(V + E) for the frontier, the closed map, and the Track
//     back-chains.
//
// One-shot vs. stepwise:
//
//	SearchPath(start, end) holds the graph's write lock for the whole
//	run, so concurrent catalog mutation blocks until it finishes. The
//	stepwise pair Initialize + NextStep takes no lock: callers driving
//	steps across goroutines must exclude mutators themselves. There is
//	no cancel method — stop calling NextStep and discard the engine.
//
// Determinism: equal-evaluation ties in the open set resolve by insertion
// order, so identical inputs always expand in the same order and return
// the same path.
//
// Errors (sentinel):
//
//	ErrNilGraph       - engine constructed over a nil graph.
//	ErrNilNode        - nil start or end node.
//	ErrBalanceRange   - balance outside [0,1].
//	ErrNotInitialized - NextStep before Initialize.
//	ErrSearchNotEnded - result requested before the search ended.
//
// A failed search is NOT an error: SearchPath returns false, the path
// accessors return nil, and ResultInformation returns (-1, -1).
//
// Example usage:
//
//	eng, err := astar.New(g, astar.WithBalance[string](0.5)) // g is a *core.Graph[string]
//	if err != nil { ... }
//	found, err := eng.SearchPath(start, end)
//	if err != nil { ... }
//	if found {
//	    nodes, _ := eng.PathByNodes()
//	    hops, cost, _ := eng.ResultInformation()
//	    fmt.Println(hops, cost, nodes)
//	}
package astar
