// Package spatial accelerates closest-node queries over a core.Graph
// with a 3D R-tree (github.com/dhconnelly/rtreego).
//
// core.Graph.ClosestNode is a deliberate linear scan; for large graphs
// with many probes, build an Index once and query it instead:
//
//	idx, err := spatial.NewIndex(g)
//	...
//	n, dist, err := idx.NearestNode(probe)
//
// The index is a snapshot: it does not observe later graph mutation or
// node movement. Keep it current with Insert/Remove as nodes join and
// leave the graph, call Update after moving a node, or Rebuild to resync
// wholesale. An index is not safe for concurrent mutation.
//
// Errors (sentinel):
//
//	ErrNilGraph   - index requested over a nil graph.
//	ErrNilNode    - nil node passed to Insert/Update.
//	ErrEmptyIndex - nearest-node query against an empty index.
//	ErrBadBox     - box query with min exceeding max on some axis.
package spatial
