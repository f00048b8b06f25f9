// Package core defines the central Graph, Node, and Arc types for directed
// graphs embedded in 3D Euclidean space, and provides the spatial queries
// (closest node, closest arc, bounding box) the rest of wayfind builds on.
//
// Overview:
//
//   - Node[S] is a spatial vertex: a geom.Point3D position, a passability
//     flag, ordered incoming/outgoing arc lists, and an opaque payload of
//     type S stored at construction and returned unchanged.
//   - Arc[S] is a directed edge between two nodes with a non-negative
//     weight (default 1), a lazily cached Euclidean length, and its own
//     passability flag. Cost() = weight × length is the scalar the search
//     consumes.
//   - Graph[S] owns ordered catalogs of nodes and arcs. It rejects
//     duplicate instances (by identity) and refuses arcs whose endpoints
//     are not members.
//
// Identity vs. geometry:
//
//	Library bookkeeping compares nodes and arcs by pointer identity.
//	Geometric equality is only ever expressed through geom.Point3D values
//	(two distinct nodes may share a position). ArcGoingTo / ArcComingFrom
//	match their argument by identity, never by position.
//
// Invariants maintained by this package:
//
//   - Adjacency symmetry: an arc from u to v appears in u's outgoing list
//     iff it appears in v's incoming list. NewArc wires both ends;
//     RemoveArc, RemoveNode, and Isolate unwire them together.
//   - Cached arc lengths are invalidated whenever either endpoint moves or
//     the weight changes, and recomputed on the next Length call.
//   - Setting a node impassable cascades to every incident arc; setting an
//     arc impassable does NOT propagate to its endpoints.
//
// Concurrency:
//
//	Graph catalog mutations and reads are guarded by an internal
//	sync.RWMutex; astar.SearchPath additionally holds the write lock for
//	the whole search so catalog mutation from another goroutine blocks
//	until the search ends. Direct Node/Arc field access (SetPosition,
//	SetPassable, SetWeight) is NOT synchronized — callers driving
//	mutation concurrently with a search must exclude it themselves.
//
// Errors:
//
//	ErrNilNode        - a nil node pointer was supplied.
//	ErrNilArc         - a nil arc pointer was supplied.
//	ErrNotMember      - an arc endpoint is not a member of the graph.
//	ErrNegativeWeight - an arc weight below zero was supplied.
//	ErrEmptyCollection - a bounding box was requested over no nodes.
//	ErrEmptyGraph     - a spatial query was issued against an empty graph.
package core
