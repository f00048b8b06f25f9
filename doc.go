// Package wayfind is your in-memory toolkit for building, querying, and
// searching directed graphs embedded in 3D Euclidean space.
//
// 🚀 What is wayfind?
//
//	A modern, deterministic pathfinding library that brings together:
//		• Geometric primitives: 3D points, distances, line projection
//		• Core primitives: spatial nodes & directed arcs with passability,
//		  cached geometric lengths, and adjacency bookkeeping
//		• A* search: one-shot or step-by-step, with a tunable balance
//		  between pure Dijkstra and pure greedy best-first behavior
//		• Spatial acceleration: R-tree indexing for closest-node queries
//		• Geographic ingestion: lon/lat tracks projected into local 3D graphs
//		• Fixtures: deterministic path, grid, and complete graph builders
//
// ✨ Why choose wayfind?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always yield identical paths
//   - Inspectable – drive the search one expansion at a time and look
//     inside the open and closed frontiers
//   - Extensible – plug in your own heuristic, carry any payload type
//
// Everything is organized under six subpackages:
//
//	geom/     — Point3D, Euclidean/Manhattan/Chebyshev distances, projection
//	core/     — Node, Arc, Graph types & spatial queries
//	astar/    — the A* engine, Track records, heuristics, stepwise control
//	spatial/  — R-tree index over a core.Graph for fast nearest-node lookup
//	geograph/ — orb-based geographic track ingestion
//	builder/  — deterministic spatial graph fixtures for tests & benchmarks
//
// Quick ASCII example:
//
//	    A───B
//	        │
//	    C───D
//
//	four nodes in a plane; A* walks A→B→D→C along passable arcs.
//
// Dive into each package's doc.go for full examples and the exact
// algorithmic contracts.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
