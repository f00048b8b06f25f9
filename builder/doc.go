// Package builder provides deterministic spatial graph fixtures: straight
// lines, 3D lattices, and complete graphs over explicit positions. The
// same arguments always produce an identical graph — identical node
// order, arc order, and geometry — which makes the fixtures suitable as
// test and benchmark anchors across the module.
//
// Every node carries its construction index as payload, so tests can name
// nodes without holding on to the returned slices.
//
// Errors (sentinel):
//
//	ErrTooFewNodes - a fixture was requested with fewer nodes than its shape needs.
//	ErrBadSpacing  - a non-positive, NaN, or infinite spacing was supplied.
//	ErrBadExtent   - a lattice dimension below one was supplied.
package builder
