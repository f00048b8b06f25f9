// Package astar: sentinel errors, the heuristic contract, and engine
// configuration options.
package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for the A* engine.
var (
	// ErrNilGraph indicates the engine was constructed over a nil graph.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilNode indicates a nil start or end node was supplied.
	ErrNilNode = errors.New("astar: node is nil")

	// ErrBalanceRange indicates a Dijkstra/heuristic balance outside [0,1].
	ErrBalanceRange = errors.New("astar: balance must be in [0,1]")

	// ErrNotInitialized indicates NextStep was called before Initialize.
	ErrNotInitialized = errors.New("astar: search not initialized")

	// ErrSearchNotEnded indicates a result accessor was called while the
	// search was still in progress (or never started).
	ErrSearchNotEnded = errors.New("astar: search has not ended")
)

// Balance endpoints. The balance interpolates the evaluation between the
// heuristic term and the accumulated cost term.
const (
	// BalanceGreedy orders the frontier by heuristic only (best-first).
	BalanceGreedy = 0.0

	// BalanceClassic is the default: cost and heuristic weighted equally,
	// i.e. the classical f = g + h scaled by one half.
	BalanceClassic = 0.5

	// BalanceDijkstra orders the frontier by accumulated cost only.
	BalanceDijkstra = 1.0
)

// Heuristic estimates the remaining cost from n to target. It must be
// non-negative for the search to behave; it should be fast, as it runs
// once per generated successor.
type Heuristic[S any] func(n, target *core.Node[S]) float64

// Euclidean is the default heuristic: straight-line distance.
func Euclidean[S any](n, target *core.Node[S]) float64 {
	return core.EuclideanDistance(n, target)
}

// Manhattan is the L1 distance heuristic.
func Manhattan[S any](n, target *core.Node[S]) float64 {
	return core.ManhattanDistance(n, target)
}

// Chebyshev is the L∞ distance heuristic.
func Chebyshev[S any](n, target *core.Node[S]) float64 {
	return core.ChebyshevDistance(n, target)
}

// Options holds the engine's per-search parameters.
//
// Heuristic - remaining-cost estimate, Euclidean by default.
// Balance   - Dijkstra/heuristic balance in [0,1], 0.5 by default.
// Logger    - optional expansion tracer; nil disables logging.
type Options[S any] struct {
	Heuristic Heuristic[S]
	Balance   float64
	Logger    *log.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures the engine via functional arguments. An invalid value
// (e.g. out-of-range balance) is recorded internally and surfaced as a
// sentinel when New runs.
type Option[S any] func(*Options[S])

// DefaultOptions returns Options with the Euclidean heuristic, the
// classical 0.5 balance, and no logger.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{
		Heuristic: Euclidean[S],
		Balance:   BalanceClassic,
	}
}

// WithHeuristic replaces the heuristic. Nil is ignored.
func WithHeuristic[S any](h Heuristic[S]) Option[S] {
	return func(o *Options[S]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithBalance sets the Dijkstra/heuristic balance:
//
//	1.0: pure Dijkstra (cost only)
//	0.0: pure greedy best-first (heuristic only)
//	0.5: classical A* (default)
//
// Values outside [0,1] (or NaN) cause New to fail with ErrBalanceRange.
func WithBalance[S any](b float64) Option[S] {
	return func(o *Options[S]) {
		if math.IsNaN(b) || b < 0 || b > 1 {
			o.err = fmt.Errorf("%w: %g", ErrBalanceRange, b)

			return
		}
		o.Balance = b
	}
}

// WithLogger attaches a logger; each expansion is then traced at Debug
// level. Nil is ignored (logging stays off).
func WithLogger[S any](l *log.Logger) Option[S] {
	return func(o *Options[S]) {
		if l != nil {
			o.Logger = l
		}
	}
}
