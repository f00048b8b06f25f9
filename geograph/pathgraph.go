package geograph

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for graph construction.
var (
	// ErrShortLine indicates a line string with fewer than two points.
	ErrShortLine = errors.New("geograph: line needs at least two points")

	// ErrAltitudeMismatch indicates the altitude count differs from the
	// point count.
	ErrAltitudeMismatch = errors.New("geograph: altitude count must match point count")

	// ErrBadAltitude indicates a NaN or infinite altitude was supplied.
	ErrBadAltitude = errors.New("geograph: altitude must be finite")
)

// minLinePoints is the smallest line string that still contains an arc.
const minLinePoints = 2

// Options configures PathGraph.
//
// Altitudes         - per-point altitudes in meters; empty means sea level.
// GreatCircleWeight - scale arc weights so Cost() equals the haversine
//
//	distance between the endpoints.
type Options struct {
	Altitudes         []float64
	GreatCircleWeight bool
}

// Option configures PathGraph via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with sea-level altitudes and planar
// weights.
func DefaultOptions() Options {
	return Options{}
}

// WithAltitudes supplies one altitude (meters) per line point.
func WithAltitudes(alts []float64) Option {
	return func(o *Options) { o.Altitudes = alts }
}

// WithGreatCircleWeights scales each arc's weight so its Cost() equals
// the great-circle (haversine) distance between its endpoints instead of
// the tangent-plane approximation.
func WithGreatCircleWeights() Option {
	return func(o *Options) { o.GreatCircleWeight = true }
}

// PathGraph projects line into a local frame anchored at its first point
// and builds a bidirectional chain graph over it: one node per point
// (payload: the source orb.Point), one arc pair per consecutive pair.
// Returns the graph and the projector used, for mapping results back.
func PathGraph(line orb.LineString, opts ...Option) (*core.Graph[orb.Point], *Projector, error) {
	if len(line) < minLinePoints {
		return nil, nil, fmt.Errorf("%w: got %d", ErrShortLine, len(line))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.Altitudes) != 0 && len(o.Altitudes) != len(line) {
		return nil, nil, fmt.Errorf("%w: %d altitudes for %d points", ErrAltitudeMismatch, len(o.Altitudes), len(line))
	}
	for i, alt := range o.Altitudes {
		if math.IsNaN(alt) || math.IsInf(alt, 0) {
			return nil, nil, fmt.Errorf("%w: %g at index %d", ErrBadAltitude, alt, i)
		}
	}

	pr := NewProjector(line[0])
	g := core.NewGraph[orb.Point]()
	nodes := make([]*core.Node[orb.Point], len(line))
	for i, p := range line {
		alt := 0.0
		if len(o.Altitudes) != 0 {
			alt = o.Altitudes[i]
		}
		nodes[i] = core.NewNode(pr.Project(p, alt), core.WithPayload(p))
		g.AddNode(nodes[i])
	}

	for i := 0; i+1 < len(nodes); i++ {
		w := 1.0
		if o.GreatCircleWeight {
			if planar := core.EuclideanDistance(nodes[i], nodes[i+1]); planar > 0 {
				w = geo.Distance(line[i], line[i+1]) / planar
			}
		}
		if _, _, err := g.AddBidirectional(nodes[i], nodes[i+1], w); err != nil {
			return nil, nil, err
		}
	}

	return g, pr, nil
}
