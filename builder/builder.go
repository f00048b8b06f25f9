package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/geom"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewNodes indicates a fixture was requested with fewer nodes
	// than its shape needs.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrBadSpacing indicates a non-positive, NaN, or infinite spacing.
	ErrBadSpacing = errors.New("builder: spacing must be positive and finite")

	// ErrBadExtent indicates a lattice dimension below one.
	ErrBadExtent = errors.New("builder: lattice extent must be at least 1")
)

// minLineNodes is the smallest line that still contains an arc.
const minLineNodes = 2

// checkSpacing validates a spacing argument shared by the fixtures.
func checkSpacing(spacing float64) error {
	if spacing <= 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return fmt.Errorf("%w: %g", ErrBadSpacing, spacing)
	}

	return nil
}

// PathLine builds n nodes along the X axis, spaced evenly, joined by
// bidirectional unit-weight arcs between consecutive nodes. Node i sits
// at (i×spacing, 0, 0) and carries payload i.
func PathLine(n int, spacing float64) (*core.Graph[int], error) {
	if n < minLineNodes {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrTooFewNodes, minLineNodes, n)
	}
	if err := checkSpacing(spacing); err != nil {
		return nil, err
	}

	g := core.NewGraph[int]()
	nodes := make([]*core.Node[int], n)
	for i := range nodes {
		nodes[i] = core.NewNode(geom.NewPoint3D(float64(i)*spacing, 0, 0), core.WithPayload(i))
		g.AddNode(nodes[i])
	}
	for i := 0; i+1 < n; i++ {
		if _, _, err := g.AddBidirectional(nodes[i], nodes[i+1], 1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid3D builds an nx×ny×nz lattice with the given spacing, joined by
// bidirectional unit-weight arcs along the six axis directions. Nodes are
// created in x-fastest order; node (ix, iy, iz) carries payload
// ix + iy*nx + iz*nx*ny and sits at (ix, iy, iz) × spacing.
func Grid3D(nx, ny, nz int, spacing float64) (*core.Graph[int], error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("%w: %d×%d×%d", ErrBadExtent, nx, ny, nz)
	}
	if nx*ny*nz < minLineNodes {
		return nil, fmt.Errorf("%w: need at least %d lattice points", ErrTooFewNodes, minLineNodes)
	}
	if err := checkSpacing(spacing); err != nil {
		return nil, err
	}

	g := core.NewGraph[int]()
	nodes := make([]*core.Node[int], nx*ny*nz)
	idx := func(ix, iy, iz int) int { return ix + iy*nx + iz*nx*ny }
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				i := idx(ix, iy, iz)
				pos := geom.NewPoint3D(float64(ix)*spacing, float64(iy)*spacing, float64(iz)*spacing)
				nodes[i] = core.NewNode(pos, core.WithPayload(i))
				g.AddNode(nodes[i])
			}
		}
	}
	// one bidirectional pair per positive-direction lattice edge
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				i := idx(ix, iy, iz)
				if ix+1 < nx {
					if _, _, err := g.AddBidirectional(nodes[i], nodes[idx(ix+1, iy, iz)], 1); err != nil {
						return nil, err
					}
				}
				if iy+1 < ny {
					if _, _, err := g.AddBidirectional(nodes[i], nodes[idx(ix, iy+1, iz)], 1); err != nil {
						return nil, err
					}
				}
				if iz+1 < nz {
					if _, _, err := g.AddBidirectional(nodes[i], nodes[idx(ix, iy, iz+1)], 1); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return g, nil
}

// Complete builds one node per position and a bidirectional unit-weight
// arc pair between every distinct pair, in index order. Node i carries
// payload i.
func Complete(positions []geom.Point3D) (*core.Graph[int], error) {
	if len(positions) < minLineNodes {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrTooFewNodes, minLineNodes, len(positions))
	}

	g := core.NewGraph[int]()
	nodes := make([]*core.Node[int], len(positions))
	for i, p := range positions {
		nodes[i] = core.NewNode(p, core.WithPayload(i))
		g.AddNode(nodes[i])
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if _, _, err := g.AddBidirectional(nodes[i], nodes[j], 1); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
