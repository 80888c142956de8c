package topology

import (
	"errors"

	"github.com/stellarlab/reacnet/network"
	"github.com/stellarlab/reacnet/nuclide"
)

// Sentinel errors for topology construction.
var (
	// ErrNilCollection indicates Build was invoked without a network.
	ErrNilCollection = errors.New("topology: nil collection")
)

// Weight constants shared with renderers.
const (
	// NeutralWeight is the edge weight used when no thermodynamic state
	// was supplied.
	NeutralWeight = 0.5

	// MinLogWeight substitutes log10 of an exactly-zero rate value:
	// roughly the smallest representable base-10 exponent, marking the
	// edge as "coldest" on a shared color scale.
	MinLogWeight = -308.0
)

// Node is one displayed species with its layout position and label.
// X/Y follow the customary chart-of-nuclides layout: neutron number
// against proton number.
type Node struct {
	Nuc   nuclide.Nuclide
	X, Y  float64
	Label string
}

// Edge is one directed link: species From flows into species To through
// the rate at RateIndex of the collection's partitioned sequence.
// Parallel edges between the same pair are distinct entries.
type Edge struct {
	From, To  nuclide.Nuclide
	RateIndex int
	Weight    float64
}

// Topology is the complete renderer-facing description: the node set in
// species order and every directed edge with its weight.
type Topology struct {
	Nodes []Node
	Edges []Edge
}

// Options configures Build. A nil Comp leaves the network unevaluated
// and every edge at NeutralWeight; otherwise Rho (g/cm^3) and T (K)
// select the thermodynamic state for edge weighting.
type Options struct {
	Rho, T float64
	Comp   *network.Composition
}
