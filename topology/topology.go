package topology

import (
	"math"

	"github.com/stellarlab/reacnet/network"
	"github.com/stellarlab/reacnet/nuclide"
)

// catalysts are the light species hidden from the node set unless a rate
// consumes them with multiplicity above one.
var catalysts = map[string]struct{}{"p": {}, "n": {}, "he4": {}}

// Build derives the node and edge sets of a reaction network. With
// opts.Comp set, the network is evaluated at (opts.Rho, opts.T) and each
// edge weighted by log10 of its rate value; evaluation errors propagate
// unchanged. See the package documentation for the shape rules.
// Complexity: O(R·S + E).
func Build(c *network.Collection, opts Options) (*Topology, error) {
	if c == nil {
		return nil, ErrNilCollection
	}

	var vals []float64
	if opts.Comp != nil {
		var err error
		if vals, err = c.Evaluate(opts.Rho, opts.T, opts.Comp); err != nil {
			return nil, err
		}
	}

	rates := c.Rates()
	included := make(map[nuclide.Nuclide]bool)
	topo := &Topology{}
	for _, nc := range c.Nuclei() {
		if !displayed(nc, c) {
			continue
		}
		included[nc] = true
		topo.Nodes = append(topo.Nodes, Node{
			Nuc:   nc,
			X:     float64(nc.N()),
			Y:     float64(nc.Z()),
			Label: nc.Pretty(),
		})
	}

	for _, node := range topo.Nodes {
		for _, ri := range c.Consumed(node.Nuc) {
			w := NeutralWeight
			if vals != nil {
				if v := vals[ri]; v > 0 {
					w = math.Log10(v)
				} else {
					w = MinLogWeight
				}
			}
			for _, p := range rates[ri].Products() {
				if !included[p] {
					continue
				}
				topo.Edges = append(topo.Edges, Edge{
					From:      node.Nuc,
					To:        p,
					RateIndex: ri,
					Weight:    w,
				})
			}
		}
	}

	return topo, nil
}

// displayed reports whether nc belongs to the node set: any non-catalyst
// species, or a catalyst some rate consumes more than once.
func displayed(nc nuclide.Nuclide, c *network.Collection) bool {
	if _, light := catalysts[nc.Name()]; !light {
		return true
	}
	for _, ri := range c.Consumed(nc) {
		count := 0
		for _, q := range c.Rate(ri).Reactants() {
			if q == nc {
				count++
			}
		}
		if count > 1 {
			return true
		}
	}

	return false
}

// WeightRange returns the minimum and maximum edge weights, the range a
// renderer needs for a shared colorbar. ok is false when the topology
// has no edges.
func (t *Topology) WeightRange() (lo, hi float64, ok bool) {
	if len(t.Edges) == 0 {
		return 0, 0, false
	}
	lo, hi = t.Edges[0].Weight, t.Edges[0].Weight
	for _, e := range t.Edges[1:] {
		if e.Weight < lo {
			lo = e.Weight
		}
		if e.Weight > hi {
			hi = e.Weight
		}
	}

	return lo, hi, true
}
