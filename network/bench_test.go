package network_test

import (
	"fmt"
	"testing"

	"github.com/stellarlab/reacnet/network"
	"github.com/stellarlab/reacnet/nuclide"
	"github.com/stellarlab/reacnet/reaction"
)

// BenchmarkEvaluate measures a full rate-vector evaluation over an
// alpha-chain-sized network.
func BenchmarkEvaluate(b *testing.B) {
	chain := []string{"c12", "o16", "ne20", "mg24", "si28", "s32", "ar36", "ca40"}
	rates := make([]reaction.Rate, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		rates = append(rates, stub(4, []string{"he4", chain[i]}, []string{chain[i+1]}))
	}
	net, err := network.NewCollection(network.WithRates(rates...))
	if err != nil {
		b.Fatalf("NewCollection: %v", err)
	}
	comp, err := network.NewComposition(net.Nuclei())
	if err != nil {
		b.Fatalf("NewComposition: %v", err)
	}
	comp.SetAll(0.1)
	if err = comp.Normalize(); err != nil {
		b.Fatalf("Normalize: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = net.Evaluate(1e4, 3e9, comp); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNewCollection measures assembly cost as networks grow.
func BenchmarkNewCollection(b *testing.B) {
	for _, size := range []int{8, 64} {
		b.Run(fmt.Sprintf("rates_%d", size), func(b *testing.B) {
			rates := make([]reaction.Rate, size)
			for i := range rates {
				from := nuclide.MustParse(fmt.Sprintf("fe%d", 52+i%9))
				rates[i] = &stubRate{
					chapter:   4,
					reactants: []nuclide.Nuclide{nuclide.MustParse("he4"), from},
					products:  []nuclide.Nuclide{nuclide.MustParse("ni56")},
					densExp:   1,
					prefactor: 1,
					coeff:     1,
					fname:     fmt.Sprintf("r%d", i),
					str:       fmt.Sprintf("r%d", i),
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := network.NewCollection(network.WithRates(rates...)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
