// File: network/test_helpers_test.go
// Shared fixtures for the network test suite: a stub implementation of
// reaction.Rate with directly controllable attributes, so assembly and
// evaluation invariants can be pinned without real reaclib fits.
package network_test

import (
	"github.com/stellarlab/reacnet/nuclide"
	"github.com/stellarlab/reacnet/reaction"
)

// stubRate is a fully scripted reaction.Rate.
type stubRate struct {
	reactants []nuclide.Nuclide
	products  []nuclide.Nuclide
	chapter   reaction.Chapter
	densExp   int
	prefactor float64
	fname     string
	str       string
	coeff     float64 // Eval(T) returns coeff for any T
}

func (s *stubRate) Reactants() []nuclide.Nuclide { return append([]nuclide.Nuclide(nil), s.reactants...) }
func (s *stubRate) Products() []nuclide.Nuclide  { return append([]nuclide.Nuclide(nil), s.products...) }
func (s *stubRate) Chapter() reaction.Chapter    { return s.chapter }
func (s *stubRate) DensExp() int                 { return s.densExp }
func (s *stubRate) Prefactor() float64           { return s.prefactor }
func (s *stubRate) Fname() string                { return s.fname }
func (s *stubRate) String() string               { return s.str }
func (s *stubRate) Eval(_ float64) float64       { return s.coeff }

// stub builds a stubRate from species names with prefactor 1, a unit
// coefficient, densExp = len(reactants)-1, and the canonical fname/string
// forms.
func stub(ch reaction.Chapter, reactants, products []string) *stubRate {
	s := &stubRate{chapter: ch, prefactor: 1, coeff: 1}
	for _, name := range reactants {
		s.reactants = append(s.reactants, nuclide.MustParse(name))
	}
	for _, name := range products {
		s.products = append(s.products, nuclide.MustParse(name))
	}
	s.densExp = len(s.reactants) - 1
	for i, name := range reactants {
		if i > 0 {
			s.fname += "_"
			s.str += " + "
		}
		s.fname += nuclide.MustParse(name).Name()
		s.str += nuclide.MustParse(name).Name()
	}
	s.fname += "__"
	s.str += " --> "
	for i, name := range products {
		if i > 0 {
			s.fname += "_"
			s.str += " + "
		}
		s.fname += nuclide.MustParse(name).Name()
		s.str += nuclide.MustParse(name).Name()
	}

	return s
}
