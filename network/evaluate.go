package network

import (
	"fmt"
	"math"
)

// Evaluate computes the instantaneous value of every rate at density rho
// (g/cm^3) and temperature T (K) for the given composition:
//
//	value[i] = prefactor · rho^densExp · Eval(T) · ∏ molar(reactant)
//
// over each rate's reactants with full multiplicity. Indices align with
// Rates(). The composition must cover every reactant species
// (ErrMissingNuclide otherwise); molar fractions are read fresh, never
// cached. A zero density exponent contributes exactly 1, and a zero
// molar fraction drives the value to exactly 0.
// Complexity: O(R·len(reactants)).
func (c *Collection) Evaluate(rho, T float64, comp *Composition) ([]float64, error) {
	if comp == nil {
		return nil, ErrNilComposition
	}
	ys := comp.Molar()

	vals := make([]float64, len(c.rates))
	for i, r := range c.rates {
		v := r.Prefactor() * math.Pow(rho, float64(r.DensExp())) * r.Eval(T)
		for _, q := range r.Reactants() {
			y, ok := ys[q]
			if !ok {
				return nil, fmt.Errorf("%w: %s (rate %s)", ErrMissingNuclide, q.Name(), r.Fname())
			}
			v *= y
		}
		vals[i] = v
	}

	return vals, nil
}
