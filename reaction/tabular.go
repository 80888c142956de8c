package reaction

import (
	"fmt"
	"math"

	"github.com/stellarlab/reacnet/nuclide"
)

// TablePoint is one sample of a tabulated rate: the coefficient Value at
// temperature T (Kelvin).
type TablePoint struct {
	T     float64
	Value float64
}

// TabularRate is a reaction whose coefficient is interpolated from a
// table instead of a fitted formula. Its Chapter is ChapterTabular, so
// network assembly orders it after every reaclib rate. Immutable after
// construction.
type TabularRate struct {
	reactants []nuclide.Nuclide
	products  []nuclide.Nuclide
	points    []TablePoint
	densExp   int
	prefactor float64
	fname     string
	str       string
}

// NewTabularRate constructs a tabulated rate. The table needs at least
// two points with strictly increasing temperatures (ErrBadTable
// otherwise); at least one reactant and one product are required.
func NewTabularRate(reactants, products []nuclide.Nuclide, points []TablePoint) (*TabularRate, error) {
	if len(reactants) == 0 || len(products) == 0 {
		return nil, fmt.Errorf("%w: reactants and products must be non-empty", ErrChapterShape)
	}
	if len(points) < 2 {
		return nil, ErrBadTable
	}
	for i := 1; i < len(points); i++ {
		if points[i].T <= points[i-1].T {
			return nil, fmt.Errorf("%w: T[%d]=%g after T[%d]=%g",
				ErrBadTable, i, points[i].T, i-1, points[i-1].T)
		}
	}

	return &TabularRate{
		reactants: append([]nuclide.Nuclide(nil), reactants...),
		products:  append([]nuclide.Nuclide(nil), products...),
		points:    append([]TablePoint(nil), points...),
		densExp:   len(reactants) - 1,
		prefactor: statisticalPrefactor(reactants),
		fname:     fnameOf(reactants, products),
		str:       stringOf(reactants, products),
	}, nil
}

// Reactants returns a copy of the consumed species in order.
func (r *TabularRate) Reactants() []nuclide.Nuclide {
	return append([]nuclide.Nuclide(nil), r.reactants...)
}

// Products returns a copy of the produced species in order.
func (r *TabularRate) Products() []nuclide.Nuclide {
	return append([]nuclide.Nuclide(nil), r.products...)
}

// Chapter returns ChapterTabular.
func (r *TabularRate) Chapter() Chapter { return ChapterTabular }

// DensExp returns len(reactants)-1.
func (r *TabularRate) DensExp() int { return r.densExp }

// Prefactor returns the identical-particle statistical factor.
func (r *TabularRate) Prefactor() float64 { return r.prefactor }

// Fname returns the canonical unique identifier.
func (r *TabularRate) Fname() string { return r.fname }

// String returns the "r1 + r2 --> p1" display form.
func (r *TabularRate) String() string { return r.str }

// Eval returns the interpolated coefficient at temperature T (Kelvin).
// Below the first grid point the first value is returned; above the last,
// the last value. Between points the value is log-log interpolated when
// both bracketing values are positive, linearly otherwise.
// Complexity: O(log len(points)) via bisection.
func (r *TabularRate) Eval(T float64) float64 {
	pts := r.points
	if T <= pts[0].T {
		return pts[0].Value
	}
	if T >= pts[len(pts)-1].T {
		return pts[len(pts)-1].Value
	}
	lo, hi := 0, len(pts)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if pts[mid].T <= T {
			lo = mid
		} else {
			hi = mid
		}
	}
	p0, p1 := pts[lo], pts[hi]
	if p0.Value > 0 && p1.Value > 0 {
		frac := (math.Log10(T) - math.Log10(p0.T)) / (math.Log10(p1.T) - math.Log10(p0.T))

		return math.Pow(10, math.Log10(p0.Value)+frac*(math.Log10(p1.Value)-math.Log10(p0.Value)))
	}
	frac := (T - p0.T) / (p1.T - p0.T)

	return p0.Value + frac*(p1.Value-p0.Value)
}
