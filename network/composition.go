package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stellarlab/reacnet/nuclide"
)

// Composition holds the mass fraction of every species in a network.
// The species set is fixed at construction; setters mutate values in
// place and never add or remove keys. Values are not required to sum to
// one until Normalize is called.
type Composition struct {
	nuclei []nuclide.Nuclide // sorted, fixed
	x      map[nuclide.Nuclide]float64
}

// NewComposition builds a composition over the given species, each
// starting at the floor value (1e-16 unless WithFloor overrides it).
// Duplicates in nuclei collapse to one entry. An empty list returns
// ErrNoNuclides.
// Complexity: O(n log n).
func NewComposition(nuclei []nuclide.Nuclide, opts ...CompositionOption) (*Composition, error) {
	cfg := compositionConfig{floor: defaultFloor}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(nuclei) == 0 {
		return nil, ErrNoNuclides
	}

	x := make(map[nuclide.Nuclide]float64, len(nuclei))
	for _, nc := range nuclei {
		x[nc] = cfg.floor
	}
	keys := make([]nuclide.Nuclide, 0, len(x))
	for nc := range x {
		keys = append(keys, nc)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return &Composition{nuclei: keys, x: x}, nil
}

// Nuclides returns the species in (A, Z) order.
func (c *Composition) Nuclides() []nuclide.Nuclide {
	return append([]nuclide.Nuclide(nil), c.nuclei...)
}

// Get returns the mass fraction of nc and whether nc belongs to the
// composition.
func (c *Composition) Get(nc nuclide.Nuclide) (float64, bool) {
	v, ok := c.x[nc]

	return v, ok
}

// SetAll overwrites every mass fraction with x.
func (c *Composition) SetAll(x float64) {
	for nc := range c.x {
		c.x[nc] = x
	}
}

// SetNuc overwrites the mass fraction of the species named name and
// reports whether a match occurred; an unknown name leaves the
// composition untouched.
func (c *Composition) SetNuc(name string, x float64) bool {
	nc, err := nuclide.Parse(name)
	if err != nil {
		return false
	}
	if _, ok := c.x[nc]; !ok {
		return false
	}
	c.x[nc] = x

	return true
}

// SetSolarLike approximates a solar abundance: p at 0.70, he4 at 0.3-z,
// and z spread evenly over the remaining species, then normalizes.
// Requires at least three species (ErrTooFewNuclides) with both p and
// he4 present (ErrNoSolarAnchor); the composition is untouched on error.
func (c *Composition) SetSolarLike(z float64) error {
	if len(c.nuclei) < 3 {
		return ErrTooFewNuclides
	}
	p := nuclide.MustParse("p")
	he4 := nuclide.MustParse("he4")
	if _, ok := c.x[p]; !ok {
		return fmt.Errorf("%w: no p", ErrNoSolarAnchor)
	}
	if _, ok := c.x[he4]; !ok {
		return fmt.Errorf("%w: no he4", ErrNoSolarAnchor)
	}

	rem := z / float64(len(c.nuclei)-2)
	for nc := range c.x {
		switch nc {
		case p:
			c.x[nc] = 0.70
		case he4:
			c.x[nc] = 0.3 - z
		default:
			c.x[nc] = rem
		}
	}

	return c.Normalize()
}

// Normalize scales the mass fractions in place so they sum to one.
// Returns ErrZeroSum when the current sum is zero. Idempotent.
func (c *Composition) Normalize() error {
	var sum float64
	for _, v := range c.x {
		sum += v
	}
	if sum == 0 {
		return ErrZeroSum
	}
	for nc := range c.x {
		c.x[nc] /= sum
	}

	return nil
}

// Molar returns a fresh map of molar fractions, mass fraction divided by
// mass number A. Pure: the composition is not touched, and normalization
// is not required.
// Complexity: O(n).
func (c *Composition) Molar() map[nuclide.Nuclide]float64 {
	ys := make(map[nuclide.Nuclide]float64, len(c.x))
	for nc, v := range c.x {
		ys[nc] = v / float64(nc.A())
	}

	return ys
}

// String lists the mass fractions in species order.
func (c *Composition) String() string {
	var b strings.Builder
	for _, nc := range c.nuclei {
		fmt.Fprintf(&b, "  X(%s) : %v\n", nc.Name(), c.x[nc])
	}

	return b.String()
}
