package reaction

import (
	"errors"
	"strings"

	"github.com/stellarlab/reacnet/nuclide"
)

// Sentinel errors for rate construction and library loading.
var (
	// ErrNilRate indicates a nil Rate was supplied where a rate value is
	// required.
	ErrNilRate = errors.New("reaction: nil rate")

	// ErrChapterShape indicates reactant/product counts that do not match
	// the declared chapter.
	ErrChapterShape = errors.New("reaction: species counts do not match chapter")

	// ErrNoSets indicates a reaclib rate constructed without coefficient sets.
	ErrNoSets = errors.New("reaction: reaclib rate needs at least one coefficient set")

	// ErrBadTable indicates a tabular rate with fewer than two points or a
	// non-increasing temperature grid.
	ErrBadTable = errors.New("reaction: tabular rate needs an increasing grid of at least two points")

	// ErrLoad indicates a rate-library file failed to load; it always wraps
	// the underlying cause.
	ErrLoad = errors.New("reaction: cannot load rate library")

	// ErrBadFormat indicates malformed ReacLib text inside a library file.
	ErrBadFormat = errors.New("reaction: malformed reaclib data")
)

// Chapter classifies a rate's numerical representation. Values 1–11 are
// the ReacLib reactant→product shape classes; ChapterTabular marks rates
// interpolated from a table. Any other value is unknown and rejected at
// network assembly time.
type Chapter int

// ChapterTabular is the sentinel chapter of table-interpolated rates.
const ChapterTabular Chapter = -1

// chapterShape maps a numeric chapter to its (reactant, product) counts.
var chapterShape = map[Chapter][2]int{
	1: {1, 1}, 2: {1, 2}, 3: {1, 3}, 4: {2, 1}, 5: {2, 2}, 6: {2, 3},
	7: {2, 4}, 8: {3, 1}, 9: {3, 2}, 10: {4, 2}, 11: {1, 4},
}

// Tabular reports whether c is the tabulated-representation sentinel.
func (c Chapter) Tabular() bool { return c == ChapterTabular }

// Known reports whether c is a recognized representation: a numeric
// ReacLib chapter or the tabular sentinel.
func (c Chapter) Known() bool {
	if c.Tabular() {
		return true
	}
	_, ok := chapterShape[c]

	return ok
}

// Rate describes one nuclear reaction. Implementations are immutable
// after construction; all accessors are safe for concurrent use.
//
// Reactants and Products are ordered and non-unique: a species consumed
// twice appears twice, and evaluation honors that multiplicity.
type Rate interface {
	// Reactants returns the consumed species in declaration order.
	Reactants() []nuclide.Nuclide
	// Products returns the produced species in declaration order.
	Products() []nuclide.Nuclide
	// Chapter returns the representation class.
	Chapter() Chapter
	// DensExp returns the density exponent, len(reactants)-1.
	DensExp() int
	// Prefactor returns the identical-particle statistical factor.
	Prefactor() float64
	// Fname returns the unique "r1_r2__p1_p2" identifier.
	Fname() string
	// String returns the human-readable "r1 + r2 --> p1 + p2" form.
	String() string
	// Eval returns the temperature-dependent rate coefficient at T Kelvin.
	Eval(T float64) float64
}

// statisticalPrefactor returns 1/∏ mᵢ! over the multiplicities of the
// reactant species: 1 for distinct reactants, 1/2 for a pair, 1/6 for
// triple-alpha.
func statisticalPrefactor(reactants []nuclide.Nuclide) float64 {
	counts := make(map[nuclide.Nuclide]int, len(reactants))
	for _, r := range reactants {
		counts[r]++
	}
	denom := 1.0
	for _, m := range counts {
		for k := 2; k <= m; k++ {
			denom *= float64(k)
		}
	}

	return 1.0 / denom
}

// fnameOf builds the canonical unique identifier of a reaction.
func fnameOf(reactants, products []nuclide.Nuclide) string {
	return joinNames(reactants, "_") + "__" + joinNames(products, "_")
}

// stringOf builds the display form of a reaction.
func stringOf(reactants, products []nuclide.Nuclide) string {
	return joinNames(reactants, " + ") + " --> " + joinNames(products, " + ")
}

func joinNames(nucs []nuclide.Nuclide, sep string) string {
	names := make([]string, len(nucs))
	for i, nc := range nucs {
		names[i] = nc.Name()
	}

	return strings.Join(names, sep)
}

// sameSpecies reports whether two ordered species sequences are identical.
func sameSpecies(a, b []nuclide.Nuclide) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
