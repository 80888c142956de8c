package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stellarlab/reacnet/nuclide"
	"github.com/stellarlab/reacnet/reaction"
)

// Collection is an assembled reaction network: the partitioned rate
// sequence plus every index derived from it. Immutable once built; all
// queries are safe for concurrent use.
type Collection struct {
	files []string
	rates []reaction.Rate // reaclib rates first, then tabular; source order within each class

	nuclei   []nuclide.Nuclide // sorted unique union of all reactants and products
	consumed map[nuclide.Nuclide][]int
	produced map[nuclide.Nuclide][]int

	reaclib []int // positions of numeric-chapter rates
	tabular []int // positions of tabular rates
}

// NewCollection assembles a network from any combination of rate files,
// explicit rates, and pre-built libraries. Sources union in that order,
// later sources appending their rates. Construction fails outright on a
// load error, a nil rate or library, or an unknown chapter; no partial
// collection is ever returned.
// Complexity: O(F·load + R·S) for R rates over S unique species.
func NewCollection(opts ...CollectionOption) (*Collection, error) {
	cfg := collectionConfig{loader: reaction.Load}
	for _, opt := range opts {
		opt(&cfg)
	}

	lib := &reaction.Library{}
	for _, path := range cfg.files {
		l, err := cfg.loader(path)
		if err != nil {
			return nil, fmt.Errorf("network: rate file %q: %w", path, err)
		}
		lib = lib.Union(l)
	}
	if len(cfg.rates) > 0 {
		l, err := reaction.NewLibrary(cfg.rates...)
		if err != nil {
			return nil, fmt.Errorf("network: explicit rates: %w", err)
		}
		lib = lib.Union(l)
	}
	for _, l := range cfg.libraries {
		if l == nil {
			return nil, ErrNilLibrary
		}
		lib = lib.Union(l)
	}

	c := &Collection{files: append([]string(nil), cfg.files...)}
	if err := c.index(lib.Rates()); err != nil {
		return nil, err
	}

	return c, nil
}

// index derives every invariant of the collection from the flat rate
// sequence: chapter validation, the stable partition, the unique-species
// set, and the consumption/production indices.
func (c *Collection) index(rates []reaction.Rate) error {
	for _, r := range rates {
		if !r.Chapter().Known() {
			return fmt.Errorf("%w: chapter %d on rate %s", ErrUnknownChapter, r.Chapter(), r.Fname())
		}
	}

	// Stable partition: reaclib rates keep their order, tabular rates
	// follow in theirs. An explicit two-pass append, not a sort.
	c.rates = make([]reaction.Rate, 0, len(rates))
	for _, r := range rates {
		if !r.Chapter().Tabular() {
			c.rates = append(c.rates, r)
		}
	}
	for _, r := range rates {
		if r.Chapter().Tabular() {
			c.rates = append(c.rates, r)
		}
	}

	for i, r := range c.rates {
		if r.Chapter().Tabular() {
			c.tabular = append(c.tabular, i)
		} else {
			c.reaclib = append(c.reaclib, i)
		}
	}

	seen := make(map[nuclide.Nuclide]struct{})
	for _, r := range c.rates {
		for _, nc := range r.Reactants() {
			seen[nc] = struct{}{}
		}
		for _, nc := range r.Products() {
			seen[nc] = struct{}{}
		}
	}
	c.nuclei = make([]nuclide.Nuclide, 0, len(seen))
	for nc := range seen {
		c.nuclei = append(c.nuclei, nc)
	}
	sort.Slice(c.nuclei, func(i, j int) bool { return c.nuclei[i].Less(c.nuclei[j]) })

	c.consumed = make(map[nuclide.Nuclide][]int, len(c.nuclei))
	c.produced = make(map[nuclide.Nuclide][]int, len(c.nuclei))
	for _, nc := range c.nuclei {
		for i, r := range c.rates {
			if containsSpecies(r.Reactants(), nc) {
				c.consumed[nc] = append(c.consumed[nc], i)
			}
			if containsSpecies(r.Products(), nc) {
				c.produced[nc] = append(c.produced[nc], i)
			}
		}
	}

	return nil
}

func containsSpecies(nucs []nuclide.Nuclide, nc nuclide.Nuclide) bool {
	for _, q := range nucs {
		if q == nc {
			return true
		}
	}

	return false
}

// Nuclei returns every species of the network in (A, Z) order.
func (c *Collection) Nuclei() []nuclide.Nuclide {
	return append([]nuclide.Nuclide(nil), c.nuclei...)
}

// Rates returns the partitioned rate sequence. Indices into it align
// with Evaluate results and the Consumed/Produced/ReaclibRates/
// TabularRates index lists.
func (c *Collection) Rates() []reaction.Rate {
	return append([]reaction.Rate(nil), c.rates...)
}

// Rate returns the rate at position i of the partitioned sequence.
func (c *Collection) Rate(i int) reaction.Rate { return c.rates[i] }

// Len returns the number of rates in the network.
func (c *Collection) Len() int { return len(c.rates) }

// Files returns the rate-file identifiers this collection was built
// from, in input order.
func (c *Collection) Files() []string {
	return append([]string(nil), c.files...)
}

// Consumed returns the positions of the rates consuming nc (nc appears
// at least once among their reactants), in partitioned order. Unknown
// species yield nil.
func (c *Collection) Consumed(nc nuclide.Nuclide) []int {
	return append([]int(nil), c.consumed[nc]...)
}

// Produced returns the positions of the rates producing nc, in
// partitioned order. Unknown species yield nil.
func (c *Collection) Produced(nc nuclide.Nuclide) []int {
	return append([]int(nil), c.produced[nc]...)
}

// ReaclibRates returns the positions of the numeric-chapter rates; after
// the stable partition this is always 0..k-1.
func (c *Collection) ReaclibRates() []int {
	return append([]int(nil), c.reaclib...)
}

// TabularRates returns the positions of the tabular rates; after the
// stable partition this is always k..len-1.
func (c *Collection) TabularRates() []int {
	return append([]int(nil), c.tabular...)
}

// Overview returns a deterministic per-species report of consuming and
// producing rates, suitable as a golden regression fixture.
func (c *Collection) Overview() string {
	var b strings.Builder
	for _, nc := range c.nuclei {
		fmt.Fprintf(&b, "%s\n", nc.Name())
		b.WriteString("  consumed by:\n")
		for _, i := range c.consumed[nc] {
			fmt.Fprintf(&b, "     %s\n", c.rates[i].String())
		}
		b.WriteString("  produced by:\n")
		for _, i := range c.produced[nc] {
			fmt.Fprintf(&b, "     %s\n", c.rates[i].String())
		}
		b.WriteString("\n")
	}

	return b.String()
}

// String lists every rate's display form, one per line, in partitioned
// order.
func (c *Collection) String() string {
	var b strings.Builder
	for _, r := range c.rates {
		b.WriteString(r.String())
		b.WriteString("\n")
	}

	return b.String()
}

// WriteNetwork checks that every rate carries a unique fname, then hands
// the collection to w. Name collisions return ErrAmbiguousRateNames
// before any output is produced; this check is deliberately lazy, since
// evaluation and queries work fine on colliding names.
func (c *Collection) WriteNetwork(w NetworkWriter) error {
	if w == nil {
		return ErrNilWriter
	}
	names := make(map[string]struct{}, len(c.rates))
	for _, r := range c.rates {
		if _, dup := names[r.Fname()]; dup {
			return fmt.Errorf("%w: %q", ErrAmbiguousRateNames, r.Fname())
		}
		names[r.Fname()] = struct{}{}
	}

	return w.WriteNetwork(c)
}
