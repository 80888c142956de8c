package nuclide

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadNuclide indicates a species name that cannot be resolved to a
// known element symbol and mass number.
var ErrBadNuclide = errors.New("nuclide: unrecognized species name")

// symbols maps proton number Z to the element symbol, Z=0 ("nn", the bare
// neutron) through Z=36 (krypton), covering the species that appear in
// reaclib-style networks.
var symbols = []string{
	"nn", "h", "he", "li", "be", "b", "c", "n", "o", "f",
	"ne", "na", "mg", "al", "si", "p", "s", "cl", "ar", "k",
	"ca", "sc", "ti", "v", "cr", "mn", "fe", "co", "ni", "cu",
	"zn", "ga", "ge", "as", "se", "br", "kr",
}

// protonNumber is the reverse lookup of symbols.
var protonNumber = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		m[s] = z
	}
	return m
}()

// Nuclide identifies a single nuclear species by proton and neutron
// number. It is a comparable value type: two Nuclides are equal exactly
// when they describe the same species, so it is safe as a map key.
// The zero value is the bare neutron; construct via Parse or MustParse.
type Nuclide struct {
	z, n int
}

// Parse resolves a species name to a Nuclide. Accepted forms:
//
//   - "p", "n", "d", "t" — proton, neutron, deuteron, triton
//   - "a" — alias for helium-4
//   - symbol+mass — "he4", "c12", "ni56" (case-insensitive)
//
// Returns ErrBadNuclide for anything else.
// Complexity: O(len(name)).
func Parse(name string) (Nuclide, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "n":
		return Nuclide{z: 0, n: 1}, nil
	case "p":
		return Nuclide{z: 1, n: 0}, nil
	case "d":
		return Nuclide{z: 1, n: 1}, nil
	case "t":
		return Nuclide{z: 1, n: 2}, nil
	case "a", "he4":
		return Nuclide{z: 2, n: 2}, nil
	}

	i := 0
	for i < len(s) && (s[i] < '0' || s[i] > '9') {
		i++
	}
	if i == 0 || i == len(s) {
		return Nuclide{}, fmt.Errorf("%w: %q", ErrBadNuclide, name)
	}
	z, ok := protonNumber[s[:i]]
	if !ok || z == 0 {
		return Nuclide{}, fmt.Errorf("%w: %q", ErrBadNuclide, name)
	}
	a, err := strconv.Atoi(s[i:])
	if err != nil || a < z || a == 0 {
		return Nuclide{}, fmt.Errorf("%w: %q", ErrBadNuclide, name)
	}

	return Nuclide{z: z, n: a - z}, nil
}

// MustParse is Parse that panics on error; intended for fixed species
// lists in examples and tests.
func MustParse(name string) Nuclide {
	nuc, err := Parse(name)
	if err != nil {
		panic(err)
	}

	return nuc
}

// A returns the mass number (protons + neutrons).
func (nc Nuclide) A() int { return nc.z + nc.n }

// Z returns the proton number.
func (nc Nuclide) Z() int { return nc.z }

// N returns the neutron number.
func (nc Nuclide) N() int { return nc.n }

// Name returns the canonical lowercase name: "p", "n", "d", "t" for the
// light species, symbol+mass ("he4", "c12") otherwise.
func (nc Nuclide) Name() string {
	switch nc {
	case Nuclide{z: 0, n: 1}:
		return "n"
	case Nuclide{z: 1, n: 0}:
		return "p"
	case Nuclide{z: 1, n: 1}:
		return "d"
	case Nuclide{z: 1, n: 2}:
		return "t"
	}

	return symbols[nc.z] + strconv.Itoa(nc.A())
}

// Pretty returns a display label suitable for plot annotations:
// "^{12}C" for carbon-12, the bare name for p/n/d/t.
func (nc Nuclide) Pretty() string {
	switch nc.Name() {
	case "p", "n", "d", "t":
		return nc.Name()
	}
	sym := symbols[nc.z]

	return fmt.Sprintf("^{%d}%s", nc.A(), strings.ToUpper(sym[:1])+sym[1:])
}

// String implements fmt.Stringer; identical to Name.
func (nc Nuclide) String() string { return nc.Name() }

// Compare orders species by mass number A, then by proton number Z.
// Returns -1, 0, or +1. This is the total order used for every sorted
// species listing in the network package.
func (nc Nuclide) Compare(other Nuclide) int {
	switch {
	case nc.A() != other.A():
		if nc.A() < other.A() {
			return -1
		}
		return 1
	case nc.z != other.z:
		if nc.z < other.z {
			return -1
		}
		return 1
	}

	return 0
}

// Less reports whether nc precedes other in the (A, Z) order.
func (nc Nuclide) Less(other Nuclide) bool { return nc.Compare(other) < 0 }
