package nuclide_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stellarlab/reacnet/nuclide"
)

// TestParse_LightSpecies verifies the bare light-species names and the
// helium-4 alias.
func TestParse_LightSpecies(t *testing.T) {
	cases := []struct {
		in      string
		a, z, n int
		name    string
	}{
		{"p", 1, 1, 0, "p"},
		{"n", 1, 0, 1, "n"},
		{"d", 2, 1, 1, "d"},
		{"t", 3, 1, 2, "t"},
		{"a", 4, 2, 2, "he4"},
		{"he4", 4, 2, 2, "he4"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			nuc, err := nuclide.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.a, nuc.A())
			require.Equal(t, tc.z, nuc.Z())
			require.Equal(t, tc.n, nuc.N())
			require.Equal(t, tc.name, nuc.Name())
		})
	}
}

// TestParse_Isotopes covers symbol+mass forms, including the elements
// whose symbols collide with the bare proton/neutron names.
func TestParse_Isotopes(t *testing.T) {
	cases := []struct {
		in   string
		z, a int
	}{
		{"c12", 6, 12},
		{"o16", 8, 16},
		{"ni56", 28, 56},
		{"n14", 7, 14},  // nitrogen, not a neutron
		{"p31", 15, 31}, // phosphorus, not a proton
		{"Fe56", 26, 56},
		{"h1", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			nuc, err := nuclide.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.z, nuc.Z())
			require.Equal(t, tc.a, nuc.A())
		})
	}
}

// TestParse_Rejects verifies ErrBadNuclide on malformed names.
func TestParse_Rejects(t *testing.T) {
	for _, bad := range []string{"", "c", "12", "xx12", "he1", "q4", "he0"} {
		t.Run("bad_"+bad, func(t *testing.T) {
			_, err := nuclide.Parse(bad)
			if !errors.Is(err, nuclide.ErrBadNuclide) {
				t.Errorf("Parse(%q) error = %v; want ErrBadNuclide", bad, err)
			}
		})
	}
}

// TestCompare_Order checks the (A, Z) total order via a sort.
func TestCompare_Order(t *testing.T) {
	nucs := []nuclide.Nuclide{
		nuclide.MustParse("ni56"),
		nuclide.MustParse("he4"),
		nuclide.MustParse("p"),
		nuclide.MustParse("c12"),
		nuclide.MustParse("n"),
		nuclide.MustParse("b12"), // same A as c12, lower Z
	}
	sort.Slice(nucs, func(i, j int) bool { return nucs[i].Less(nucs[j]) })

	got := make([]string, len(nucs))
	for i, nc := range nucs {
		got[i] = nc.Name()
	}
	require.Equal(t, []string{"n", "p", "he4", "b12", "c12", "ni56"}, got)
}

// TestNuclide_MapKey confirms structural equality: independently parsed
// values of the same species collide on one map entry.
func TestNuclide_MapKey(t *testing.T) {
	m := map[nuclide.Nuclide]int{}
	m[nuclide.MustParse("he4")]++
	m[nuclide.MustParse("a")]++
	m[nuclide.MustParse("He4")]++
	require.Len(t, m, 1)
	require.Equal(t, 3, m[nuclide.MustParse("he4")])
}

// TestPretty covers the display labels used for plot nodes.
func TestPretty(t *testing.T) {
	cases := map[string]string{
		"p":    "p",
		"n":    "n",
		"he4":  "^{4}He",
		"c12":  "^{12}C",
		"ni56": "^{56}Ni",
	}
	for in, want := range cases {
		if got := nuclide.MustParse(in).Pretty(); got != want {
			t.Errorf("Pretty(%s) = %q; want %q", in, got, want)
		}
	}
}
