package reaction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stellarlab/reacnet/nuclide"
	"github.com/stellarlab/reacnet/reaction"
)

func electronCapture(t *testing.T, points []reaction.TablePoint) *reaction.TabularRate {
	t.Helper()
	r, err := reaction.NewTabularRate(
		[]nuclide.Nuclide{nuclide.MustParse("na23")},
		[]nuclide.Nuclide{nuclide.MustParse("ne23")},
		points,
	)
	require.NoError(t, err)

	return r
}

// TestTabularRate_Attributes checks the contract-level accessors shared
// with reaclib rates.
func TestTabularRate_Attributes(t *testing.T) {
	r := electronCapture(t, []reaction.TablePoint{{T: 1e8, Value: 1e-10}, {T: 1e9, Value: 1e-8}})
	require.Equal(t, reaction.ChapterTabular, r.Chapter())
	require.True(t, r.Chapter().Tabular())
	require.Equal(t, 0, r.DensExp())
	require.Equal(t, 1.0, r.Prefactor())
	require.Equal(t, "na23__ne23", r.Fname())
	require.Equal(t, "na23 --> ne23", r.String())
}

// TestTabularRate_Eval covers clamping at the grid ends and log-log
// interpolation between points.
func TestTabularRate_Eval(t *testing.T) {
	r := electronCapture(t, []reaction.TablePoint{{T: 1e8, Value: 1e-10}, {T: 1e9, Value: 1e-8}})

	require.Equal(t, 1e-10, r.Eval(1e7)) // below grid: first value
	require.Equal(t, 1e-8, r.Eval(1e10)) // above grid: last value
	// Geometric midpoint of the grid maps to the geometric midpoint of
	// the values under log-log interpolation.
	mid := r.Eval(3.1622776601683795e8) // 10^8.5
	require.InDelta(t, 1e-9, mid, 1e-12)
}

// TestTabularRate_LinearFallback interpolates linearly when a bracketing
// value is zero, keeping the result finite.
func TestTabularRate_LinearFallback(t *testing.T) {
	r := electronCapture(t, []reaction.TablePoint{{T: 1e8, Value: 0}, {T: 2e8, Value: 4e-9}})
	require.InDelta(t, 2e-9, r.Eval(1.5e8), 1e-18)
}

// TestNewTabularRate_Rejects verifies ErrBadTable on degenerate grids.
func TestNewTabularRate_Rejects(t *testing.T) {
	na23 := []nuclide.Nuclide{nuclide.MustParse("na23")}
	ne23 := []nuclide.Nuclide{nuclide.MustParse("ne23")}

	_, err := reaction.NewTabularRate(na23, ne23, []reaction.TablePoint{{T: 1e8, Value: 1}})
	require.ErrorIs(t, err, reaction.ErrBadTable)

	_, err = reaction.NewTabularRate(na23, ne23,
		[]reaction.TablePoint{{T: 1e9, Value: 1}, {T: 1e8, Value: 2}})
	require.ErrorIs(t, err, reaction.ErrBadTable)

	_, err = reaction.NewTabularRate(nil, ne23,
		[]reaction.TablePoint{{T: 1e8, Value: 1}, {T: 1e9, Value: 2}})
	require.ErrorIs(t, err, reaction.ErrChapterShape)
}
