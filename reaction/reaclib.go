package reaction

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/stellarlab/reacnet/nuclide"
)

// CoefficientSet holds the seven fit coefficients a1…a7 of one ReacLib set.
type CoefficientSet [7]float64

// ReaclibRate is a reaction fitted by one or more ReacLib coefficient
// sets (resonant and non-resonant contributions are separate sets of the
// same rate). Immutable after construction.
type ReaclibRate struct {
	chapter   Chapter
	reactants []nuclide.Nuclide
	products  []nuclide.Nuclide
	sets      []CoefficientSet
	label     string
	q         float64
	densExp   int
	prefactor float64
	fname     string
	str       string
}

// NewReaclibRate constructs a reaclib rate for the given numeric chapter.
// The reactant and product counts must match the chapter shape
// (ErrChapterShape otherwise); at least one coefficient set is required
// (ErrNoSets). q is the reaction Q-value in MeV; label names the fit
// source and may be empty.
func NewReaclibRate(ch Chapter, reactants, products []nuclide.Nuclide, label string, q float64, sets ...CoefficientSet) (*ReaclibRate, error) {
	shape, ok := chapterShape[ch]
	if !ok {
		return nil, fmt.Errorf("%w: chapter %d", ErrChapterShape, ch)
	}
	if len(reactants) != shape[0] || len(products) != shape[1] {
		return nil, fmt.Errorf("%w: chapter %d wants %d -> %d species, got %d -> %d",
			ErrChapterShape, ch, shape[0], shape[1], len(reactants), len(products))
	}
	if len(sets) == 0 {
		return nil, ErrNoSets
	}

	r := &ReaclibRate{
		chapter:   ch,
		reactants: append([]nuclide.Nuclide(nil), reactants...),
		products:  append([]nuclide.Nuclide(nil), products...),
		sets:      append([]CoefficientSet(nil), sets...),
		label:     label,
		q:         q,
		densExp:   len(reactants) - 1,
		prefactor: statisticalPrefactor(reactants),
		fname:     fnameOf(reactants, products),
		str:       stringOf(reactants, products),
	}

	return r, nil
}

// Reactants returns a copy of the consumed species in order.
func (r *ReaclibRate) Reactants() []nuclide.Nuclide {
	return append([]nuclide.Nuclide(nil), r.reactants...)
}

// Products returns a copy of the produced species in order.
func (r *ReaclibRate) Products() []nuclide.Nuclide {
	return append([]nuclide.Nuclide(nil), r.products...)
}

// Chapter returns the numeric ReacLib chapter.
func (r *ReaclibRate) Chapter() Chapter { return r.chapter }

// DensExp returns len(reactants)-1.
func (r *ReaclibRate) DensExp() int { return r.densExp }

// Prefactor returns the identical-particle statistical factor.
func (r *ReaclibRate) Prefactor() float64 { return r.prefactor }

// Fname returns the canonical unique identifier, e.g. "he4_c12__o16".
func (r *ReaclibRate) Fname() string { return r.fname }

// Label returns the fit-source label from the library file ("wc12", …).
func (r *ReaclibRate) Label() string { return r.label }

// Q returns the reaction Q-value in MeV.
func (r *ReaclibRate) Q() float64 { return r.q }

// String returns the "he4 + c12 --> o16" display form.
func (r *ReaclibRate) String() string { return r.str }

// Sets returns a copy of the coefficient sets.
func (r *ReaclibRate) Sets() []CoefficientSet {
	return append([]CoefficientSet(nil), r.sets...)
}

// Eval returns the rate coefficient at temperature T (Kelvin), summing
// the standard seven-term ReacLib form over all sets in T9 = T/1e9:
//
//	exp(a1 + a2/T9 + a3·T9^(-1/3) + a4·T9^(1/3) + a5·T9 + a6·T9^(5/3) + a7·ln T9)
//
// Complexity: O(len(sets)).
func (r *ReaclibRate) Eval(T float64) float64 {
	t9 := T / 1e9
	t913 := math.Cbrt(t9)
	var sum float64
	for _, a := range r.sets {
		ln := a[0] + a[1]/t9 + a[2]/t913 + a[3]*t913 +
			a[4]*t9 + a[5]*t9*t913*t913 + a[6]*math.Log(t9)
		sum += math.Exp(ln)
	}

	return sum
}

// Load reads a ReacLib v2 format rate-library file: repeating blocks of
// a chapter line followed by three-line coefficient sets. Consecutive
// sets describing the same reaction are merged into a single rate.
// Every failure (IO or format) wraps ErrLoad; no partial library is
// returned.
func Load(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	lib, err := parseReaclib(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrLoad, path, err)
	}

	return lib, nil
}

// parseReaclib consumes ReacLib text from r and builds a Library.
func parseReaclib(r io.Reader) (*Library, error) {
	sc := bufio.NewScanner(r)
	var (
		rates   []Rate
		last    *ReaclibRate
		chapter Chapter
		haveCh  bool
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if ch, err := strconv.Atoi(trimmed); err == nil {
			chapter = Chapter(ch)
			haveCh = true
			continue
		}
		if !haveCh {
			return nil, fmt.Errorf("%w: line %d: coefficient set before any chapter line", ErrBadFormat, lineNo)
		}

		reactants, products, label, q, err := parseSetHeader(line, chapter)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, lineNo)
		}
		var a CoefficientSet
		for i, widths := range [2]int{4, 3} {
			if !sc.Scan() {
				return nil, fmt.Errorf("%w: truncated coefficient set at line %d", ErrBadFormat, lineNo)
			}
			lineNo++
			if err = parseCoefficients(sc.Text(), a[4*i:4*i+widths]); err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, lineNo)
			}
		}

		if last != nil && last.chapter == chapter &&
			sameSpecies(last.reactants, reactants) && sameSpecies(last.products, products) {
			last.sets = append(last.sets, a)
			continue
		}
		last, err = NewReaclibRate(chapter, reactants, products, label, q, a)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadFormat, lineNo, err)
		}
		rates = append(rates, last)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewLibrary(rates...)
}

// parseSetHeader extracts species, source label, and Q-value from the
// first line of a coefficient set. Species live in six 5-column fields
// starting at column 6; the label occupies columns 44-47 and the Q-value
// columns 53-64.
func parseSetHeader(line string, ch Chapter) (reactants, products []nuclide.Nuclide, label string, q float64, err error) {
	shape := chapterShape[ch]
	if shape == [2]int{} {
		return nil, nil, "", 0, fmt.Errorf("%w: chapter %d", ErrBadFormat, ch)
	}
	var species []nuclide.Nuclide
	for i := 0; i < 6; i++ {
		name := strings.TrimSpace(column(line, 5+5*i, 5+5*i+5))
		if name == "" {
			continue
		}
		nc, perr := nuclide.Parse(name)
		if perr != nil {
			return nil, nil, "", 0, fmt.Errorf("%w: %w", ErrBadFormat, perr)
		}
		species = append(species, nc)
	}
	if len(species) != shape[0]+shape[1] {
		return nil, nil, "", 0, fmt.Errorf("%w: chapter %d wants %d species, found %d",
			ErrBadFormat, ch, shape[0]+shape[1], len(species))
	}
	label = strings.TrimSpace(column(line, 43, 47))
	if qs := strings.TrimSpace(column(line, 52, 64)); qs != "" {
		if q, err = parseFortranFloat(qs); err != nil {
			return nil, nil, "", 0, fmt.Errorf("%w: bad Q-value %q", ErrBadFormat, qs)
		}
	}

	return species[:shape[0]], species[shape[0]:], label, q, nil
}

// parseCoefficients fills dst from consecutive 13-column float fields.
// Blank fields read as zero, matching the fixed-width files in the wild.
func parseCoefficients(line string, dst []float64) error {
	for i := range dst {
		field := strings.TrimSpace(column(line, 13*i, 13*i+13))
		if field == "" {
			dst[i] = 0
			continue
		}
		v, err := parseFortranFloat(field)
		if err != nil {
			return fmt.Errorf("%w: bad coefficient %q", ErrBadFormat, field)
		}
		dst[i] = v
	}

	return nil
}

// column returns line[lo:hi], tolerating short lines.
func column(line string, lo, hi int) string {
	if lo >= len(line) {
		return ""
	}
	if hi > len(line) {
		hi = len(line)
	}

	return line[lo:hi]
}

// parseFortranFloat parses a float that may use Fortran d-exponents.
func parseFortranFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.ReplaceAll(s, "d", "e"), "D", "e")

	return strconv.ParseFloat(s, 64)
}
