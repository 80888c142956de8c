package network

import (
	"errors"

	"github.com/stellarlab/reacnet/reaction"
)

// Sentinel errors for composition handling and network assembly.
var (
	// ErrNoNuclides indicates a composition constructed over an empty
	// species list.
	ErrNoNuclides = errors.New("network: composition needs at least one nuclide")

	// ErrTooFewNuclides indicates SetSolarLike on fewer than three species,
	// which leaves nothing to spread the metallicity over.
	ErrTooFewNuclides = errors.New("network: solar-like composition needs at least three nuclides")

	// ErrNoSolarAnchor indicates SetSolarLike without both p and he4 in the
	// composition.
	ErrNoSolarAnchor = errors.New("network: solar-like composition needs both p and he4")

	// ErrZeroSum indicates Normalize on mass fractions summing to zero.
	ErrZeroSum = errors.New("network: mass fractions sum to zero")

	// ErrNilComposition indicates evaluation without a composition.
	ErrNilComposition = errors.New("network: nil composition")

	// ErrMissingNuclide indicates evaluation with a composition lacking a
	// species some rate consumes.
	ErrMissingNuclide = errors.New("network: composition is missing a reactant nuclide")

	// ErrNilLibrary indicates a nil library supplied to WithLibraries.
	ErrNilLibrary = errors.New("network: nil library")

	// ErrUnknownChapter indicates a rate whose chapter is neither a numeric
	// reaclib class nor the tabular sentinel; assembly stops rather than
	// mis-partition the rate.
	ErrUnknownChapter = errors.New("network: unknown rate chapter")

	// ErrAmbiguousRateNames indicates two rates sharing an fname; raised
	// only by operations that key output on names, not at assembly time.
	ErrAmbiguousRateNames = errors.New("network: rates not uniquely identified by fname")

	// ErrNilWriter indicates WriteNetwork invoked without a writer.
	ErrNilWriter = errors.New("network: nil network writer")
)

// Loader resolves a rate-file identifier into a Library. The default is
// reaction.Load; tests and alternative formats install their own via
// WithLoader.
type Loader func(path string) (*reaction.Library, error)

// NetworkWriter emits a finished Collection as integrable source code or
// any other external representation. Implementations own the output
// format; the Collection only guarantees fname uniqueness before
// delegating.
type NetworkWriter interface {
	WriteNetwork(c *Collection) error
}

// CollectionOption configures network assembly.
type CollectionOption func(*collectionConfig)

type collectionConfig struct {
	files     []string
	libraries []*reaction.Library
	rates     []reaction.Rate
	loader    Loader
}

// WithRateFiles adds rate-library files to load, in order. Any file that
// fails to load aborts assembly; partial networks are never returned.
func WithRateFiles(paths ...string) CollectionOption {
	return func(c *collectionConfig) { c.files = append(c.files, paths...) }
}

// WithLibraries adds pre-built libraries, unioned after files and
// explicit rates in the order given.
func WithLibraries(libs ...*reaction.Library) CollectionOption {
	return func(c *collectionConfig) { c.libraries = append(c.libraries, libs...) }
}

// WithRates adds individual rates, wrapped into a synthetic library and
// unioned after the file-based sources.
func WithRates(rates ...reaction.Rate) CollectionOption {
	return func(c *collectionConfig) { c.rates = append(c.rates, rates...) }
}

// WithLoader replaces the rate-file loading collaborator.
func WithLoader(fn Loader) CollectionOption {
	return func(c *collectionConfig) { c.loader = fn }
}

// CompositionOption configures composition construction.
type CompositionOption func(*compositionConfig)

type compositionConfig struct {
	floor float64
}

// WithFloor overrides the initial mass fraction given to every species.
// The default 1e-16 keeps values positive so logs and divisions stay
// finite.
func WithFloor(x float64) CompositionOption {
	return func(c *compositionConfig) { c.floor = x }
}

// defaultFloor is the initial mass fraction of every species.
const defaultFloor = 1e-16
