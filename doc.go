// Package reacnet is an in-memory toolkit for assembling, evaluating,
// and inspecting nuclear reaction networks.
//
// 🚀 What is reacnet?
//
//	A small, dependency-light library that brings together:
//		• Species primitives: the Nuclide value type with (A, Z, N) and a total order
//		• Rates: ReacLib fitted rates, tabulated rates, ordered libraries + file loading
//		• Networks: deduplicated species sets, consumption/production indices,
//		  stable reaclib/tabular partitioning, full rate-vector evaluation
//		• Topology: renderer-ready node/edge/weight descriptions of connectivity
//
// ✨ Why choose reacnet?
//
//   - Fail-loud assembly – a bad source, nil rate, or unknown chapter
//     aborts construction; partial networks are never returned
//   - Deterministic everything – sorted species, stable partitions,
//     golden-testable reports
//   - Pure Go – no cgo, no rendering or plotting dependencies
//   - Concurrent reads – a finished Collection is immutable, so
//     evaluations across thermodynamic states can run in parallel
//
// Everything is organized under four subpackages:
//
//	nuclide/  — the Nuclide species identifier and its ordering contract
//	reaction/ — Rate contract, ReacLib + tabular rates, Library, file loader
//	network/  — Composition, Collection assembly, rate evaluation, reports
//	topology/ — node/edge/weight plot data for external renderers
//
// Quick ASCII example:
//
//	    he4 + c12 ──> o16 ──(+he4)──> ne20
//
//	an alpha-capture chain: three heavies, two rates, one hidden catalyst.
//
// Dive into the per-package docs for the evaluation formula, partition
// invariants, and renderer conventions.
//
//	go get github.com/stellarlab/reacnet
package reacnet
