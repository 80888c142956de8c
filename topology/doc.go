// Package topology derives a renderable multigraph description of a
// reaction network: which species link to which, through which rates,
// and how strongly.
//
// 🚀 What comes out?
//
//	A pure data structure — nodes with (N, Z) layout coordinates and
//	display labels, plus directed weighted edges — ready for any
//	external renderer. No drawing happens here.
//
// ✨ Shape rules:
//
//   - The light catalyst species p, n, and he4 are hidden unless some
//     rate consumes them more than once (p+p chains, triple-alpha),
//     which keeps dense captures from drowning the heavies.
//   - Every (consuming rate, product) pair becomes its own directed
//     edge: parallel edges between the same species are kept apart, one
//     per rate, never merged.
//   - Without a composition, every edge carries NeutralWeight (0.5).
//     With one, the weight is log10 of the evaluated rate; an exact-zero
//     rate gets MinLogWeight (−308) so it stays renderable on a shared
//     color scale as "coldest" instead of poisoning it with -Inf.
//
// ⚙️ Usage:
//
//	topo, err := topology.Build(net, topology.Options{})           // neutral weights
//	topo, err = topology.Build(net, topology.Options{
//	    Rho: 1e4, T: 3e9, Comp: comp,                              // evaluated weights
//	})
//	lo, hi, ok := topo.WeightRange()                               // colorbar range
//
// Complexity: O(R·S) node selection plus O(E) edge emission.
package topology
