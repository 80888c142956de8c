// Package network assembles reaction rates into a self-consistent
// network and evaluates them for a thermodynamic state and composition.
//
// 🚀 What is a network here?
//
//	A Collection: the deduplicated species set and partitioned rate
//	sequence derived from one or more rate sources, plus the per-species
//	consumption/production indices that describe connectivity.
//
// ✨ Guarantees after NewCollection succeeds:
//
//   - Nuclei() is the sorted (A, then Z) deduplicated union of every
//     reactant and product across all held rates.
//   - Consumed(n) / Produced(n) are exactly the indices of the rates
//     whose reactants / products mention n, over the partitioned order.
//   - Every reaclib rate precedes every tabular rate; within each class
//     the original source order is preserved (a stable partition).
//   - A rate with an unrecognized chapter fails construction outright:
//     no partial network is ever returned.
//
// ⚙️ Usage:
//
//	net, err := network.NewCollection(network.WithRateFiles("20.reaclib"))
//	if err != nil { … }
//
//	comp, _ := network.NewComposition(net.Nuclei())
//	_ = comp.SetSolarLike(0.02)
//
//	vals, err := net.Evaluate(1e4, 3e9, comp)  // rho [g/cm^3], T [K]
//	for i, r := range net.Rates() {
//	    fmt.Println(r.Fname(), vals[i])
//	}
//
// Evaluation follows the standard form for each rate:
//
//	value = prefactor · ρ^densExp · Eval(T) · ∏ molar(reactant)
//
// with reactant multiplicities honored (two protons contribute the
// proton molar fraction squared).
//
// A finished Collection and Composition are never mutated by queries, so
// independent evaluations may run concurrently; construction and the
// Composition setters are single-writer.
package network
