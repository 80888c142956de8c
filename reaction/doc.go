// Package reaction models single nuclear reactions (rates) and ordered
// collections of them (libraries), including a loader for ReacLib-format
// rate files.
//
// 🚀 What lives here?
//
//   - Rate — the contract every reaction satisfies: ordered reactant and
//     product species (multiplicities matter), a chapter classification,
//     a density exponent, a statistical prefactor, a unique fname, and a
//     temperature-dependent coefficient Eval(T).
//   - ReaclibRate — a reaction with one or more 7-coefficient ReacLib
//     sets; Eval sums exp(a1 + a2/T9 + a3·T9^(-1/3) + a4·T9^(1/3) +
//     a5·T9 + a6·T9^(5/3) + a7·ln T9) over its sets.
//   - TabularRate — a reaction whose coefficient is interpolated from a
//     (T, value) table instead of a fitted formula.
//   - Library — an ordered rate container with an append-order Union,
//     the unit that network assembly consumes.
//   - Load — parse a ReacLib v2 text file into a Library.
//
// ✨ Conventions:
//
//   - Chapters 1–11 are the ReacLib reactant/product shape classes;
//     ChapterTabular marks interpolated rates. Anything else is rejected
//     during network assembly.
//   - DensExp is len(reactants)−1; Prefactor is the identical-particle
//     factor 1/∏ mᵢ! over reactant multiplicities (1/6 for triple-alpha).
//   - Fname joins reactant names with "_", then "__", then product
//     names: "he4_c12__o16". Libraries never deduplicate; colliding
//     fnames surface at the network's emission gate.
//
// ⚙️ Usage:
//
//	lib, err := reaction.Load("20.reaclib")
//	if err != nil { … }
//	for _, r := range lib.Rates() {
//	    fmt.Println(r.Fname(), r.Eval(1e9))
//	}
//
// Temperatures are in Kelvin; Eval works in T9 = T/1e9 internally, the
// customary ReacLib variable.
package reaction
