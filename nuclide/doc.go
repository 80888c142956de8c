// Package nuclide provides the Nuclide value type identifying a nuclear
// species (proton, neutron, helium-4, a heavy isotope, …) by its proton
// and neutron numbers.
//
// 🚀 What is a Nuclide?
//
//	A small comparable value usable directly as a map key:
//	  • canonical lowercase name ("p", "n", "he4", "c12", …)
//	  • mass number A, proton number Z, neutron number N
//	  • a display label for plots ("^{4}He")
//	  • a documented total order (by A, then Z) and structural equality
//
// ✨ Why a dedicated type?
//
//   - Reaction networks key compositions, consumption indices and plot
//     nodes on species identity; a struct key makes equality and hashing
//     explicit rather than an accident of representation.
//   - The (A, Z) total order gives every network a single deterministic
//     species ordering, used throughout the network package.
//
// ⚙️ Usage:
//
//	he4, err := nuclide.Parse("he4")
//	if err != nil { … }
//	fmt.Println(he4.A(), he4.Z(), he4.N()) // 4 2 2
//
// Bare names without a mass number are reserved for the light species
// "p", "n", "d", "t" and the alias "a" (helium-4). Every other species is
// written symbol+mass: "c12", "ni56".
package nuclide
