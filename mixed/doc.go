// Package mixed implements tensor products across several named
// subsystems: a MixedProduct holds one spin product per spin subsystem,
// one boson product per boson subsystem and one fermion product per
// fermion subsystem. The subsystem counts (the arity) are a structural
// invariant fixed at construction; combining products or containers of
// different arity fails with ErrMismatchedSubsystems.
//
// Subsystems never interact: multiplication, Hermitian conjugation and
// basis conversion all act subsystem-wise, with prefactors multiplied
// across subsystems and branching results combined as a Cartesian product.
//
// Canonical string form, one colon-terminated token per subsystem in
// spin-boson-fermion order: "S0X1Z:S2Y:Bc0a1:Fc0a0" (an empty subsystem
// renders its family identity, e.g. "SI:BI:FI").
package mixed
