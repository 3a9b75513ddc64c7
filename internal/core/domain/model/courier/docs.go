// Package courier contains the courier aggregate of the roster.
//
// The aggregate owns one half of the cross-entity invariant at the heart of
// the system: a courier is busy if and only if it holds a back-reference to
// exactly one active order. The pair of fields can only change together,
// through Assign and Release, which the order coordinator drives as part of
// its paired order/courier mutations.
package courier
