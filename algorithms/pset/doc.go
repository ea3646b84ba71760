// Package pset implements the pitch-set analysis engine: the Set container,
// the affine transformations over it, interval-class matrices and rosters,
// set-class style classifications, pitch-measure similarity, subset
// enumeration and the pitch-class DFT profile.
//
// Every function is pure. Inputs are never mutated and each call returns a
// fresh Set, slice, map or matrix, so independent analyses can run on
// separate goroutines without coordination.
//
// Canonical order:
//
//   - Sets are unordered. Functions that need an order (ICMatrix, SetClass,
//     Subsets, ...) sort the values ascending at call time; the order is never
//     stored on the Set.
//
// Variants:
//
//   - A Set carries its pitch.Variant explicitly. The variant decides the
//     octave division used by PCINTClass, FBClass and DFT. Operations that
//     need a division return ErrMissingModulus for a Set whose variant is
//     pitch.VariantUnknown (the zero Set).
//
// Complexity:
//
//   - ICMatrix, ICRoster, PMSimilarity: O(n²).
//   - Subsets: O(2ⁿ·n) time and memory; callers must bound n (roughly 20–24
//     elements is the practical ceiling).
//
// Error handling (sentinel errors):
//
//   - ErrMissingModulus: the octave division cannot be determined.
//   - ErrVariantMismatch: pitches of different variants in one Set.
package pset
