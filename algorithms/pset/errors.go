package pset

import "errors"

var (
	// ErrMissingModulus is returned when an operation needs the octave
	// division (12 or 24) but the Set or input carries no variant.
	ErrMissingModulus = errors.New("pset: missing modulus: set variant is unknown")

	// ErrVariantMismatch is returned when pitches of different variants are
	// combined into a single Set.
	ErrVariantMismatch = errors.New("pset: mixed pitch variants in one set")
)
