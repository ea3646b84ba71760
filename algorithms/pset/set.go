package pset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/pitch"
)

// Set is an immutable, unordered collection of unique pitch values of a
// single variant. The zero Set is empty with pitch.VariantUnknown.
type Set struct {
	variant pitch.Variant
	members map[int]struct{}
}

// New builds a Set of variant v from values, dropping duplicates
func New(v pitch.Variant, values ...int) (Set, error) {
	if !v.Valid() {
		return Set{}, fmt.Errorf("pset: %w: %d", pitch.ErrInvalidVariant, int(v))
	}
	return build(v, values), nil
}

// MustNew is like New but panics on error. Intended for tests and fixed data.
func MustNew(v pitch.Variant, values ...int) Set {
	s, err := New(v, values...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromPitches builds a Set taking the variant from the pitches themselves.
// It fails with ErrMissingModulus for empty input and ErrVariantMismatch
// when the pitches disagree.
func FromPitches(pitches ...pitch.Pitch) (Set, error) {
	if len(pitches) == 0 {
		return Set{}, ErrMissingModulus
	}
	return FromPitchesOf(pitches[0].Variant, pitches...)
}

// FromPitchesOf builds a Set of variant v; every pitch must be of variant v
func FromPitchesOf(v pitch.Variant, pitches ...pitch.Pitch) (Set, error) {
	if !v.Valid() {
		return Set{}, fmt.Errorf("pset: %w: %d", pitch.ErrInvalidVariant, int(v))
	}
	values := make([]int, len(pitches))
	for i, p := range pitches {
		if p.Variant != v {
			return Set{}, fmt.Errorf("%w: %s and %s", ErrVariantMismatch, v, p.Variant)
		}
		values[i] = p.Value
	}
	return build(v, values), nil
}

func build(v pitch.Variant, values []int) Set {
	members := make(map[int]struct{}, len(values))
	for _, x := range values {
		members[x] = struct{}{}
	}
	return Set{variant: v, members: members}
}

// mapValues applies f to every member, keeping the variant
func (s Set) mapValues(f func(int) int) Set {
	members := make(map[int]struct{}, len(s.members))
	for x := range s.members {
		members[f(x)] = struct{}{}
	}
	return Set{variant: s.variant, members: members}
}

// Variant returns the declared element variant
func (s Set) Variant() pitch.Variant { return s.variant }

// Len returns the cardinality
func (s Set) Len() int { return len(s.members) }

// IsEmpty reports whether the set has no members
func (s Set) IsEmpty() bool { return len(s.members) == 0 }

// Contains reports whether value is a member
func (s Set) Contains(value int) bool {
	_, ok := s.members[value]
	return ok
}

// Values returns the members in canonical (ascending) order. The slice is
// freshly allocated.
func (s Set) Values() []int {
	values := make([]int, 0, len(s.members))
	for x := range s.members {
		values = append(values, x)
	}
	slices.Sort(values)
	return values
}

// Pitches returns the members as pitches in canonical order
func (s Set) Pitches() []pitch.Pitch {
	values := s.Values()
	pitches := make([]pitch.Pitch, len(values))
	for i, x := range values {
		pitches[i] = pitch.Pitch{Value: x, Variant: s.variant}
	}
	return pitches
}

// Equal reports whether s and o hold the same pitches: same variant and
// same values. Two empty sets are equal only if their variants match.
func (s Set) Equal(o Set) bool {
	if s.variant != o.variant || len(s.members) != len(o.members) {
		return false
	}
	for x := range s.members {
		if _, ok := o.members[x]; !ok {
			return false
		}
	}
	return true
}

// Intersection returns the pitches present in both sets. Sets of different
// variants share no pitches.
func (s Set) Intersection(o Set) Set {
	out := Set{variant: s.variant, members: make(map[int]struct{})}
	if s.variant != o.variant {
		return out
	}
	small, large := s.members, o.members
	if len(large) < len(small) {
		small, large = large, small
	}
	for x := range small {
		if _, ok := large[x]; ok {
			out.members[x] = struct{}{}
		}
	}
	return out
}

// Union returns the pitches present in either set
func (s Set) Union(o Set) (Set, error) {
	if s.variant != o.variant {
		return Set{}, fmt.Errorf("%w: %s and %s", ErrVariantMismatch, s.variant, o.variant)
	}
	members := make(map[int]struct{}, len(s.members)+len(o.members))
	for x := range s.members {
		members[x] = struct{}{}
	}
	for x := range o.members {
		members[x] = struct{}{}
	}
	return Set{variant: s.variant, members: members}, nil
}

// String formats the set in canonical order, e.g. "{0, 4, 7}"
func (s Set) String() string {
	values := s.Values()
	parts := make([]string, len(values))
	for i, x := range values {
		parts[i] = strconv.Itoa(x)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
