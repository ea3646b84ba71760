package pset

import "fmt"

// UTO is an affine transformation p -> p*Multiplier + Offset
type UTO struct {
	Offset     int `json:"offset"`
	Multiplier int `json:"multiplier"`
}

// T returns the transposition by n
func T(n int) UTO { return UTO{Offset: n, Multiplier: 1} }

// I returns the inversion around 0
func I() UTO { return UTO{Offset: 0, Multiplier: -1} }

// TnI returns inversion followed by transposition by n
func TnI(n int) UTO { return UTO{Offset: n, Multiplier: -1} }

// M returns multiplication by k followed by transposition by n
func M(n, k int) UTO { return UTO{Offset: n, Multiplier: k} }

// Apply maps a single value
func (u UTO) Apply(p int) int {
	return p*u.Multiplier + u.Offset
}

// Compose returns the transformation that applies u and then next
func (u UTO) Compose(next UTO) UTO {
	return UTO{
		Offset:     u.Offset*next.Multiplier + next.Offset,
		Multiplier: u.Multiplier * next.Multiplier,
	}
}

func (u UTO) String() string {
	switch u.Multiplier {
	case 1:
		return fmt.Sprintf("T%d", u.Offset)
	case -1:
		return fmt.Sprintf("T%dI", u.Offset)
	default:
		return fmt.Sprintf("T%dM%d", u.Offset, u.Multiplier)
	}
}

// Transpose returns s with every value raised by n. The variant is kept and
// values are not reduced; an empty set yields an empty set of the same
// variant.
func Transpose(s Set, n int) Set {
	return s.mapValues(func(x int) int { return x + n })
}

// Invert returns s with every value negated
func Invert(s Set) Set {
	return s.mapValues(func(x int) int { return -x })
}

// Transform applies u to every value. The result keeps the variant of s, so
// Transform(s, TnI(n)) equals Transpose(Invert(s), n) for every variant.
func Transform(s Set, u UTO) Set {
	return s.mapValues(u.Apply)
}
