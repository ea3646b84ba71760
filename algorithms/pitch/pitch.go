// Package pitch defines the integer pitch labels the pitch-set algorithms
// operate on.
//
// A Pitch is a plain value: a signed integer plus the Variant that says how
// the integer is interpreted. Pitch12 and Pitch24 live in unbounded pitch
// space (0 is middle C, one unit is a semitone or a quarter tone).
// PitchClass12 and PitchClass24 are modular labels. Values are never reduced
// on construction; operations that need a pitch class call Class explicitly.
package pitch

import (
	"fmt"
	"strconv"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/common"
)

// Variant identifies the kind of a pitch element
type Variant int

const (
	VariantUnknown Variant = iota
	Pitch12
	Pitch24
	PitchClass12
	PitchClass24
)

var pitchClassNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Valid reports whether v is one of the defined variants
func (v Variant) Valid() bool {
	return v >= Pitch12 && v <= PitchClass24
}

// Modulus returns 12 or 24 for pitch-class variants and 0 for unbounded pitch
func (v Variant) Modulus() int {
	switch v {
	case PitchClass12:
		return 12
	case PitchClass24:
		return 24
	default:
		return 0
	}
}

// Division returns the number of steps per octave: 12 or 24 for every valid
// variant, 0 for VariantUnknown.
func (v Variant) Division() int {
	switch v {
	case Pitch12, PitchClass12:
		return 12
	case Pitch24, PitchClass24:
		return 24
	default:
		return 0
	}
}

// Modular reports whether values of this variant are pitch classes
func (v Variant) Modular() bool {
	return v.Modulus() != 0
}

func (v Variant) String() string {
	switch v {
	case Pitch12:
		return "Pitch12"
	case Pitch24:
		return "Pitch24"
	case PitchClass12:
		return "PitchClass12"
	case PitchClass24:
		return "PitchClass24"
	default:
		return "Unknown"
	}
}

// Pitch is an immutable pitch label. Two pitches are equal (==) iff they
// share variant and value.
type Pitch struct {
	Value   int
	Variant Variant
}

// New creates a pitch of the given variant
func New(v Variant, value int) (Pitch, error) {
	if !v.Valid() {
		return Pitch{}, fmt.Errorf("%w: %d", ErrInvalidVariant, int(v))
	}
	return Pitch{Value: value, Variant: v}, nil
}

// Add returns the pitch n steps higher
func (p Pitch) Add(n int) Pitch {
	return Pitch{Value: p.Value + n, Variant: p.Variant}
}

// Neg returns the inversion of p around 0
func (p Pitch) Neg() Pitch {
	return Pitch{Value: -p.Value, Variant: p.Variant}
}

// Affine returns p*mult + offset
func (p Pitch) Affine(mult, offset int) Pitch {
	return Pitch{Value: p.Value*mult + offset, Variant: p.Variant}
}

// Class returns the value reduced into [0, Division). An unknown variant
// returns the raw value.
func (p Pitch) Class() int {
	n := p.Variant.Division()
	if n == 0 {
		return p.Value
	}
	return common.Mod(p.Value, n)
}

// Octave returns the octave number of an unbounded pitch, with 0 mapped to
// octave 4 (middle C). Pitch-class variants report 0.
func (p Pitch) Octave() int {
	n := p.Variant.Division()
	if n == 0 || p.Variant.Modular() {
		return 0
	}
	q := (p.Value - p.Class()) / n
	return q + 4
}

// Name returns a readable label: note names for 12-division variants
// ("E", "E4"), the numeric class for 24-division variants ("7", "7@4").
func (p Pitch) Name() string {
	var class string
	switch p.Variant.Division() {
	case 12:
		class = pitchClassNames[p.Class()]
	case 24:
		class = strconv.Itoa(p.Class())
	default:
		return strconv.Itoa(p.Value)
	}

	if p.Variant.Modular() {
		return class
	}
	if p.Variant.Division() == 24 {
		return class + "@" + strconv.Itoa(p.Octave())
	}
	return class + strconv.Itoa(p.Octave())
}

func (p Pitch) String() string {
	return strconv.Itoa(p.Value)
}
