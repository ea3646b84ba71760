// Package notation converts note and chord values from a notation or MIDI
// object model into pitch sets. It sits outside the analysis core: it only
// produces pset.Set values.
//
// MIDI note numbers map to Pitch12 pitches relative to middle C, so MIDI 60
// becomes 0 and MIDI 61 becomes 1.
package notation

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/pitch"
	"github.com/RyanBlaney/sonido-pctheory/algorithms/pset"
	"github.com/RyanBlaney/sonido-pctheory/logging"
)

// MiddleC is the MIDI note number mapped to pitch 0
const MiddleC = 60

// ErrUnsupportedType is returned for values the adapter does not recognise
var ErrUnsupportedType = errors.New("notation: unsupported type")

// MIDIPitch is a bare MIDI note number
type MIDIPitch int

// Note is a single sounding note
type Note struct {
	MIDI     int     `json:"midi"`
	Velocity int     `json:"velocity,omitempty"`
	Duration float64 `json:"duration,omitempty"` // beats
}

// Chord is a group of simultaneous notes
type Chord struct {
	Notes []Note `json:"notes"`
}

// PitchOf maps a MIDI note number to an unbounded 12-division pitch
func PitchOf(midi int) pitch.Pitch {
	return pitch.Pitch{Value: midi - MiddleC, Variant: pitch.Pitch12}
}

// ToSet converts a Note, *Note, MIDIPitch, Chord or *Chord into a Pitch12
// set. Any other value, including nil pointers, fails with
// ErrUnsupportedType.
func ToSet(item any) (pset.Set, error) {
	var midi []int

	switch v := item.(type) {
	case Note:
		midi = []int{v.MIDI}
	case *Note:
		if v == nil {
			return fail(item)
		}
		midi = []int{v.MIDI}
	case MIDIPitch:
		midi = []int{int(v)}
	case Chord:
		midi = chordMIDI(v)
	case *Chord:
		if v == nil {
			return fail(item)
		}
		midi = chordMIDI(*v)
	default:
		return fail(item)
	}

	pitches := make([]pitch.Pitch, len(midi))
	for i, m := range midi {
		pitches[i] = PitchOf(m)
	}
	return pset.FromPitchesOf(pitch.Pitch12, pitches...)
}

func chordMIDI(c Chord) []int {
	midi := make([]int, len(c.Notes))
	for i, n := range c.Notes {
		midi[i] = n.MIDI
	}
	return midi
}

func fail(item any) (pset.Set, error) {
	err := fmt.Errorf("%w: %T", ErrUnsupportedType, item)
	logging.Warn("Notation item rejected", logging.Fields{
		"component": "notation_adapter",
		"type":      fmt.Sprintf("%T", item),
	})
	return pset.Set{}, err
}
