package pitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/pitch"
)

func TestVariant_ModulusAndDivision(t *testing.T) {
	cases := []struct {
		v        pitch.Variant
		modulus  int
		division int
		valid    bool
	}{
		{pitch.VariantUnknown, 0, 0, false},
		{pitch.Pitch12, 0, 12, true},
		{pitch.Pitch24, 0, 24, true},
		{pitch.PitchClass12, 12, 12, true},
		{pitch.PitchClass24, 24, 24, true},
		{pitch.Variant(99), 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.v.String(), func(t *testing.T) {
			assert.Equal(t, c.modulus, c.v.Modulus())
			assert.Equal(t, c.division, c.v.Division())
			assert.Equal(t, c.valid, c.v.Valid())
		})
	}
}

func TestNew_RejectsUnknownVariant(t *testing.T) {
	_, err := pitch.New(pitch.VariantUnknown, 3)
	require.ErrorIs(t, err, pitch.ErrInvalidVariant)

	p, err := pitch.New(pitch.PitchClass12, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Value, "values are not pre-reduced")
}

func TestPitch_Equality(t *testing.T) {
	a := pitch.Pitch{Value: 4, Variant: pitch.PitchClass12}
	assert.Equal(t, a, pitch.Pitch{Value: 4, Variant: pitch.PitchClass12})
	assert.NotEqual(t, a, pitch.Pitch{Value: 4, Variant: pitch.Pitch12})
	assert.NotEqual(t, a, pitch.Pitch{Value: 16, Variant: pitch.PitchClass12})
}

func TestPitch_Arithmetic(t *testing.T) {
	p := pitch.Pitch{Value: 3, Variant: pitch.Pitch12}
	assert.Equal(t, 10, p.Add(7).Value)
	assert.Equal(t, -3, p.Neg().Value)
	assert.Equal(t, 16, p.Affine(5, 1).Value)
	assert.Equal(t, pitch.Pitch12, p.Affine(5, 1).Variant)
}

func TestPitch_ClassAndName(t *testing.T) {
	cases := []struct {
		p     pitch.Pitch
		class int
		name  string
	}{
		{pitch.Pitch{Value: 0, Variant: pitch.Pitch12}, 0, "C4"},
		{pitch.Pitch{Value: -1, Variant: pitch.Pitch12}, 11, "B3"},
		{pitch.Pitch{Value: 16, Variant: pitch.Pitch12}, 4, "E5"},
		{pitch.Pitch{Value: 13, Variant: pitch.PitchClass12}, 1, "C#"},
		{pitch.Pitch{Value: 25, Variant: pitch.Pitch24}, 1, "1@5"},
		{pitch.Pitch{Value: -3, Variant: pitch.PitchClass24}, 21, "21"},
	}
	for _, c := range cases {
		assert.Equal(t, c.class, c.p.Class(), "class of %v", c.p)
		assert.Equal(t, c.name, c.p.Name(), "name of %v", c.p)
	}
}
