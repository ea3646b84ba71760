package pset

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/common"
)

// Characteristic returns the pitch-class indicator vector of s: a slice of
// length Division() with 1 at every class occupied by a member
func Characteristic(s Set) ([]float64, error) {
	n := s.variant.Division()
	if n == 0 {
		return nil, ErrMissingModulus
	}
	vec := make([]float64, n)
	for x := range s.members {
		vec[common.Mod(x, n)] = 1
	}
	return vec, nil
}

// DFT returns Fourier coefficients 0..Division/2 of the characteristic
// vector, computed with mjibson/go-dsp
func DFT(s Set) ([]complex128, error) {
	vec, err := Characteristic(s)
	if err != nil {
		return nil, err
	}
	coeffs := fft.FFTReal(vec)
	return coeffs[:len(vec)/2+1], nil
}

// DFTMagnitudes returns |DFT(s)|. Component 0 is the number of distinct
// pitch classes; every component is invariant under transposition and
// inversion.
func DFTMagnitudes(s Set) ([]float64, error) {
	coeffs, err := DFT(s)
	if err != nil {
		return nil, err
	}
	mags := make([]float64, len(coeffs))
	for k, c := range coeffs {
		mags[k] = cmplx.Abs(c)
	}
	return mags, nil
}
