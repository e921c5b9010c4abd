package kzg

import "github.com/pkg/errors"

// shiftPoly replaces p[i] with p[i]*factor^i in place, leaving p[0]
// unchanged.
func shiftPoly(p []Fr, factor Fr) {
	power := FrOne()
	for i := 1; i < len(p); i++ {
		power = power.Mul(factor)
		p[i] = p[i].Mul(power)
	}
}

// cosetFFT computes FFT(shiftPoly(input, g)) for the fixed coset
// generator g=7.
func (fs *FFTSettings) cosetFFT(input []Fr) ([]Fr, error) {
	if len(input) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "coset fft: empty input")
	}
	shifted := make([]Fr, len(input))
	copy(shifted, input)
	shiftPoly(shifted, FrFromU64(cosetGenerator))
	return fs.FFTFr(shifted, false)
}

// cosetIFFT computes shiftPoly(IFFT(input), 1/g).
func (fs *FFTSettings) cosetIFFT(input []Fr) ([]Fr, error) {
	if len(input) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "coset ifft: empty input")
	}
	out, err := fs.FFTFr(input, true)
	if err != nil {
		return nil, err
	}
	invG, err := FrFromU64(cosetGenerator).Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "coset ifft: invert coset generator")
	}
	shiftPoly(out, invG)
	return out, nil
}
