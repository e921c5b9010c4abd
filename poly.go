package kzg

import "github.com/pkg/errors"

// polyLagrangeToMonomial converts a polynomial in bit-reversed Lagrange
// form over fs's domain into monomial form, in place: bit-reverse the
// coefficient vector, then inverse FFT.
func polyLagrangeToMonomial(fs *FFTSettings, lagrangePoly []Fr) error {
	buf := make([]Fr, len(lagrangePoly))
	copy(buf, lagrangePoly)

	if err := ReverseBitOrderFr(buf); err != nil {
		return err
	}

	monomial, err := fs.FFTFr(buf, true)
	if err != nil {
		return err
	}
	copy(lagrangePoly, monomial)
	return nil
}

// polyMonomialToLagrange is the inverse direction: forward FFT then
// bit-reverse.
func polyMonomialToLagrange(fs *FFTSettings, monomialPoly []Fr) ([]Fr, error) {
	out, err := fs.FFTFr(monomialPoly, false)
	if err != nil {
		return nil, err
	}
	if err := ReverseBitOrderFr(out); err != nil {
		return nil, err
	}
	return out, nil
}

// blobToPolynomial validates that blob has the expected length and returns
// a defensive copy interpreted as a Lagrange-form polynomial.
func blobToPolynomial(blob []Fr) ([]Fr, error) {
	if len(blob) != FieldElementsPerBlob {
		return nil, errors.Wrapf(ErrInvalidLength, "blob has %d elements, want %d", len(blob), FieldElementsPerBlob)
	}
	poly := make([]Fr, FieldElementsPerBlob)
	copy(poly, blob)
	return poly, nil
}
