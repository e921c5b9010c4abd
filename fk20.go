package kzg

import (
	"github.com/pkg/errors"

	"github.com/BaVilius/rust-kzg/internal/dparallel"
)

// computeFK20Proofs computes all 2k cell proofs for poly (monomial form,
// length n=FieldElementsPerBlob) in one quasi-linear pass, per spec.md
// §4.6, where k=n/FieldElementsPerCell. The upper k entries of the
// intermediate vector h are zeroed before the final forward FFT; every one
// of the 2k results is a cell proof, in bit-reversed cell order.
func computeFK20Proofs(poly []Fr, n int, ks *KZGSettings) ([]G1, error) {
	k := n / FieldElementsPerCell
	k2 := 2 * k

	coeffs := make([][]Fr, k2)
	for j := range coeffs {
		coeffs[j] = make([]Fr, FieldElementsPerCell)
	}

	err := dparallel.Range(FieldElementsPerCell, func(start, end int) error {
		for l := start; l < end; l++ {
			toeplitzVec, err := toeplitzCoeffsStride(poly, n, l, FieldElementsPerCell)
			if err != nil {
				return err
			}
			transformed, err := ks.FFTSettings.FFTFr(toeplitzVec, false)
			if err != nil {
				return err
			}
			for j := 0; j < k2; j++ {
				coeffs[j][l] = transformed[j]
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "compute fk20 proofs: toeplitz column FFTs")
	}

	hExtFFT := make([]G1, k2)
	for j := 0; j < k2; j++ {
		hExtFFT[j] = G1LinComb(ks.XExtFFTColumn(j), coeffs[j], FieldElementsPerCell, nil)
	}

	h, err := ks.FFTSettings.FFTG1(hExtFFT, true)
	if err != nil {
		return nil, errors.Wrap(err, "compute fk20 proofs: inverse G1 FFT")
	}
	for i := k; i < k2; i++ {
		h[i] = G1Identity()
	}

	out, err := ks.FFTSettings.FFTG1(h, false)
	if err != nil {
		return nil, errors.Wrap(err, "compute fk20 proofs: forward G1 FFT")
	}
	return out, nil
}
