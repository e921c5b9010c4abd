package kzg

import "github.com/pkg/errors"

// toeplitzCoeffsStride builds the length-2k Toeplitz coefficient vector
// for column offset within a strided view of poly (spec.md §4.6 step 1):
//
//	out[0]          = poly[n-1-offset]
//	out[1..=k+1]    = 0
//	out[k+2..2k]    = poly[2*stride-offset-1 + (i-(k+2))*stride]
func toeplitzCoeffsStride(poly []Fr, n, offset, stride int) ([]Fr, error) {
	if stride == 0 {
		return nil, errors.Wrap(ErrInvalidLength, "toeplitz coeffs: stride cannot be zero")
	}

	k := n / stride
	k2 := k * 2

	out := make([]Fr, k2)
	out[0] = poly[n-1-offset]

	for i := 1; i <= k+1 && i < k2; i++ {
		out[i] = FrZero()
	}

	j := 2*stride - offset - 1
	for i := k + 2; i < k2; i++ {
		out[i] = poly[j]
		j += stride
	}

	return out, nil
}
