package kzg

import "github.com/pkg/errors"

// KZGSettings is the immutable trusted setup plus its FK20 precomputation.
// Once constructed it is safe to share by read-only reference across
// goroutines (spec.md §5 "Shared state").
type KZGSettings struct {
	FFTSettings *FFTSettings

	// g1Monomial holds [tau^i]_1 for i in [0, FieldElementsPerBlob).
	g1Monomial []G1

	// g2Monomial holds [tau^i]_2 for the small range of i the batch
	// verifier needs (i up to FieldElementsPerCell).
	g2Monomial []G2

	// xExtFFTColumns[j][l] is the FK20 precomputation described in
	// spec.md §4.6: FFTs of the reversed monomial-basis trusted setup
	// vectors, indexed row-major (row j in [0, 2k), column l in
	// [0, FieldElementsPerCell)).
	xExtFFTColumns [][]G1
}

// NewKZGSettings builds a KZGSettings from an already-validated trusted
// setup. Loading and validating the setup bytes themselves is external to
// this package (see setup.go for the JSON convenience loader); this
// constructor only runs the FK20 precomputation.
func NewKZGSettings(fs *FFTSettings, g1Monomial []G1, g2Monomial []G2) (*KZGSettings, error) {
	if len(g1Monomial) != FieldElementsPerBlob {
		return nil, errors.Wrapf(ErrInvalidLength, "g1 monomial setup has %d points, want %d", len(g1Monomial), FieldElementsPerBlob)
	}
	if len(g2Monomial) <= FieldElementsPerCell {
		return nil, errors.Wrapf(ErrInvalidLength, "g2 monomial setup has %d points, need more than %d", len(g2Monomial), FieldElementsPerCell)
	}

	ks := &KZGSettings{
		FFTSettings: fs,
		g1Monomial:  g1Monomial,
		g2Monomial:  g2Monomial,
	}

	columns, err := ks.computeXExtFFTColumns()
	if err != nil {
		return nil, errors.Wrap(err, "precompute FK20 x_ext_fft columns")
	}
	ks.xExtFFTColumns = columns

	return ks, nil
}

// G1Monomial returns the [tau^i]_1 trusted-setup vector.
func (ks *KZGSettings) G1Monomial() []G1 { return ks.g1Monomial }

// G2Monomial returns the [tau^i]_2 trusted-setup vector.
func (ks *KZGSettings) G2Monomial() []G2 { return ks.g2Monomial }

// XExtFFTColumn returns row j of the precomputed FK20 matrix.
func (ks *KZGSettings) XExtFFTColumn(j int) []G1 { return ks.xExtFFTColumns[j] }

// computeXExtFFTColumns builds the FK20 precomputation matrix: for every
// column l, the reversed-strided, identity-padded trusted setup vector
// (toeplitzPart1ForSetup) is forward-FFT'd once, at settings-construction
// time.
func (ks *KZGSettings) computeXExtFFTColumns() ([][]G1, error) {
	n := FieldElementsPerBlob
	k := n / FieldElementsPerCell
	k2 := 2 * k

	columns := make([][]G1, k2)
	for j := range columns {
		columns[j] = make([]G1, FieldElementsPerCell)
	}

	for l := 0; l < FieldElementsPerCell; l++ {
		toeplitzVec := toeplitzPart1ForSetup(ks.g1Monomial, n, l, FieldElementsPerCell)
		transformed, err := ks.FFTSettings.FFTG1(toeplitzVec, false)
		if err != nil {
			return nil, err
		}
		for j := 0; j < k2; j++ {
			columns[j][l] = transformed[j]
		}
	}

	return columns, nil
}

// toeplitzPart1ForSetup builds the length-2k circulant vector x for column
// offset of the trusted setup (the first part of the three-part Toeplitz
// matrix/vector product FK20 uses): x[i] = setup[start-i*stride] for
// i in [0, k-1), identity for i in [k-1, 2k), where start = n-stride-1-offset.
func toeplitzPart1ForSetup(setup []G1, n, offset, stride int) []G1 {
	k := n / stride
	k2 := k * 2

	out := make([]G1, k2)
	start := n - stride - 1 - offset
	for i := 0; i < k-1; i++ {
		out[i] = setup[start-i*stride]
	}
	for i := k - 1; i < k2; i++ {
		out[i] = G1Identity()
	}

	return out
}
