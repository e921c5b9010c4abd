package kzg

import (
	"math/big"

	"github.com/pkg/errors"
)

// scalarFieldModulus is the BLS12-381 scalar field order.
var scalarFieldModulus, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// primitiveRootOfUnity is the standard EIP-4844/EIP-7594 generator used to
// derive roots of unity of every power-of-two order dividing
// scalarFieldModulus-1. It is the same constant used as the coset shift in
// cosetFFT/cosetIFFT (spec.md §4.3) -- not a coincidence, both come from the consensus
// spec's single PRIMITIVE_ROOT_OF_UNITY constant.
var primitiveRootOfUnity = FrFromU64(7)

// FFTSettings holds the expanded roots of unity for a power-of-two domain
// of size maxWidth, and exposes FFT/IFFT over Fr and G1.
type FFTSettings struct {
	maxWidth             uint64
	expandedRootsOfUnity []Fr // length maxWidth+1; roots[maxWidth] == roots[0]
	reverseRootsOfUnity  []Fr // reverseRoots[i] == roots[maxWidth-i]
}

// NewFFTSettings builds an FFTSettings whose domain has 2^maxScale
// elements.
func NewFFTSettings(maxScale uint8) *FFTSettings {
	maxWidth := uint64(1) << maxScale

	exponent := new(big.Int).Sub(scalarFieldModulus, big.NewInt(1))
	exponent.Div(exponent, new(big.Int).SetUint64(maxWidth))
	root := primitiveRootOfUnity.Pow(exponent)

	expanded := make([]Fr, maxWidth+1)
	reverse := make([]Fr, maxWidth+1)
	current := FrOne()
	for i := uint64(0); i <= maxWidth; i++ {
		expanded[i] = current
		current = current.Mul(root)
	}
	for i := uint64(0); i <= maxWidth; i++ {
		reverse[i] = expanded[(maxWidth-i)%maxWidth]
	}

	return &FFTSettings{
		maxWidth:             maxWidth,
		expandedRootsOfUnity: expanded,
		reverseRootsOfUnity:  reverse,
	}
}

// GetRootsOfUnityAt returns the i-th root of unity in the expanded table.
func (fs *FFTSettings) GetRootsOfUnityAt(i uint64) Fr {
	return fs.expandedRootsOfUnity[i]
}

// MaxWidth returns the size of the domain this FFTSettings was built for.
func (fs *FFTSettings) MaxWidth() uint64 {
	return fs.maxWidth
}

func (fs *FFTSettings) rootsForSize(n uint64, inverse bool) ([]Fr, uint64, error) {
	if n == 0 || n > fs.maxWidth || fs.maxWidth%n != 0 {
		return nil, 0, errors.Wrapf(ErrInvalidLength, "fft: length %d incompatible with max width %d", n, fs.maxWidth)
	}
	stride := fs.maxWidth / n
	if inverse {
		return fs.reverseRootsOfUnity, stride, nil
	}
	return fs.expandedRootsOfUnity, stride, nil
}

// FFTFr computes the forward (inverse=false) or inverse DFT of vals over
// Fr. len(vals) must be a power of two dividing maxWidth.
func (fs *FFTSettings) FFTFr(vals []Fr, inverse bool) ([]Fr, error) {
	if len(vals) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "fft: empty input")
	}
	roots, stride, err := fs.rootsForSize(uint64(len(vals)), inverse)
	if err != nil {
		return nil, err
	}

	out := fftFrRecursive(vals, roots, 0, stride, 1)

	if inverse {
		invLen, err := FrFromU64(uint64(len(vals))).Inverse()
		if err != nil {
			return nil, errors.Wrap(err, "fft: invert domain size")
		}
		for i := range out {
			out[i] = out[i].Mul(invLen)
		}
	}
	return out, nil
}

// FFTG1 is the G1 analogue of FFTFr.
func (fs *FFTSettings) FFTG1(vals []G1, inverse bool) ([]G1, error) {
	if len(vals) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "fft: empty input")
	}
	roots, stride, err := fs.rootsForSize(uint64(len(vals)), inverse)
	if err != nil {
		return nil, err
	}

	out := fftG1Recursive(vals, roots, 0, stride, 1)

	if inverse {
		invLen, err := FrFromU64(uint64(len(vals))).Inverse()
		if err != nil {
			return nil, errors.Wrap(err, "fft: invert domain size")
		}
		for i := range out {
			out[i] = out[i].Mul(invLen)
		}
	}
	return out, nil
}

// fftFrRecursive is the classic radix-2 recursive FFT: split into
// even/odd halves, recurse, then combine with twiddle factors drawn from
// the precomputed roots table at the given stride.
func fftFrRecursive(vals []Fr, roots []Fr, rootsOffset, rootsStride uint64, valsStride int) []Fr {
	if len(vals) == 1 {
		return []Fr{vals[0]}
	}

	half := len(vals) / 2

	// vals is implicitly strided by valsStride starting at index 0; the
	// caller always hands us a freshly sliced/copied buffer so a plain
	// even/odd split on the slice itself is correct.
	evens := make([]Fr, half)
	odds := make([]Fr, half)
	for i := 0; i < half; i++ {
		evens[i] = vals[2*i]
		odds[i] = vals[2*i+1]
	}

	l := fftFrRecursive(evens, roots, rootsOffset, rootsStride*2, valsStride)
	r := fftFrRecursive(odds, roots, rootsOffset, rootsStride*2, valsStride)

	out := make([]Fr, len(vals))
	for i := 0; i < half; i++ {
		yTimesRoot := r[i].Mul(roots[rootsOffset+uint64(i)*rootsStride])
		out[i] = l[i].Add(yTimesRoot)
		out[i+half] = l[i].Sub(yTimesRoot)
	}
	return out
}

func fftG1Recursive(vals []G1, roots []Fr, rootsOffset, rootsStride uint64, valsStride int) []G1 {
	if len(vals) == 1 {
		return []G1{vals[0]}
	}

	half := len(vals) / 2

	evens := make([]G1, half)
	odds := make([]G1, half)
	for i := 0; i < half; i++ {
		evens[i] = vals[2*i]
		odds[i] = vals[2*i+1]
	}

	l := fftG1Recursive(evens, roots, rootsOffset, rootsStride*2, valsStride)
	r := fftG1Recursive(odds, roots, rootsOffset, rootsStride*2, valsStride)

	out := make([]G1, len(vals))
	for i := 0; i < half; i++ {
		yTimesRoot := r[i].Mul(roots[rootsOffset+uint64(i)*rootsStride])
		out[i] = l[i].Add(yTimesRoot)
		out[i+half] = l[i].Sub(yTimesRoot)
	}
	return out
}
