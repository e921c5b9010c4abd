package kzg

import "github.com/pkg/errors"

// recoverCells reconstructs every entry of buf (length
// FieldElementsPerExtBlob, with missing positions set to FrNull()) given
// the cell indices that are actually present, per spec.md §4.7.
func recoverCells(buf []Fr, presentCellIndices []int, fs *FFTSettings) error {
	present := make(map[int]bool, len(presentCellIndices))
	for _, idx := range presentCellIndices {
		present[idx] = true
	}

	missingCellIndices := make([]int, 0, CellsPerExtBlob)
	for i := 0; i < CellsPerExtBlob; i++ {
		if !present[i] {
			missingCellIndices = append(missingCellIndices, int(ReverseBitsLimited(CellsPerExtBlob, uint32(i))))
		}
	}

	if len(missingCellIndices) > CellsPerExtBlob/2 {
		return errors.Wrapf(ErrInsufficientCells, "%d cells missing, at most %d tolerated", len(missingCellIndices), CellsPerExtBlob/2)
	}
	if len(missingCellIndices) == 0 {
		// Nothing to reconstruct: buf is already complete, in the same
		// cell-order layout callers expect back. Callers are expected to
		// skip recovery entirely in this case; this is a defensive no-op,
		// not a path callers rely on.
		return nil
	}

	cellsBRP := make([]Fr, len(buf))
	copy(cellsBRP, buf)
	if err := ReverseBitOrderFr(cellsBRP); err != nil {
		return errors.Wrap(err, "recover cells: bit-reverse input")
	}

	vanishingPolyCoeff, err := vanishingPolynomialForMissingCells(missingCellIndices, fs)
	if err != nil {
		return errors.Wrap(err, "recover cells: build vanishing polynomial")
	}

	zEval, err := fs.FFTFr(vanishingPolyCoeff, false)
	if err != nil {
		return errors.Wrap(err, "recover cells: evaluate vanishing polynomial")
	}

	eTimesZ := make([]Fr, FieldElementsPerExtBlob)
	for i := 0; i < FieldElementsPerExtBlob; i++ {
		if cellsBRP[i].IsNull() {
			eTimesZ[i] = FrZero()
		} else {
			eTimesZ[i] = cellsBRP[i].Mul(zEval[i])
		}
	}

	eTimesZCoeffs, err := fs.FFTFr(eTimesZ, true)
	if err != nil {
		return errors.Wrap(err, "recover cells: interpolate E*Z")
	}

	eCoset, err := fs.cosetFFT(eTimesZCoeffs)
	if err != nil {
		return errors.Wrap(err, "recover cells: coset FFT of E*Z")
	}
	zCoset, err := fs.cosetFFT(vanishingPolyCoeff)
	if err != nil {
		return errors.Wrap(err, "recover cells: coset FFT of Z")
	}

	for i := range eCoset {
		div, err := eCoset[i].Div(zCoset[i])
		if err != nil {
			// By choice of coset (g=7), zCoset[i] is never zero for a
			// well-formed vanishing polynomial; a failure here indicates a
			// broken setup or corrupted domain, not caller error.
			return errors.Wrap(ErrArithmeticFailure, "recover cells: coset division by zero")
		}
		eCoset[i] = div
	}

	reconstructedCoeff, err := fs.cosetIFFT(eCoset)
	if err != nil {
		return errors.Wrap(err, "recover cells: coset IFFT")
	}

	out, err := fs.FFTFr(reconstructedCoeff, false)
	if err != nil {
		return errors.Wrap(err, "recover cells: final evaluation")
	}
	if err := ReverseBitOrderFr(out); err != nil {
		return errors.Wrap(err, "recover cells: bit-reverse output")
	}

	copy(buf, out)
	return nil
}

// vanishingPolynomialForMissingCells expands the short vanishing
// polynomial (whose roots are the coset generators of the missing cells)
// into a length-FieldElementsPerExtBlob coefficient vector with the short
// polynomial's coefficients strided every FieldElementsPerCell positions.
func vanishingPolynomialForMissingCells(missingCellIndices []int, fs *FFTSettings) ([]Fr, error) {
	stride := uint64(FieldElementsPerExtBlob / CellsPerExtBlob)

	roots := make([]Fr, len(missingCellIndices))
	for i, idx := range missingCellIndices {
		roots[i] = fs.GetRootsOfUnityAt(uint64(idx) * stride)
	}

	short, err := vanishingPolynomialFromRoots(roots)
	if err != nil {
		return nil, err
	}

	out := make([]Fr, FieldElementsPerExtBlob)
	for i := range out {
		out[i] = FrZero()
	}
	for i, coeff := range short {
		out[i*FieldElementsPerCell] = coeff
	}
	return out, nil
}
