package kzg

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// BlobToKZGCommitment commits to blob's Lagrange-form evaluations, the
// prerequisite for every proof and verification operation in this package.
func BlobToKZGCommitment(ks *KZGSettings, blob []Fr) (G1, error) {
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return G1{}, errors.Wrap(err, "blob to commitment: blob to polynomial")
	}
	if err := polyLagrangeToMonomial(ks.FFTSettings, poly); err != nil {
		return G1{}, errors.Wrap(err, "blob to commitment: lagrange to monomial")
	}
	return G1LinComb(ks.G1Monomial(), poly, FieldElementsPerBlob, nil), nil
}

// ComputeCellsAndKZGProofs extends blob (FieldElementsPerBlob Lagrange-form
// scalars) to the full set of CellsPerExtBlob cells and their FK20 proofs,
// per spec.md §4.9.
func ComputeCellsAndKZGProofs(ks *KZGSettings, blob []Fr) ([]Cell, []G1, error) {
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return nil, nil, errors.Wrap(err, "compute cells and proofs: blob to polynomial")
	}

	if err := polyLagrangeToMonomial(ks.FFTSettings, poly); err != nil {
		return nil, nil, errors.Wrap(err, "compute cells and proofs: lagrange to monomial")
	}

	extendedCoeffs := make([]Fr, FieldElementsPerExtBlob)
	for i := range extendedCoeffs {
		extendedCoeffs[i] = FrZero()
	}
	copy(extendedCoeffs, poly)

	extendedEval, err := ks.FFTSettings.FFTFr(extendedCoeffs, false)
	if err != nil {
		return nil, nil, errors.Wrap(err, "compute cells and proofs: extend to evaluation form")
	}
	if err := ReverseBitOrderFr(extendedEval); err != nil {
		return nil, nil, errors.Wrap(err, "compute cells and proofs: bit-reverse evaluations")
	}

	cells := make([]Cell, CellsPerExtBlob)
	for i := 0; i < CellsPerExtBlob; i++ {
		copy(cells[i][:], extendedEval[i*FieldElementsPerCell:(i+1)*FieldElementsPerCell])
	}

	proofs, err := computeFK20Proofs(poly, FieldElementsPerBlob, ks)
	if err != nil {
		return nil, nil, errors.Wrap(err, "compute cells and proofs: fk20")
	}
	if err := ReverseBitOrderG1(proofs); err != nil {
		return nil, nil, errors.Wrap(err, "compute cells and proofs: bit-reverse proofs")
	}

	log.Debug().Int("cells", len(cells)).Int("proofs", len(proofs)).Msg("computed cells and kzg proofs")
	return cells, proofs, nil
}

// RecoverCellsAndKZGProofs reconstructs every missing cell given at least
// half of CellsPerExtBlob distinct present cells, and recomputes the full
// proof set for the recovered blob, per spec.md §4.9.
func RecoverCellsAndKZGProofs(ks *KZGSettings, cellIndices []int, cells []Cell) ([]Cell, []G1, error) {
	if len(cellIndices) != len(cells) {
		return nil, nil, errors.Wrapf(ErrInvalidLength, "recover cells: %d indices, %d cells", len(cellIndices), len(cells))
	}
	if len(cellIndices) == 0 {
		return nil, nil, errors.Wrap(ErrEmptyInput, "recover cells: no cells provided")
	}
	if len(cellIndices) > CellsPerExtBlob {
		return nil, nil, errors.Wrapf(ErrInvalidLength, "recover cells: %d cells given, at most %d allowed", len(cellIndices), CellsPerExtBlob)
	}
	if len(cellIndices) < CellsPerExtBlob/2 {
		return nil, nil, errors.Wrapf(ErrInsufficientCells, "recover cells: %d cells given, at least %d required", len(cellIndices), CellsPerExtBlob/2)
	}

	buf := make([]Fr, FieldElementsPerExtBlob)
	for i := range buf {
		buf[i] = FrNull()
	}

	seen := make(map[int]bool, len(cellIndices))
	for i, idx := range cellIndices {
		if idx < 0 || idx >= CellsPerExtBlob {
			return nil, nil, errors.Wrapf(ErrInvalidIndex, "recover cells: cell index %d out of range", idx)
		}
		if seen[idx] {
			return nil, nil, errors.Wrapf(ErrDuplicateIndex, "recover cells: cell index %d supplied twice", idx)
		}
		seen[idx] = true
		copy(buf[idx*FieldElementsPerCell:(idx+1)*FieldElementsPerCell], cells[i][:])
	}

	if len(cellIndices) != CellsPerExtBlob {
		if err := recoverCells(buf, cellIndices, ks.FFTSettings); err != nil {
			return nil, nil, errors.Wrap(err, "recover cells")
		}
	}

	recoveredCells := make([]Cell, CellsPerExtBlob)
	for i := 0; i < CellsPerExtBlob; i++ {
		copy(recoveredCells[i][:], buf[i*FieldElementsPerCell:(i+1)*FieldElementsPerCell])
	}

	monomial := make([]Fr, FieldElementsPerExtBlob)
	copy(monomial, buf)
	if err := polyLagrangeToMonomial(ks.FFTSettings, monomial); err != nil {
		return nil, nil, errors.Wrap(err, "recover cells: lagrange to monomial")
	}
	poly := monomial[:FieldElementsPerBlob]

	proofs, err := computeFK20Proofs(poly, FieldElementsPerBlob, ks)
	if err != nil {
		return nil, nil, errors.Wrap(err, "recover cells: fk20")
	}
	if err := ReverseBitOrderG1(proofs); err != nil {
		return nil, nil, errors.Wrap(err, "recover cells: bit-reverse proofs")
	}

	log.Debug().Int("present", len(cellIndices)).Msg("recovered cells and kzg proofs")
	return recoveredCells, proofs, nil
}
