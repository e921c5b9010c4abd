package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"

	"github.com/BaVilius/rust-kzg/internal/dparallel"
)

// Cell is a fixed-size block of FieldElementsPerCell scalars.
type Cell [FieldElementsPerCell]Fr

// VerifyCellKZGProofBatch verifies a batch of (commitment, cell index,
// cell, proof) tuples in a single pairing check, per spec.md §4.8.
func VerifyCellKZGProofBatch(ks *KZGSettings, commitments []G1, cellIndices []int, cells []Cell, proofs []G1) (bool, error) {
	n := len(cells)
	if len(cellIndices) != n || len(commitments) != n || len(proofs) != n {
		return false, errors.Wrapf(ErrInvalidLength, "batch verify: mismatched lengths (commitments=%d, cellIndices=%d, cells=%d, proofs=%d)",
			len(commitments), len(cellIndices), n, len(proofs))
	}
	if n == 0 {
		return true, nil
	}

	for _, idx := range cellIndices {
		if idx < 0 || idx >= CellsPerExtBlob {
			return false, errors.Wrapf(ErrInvalidIndex, "batch verify: cell index %d out of range", idx)
		}
	}
	for i, proof := range proofs {
		if !proof.IsValid() {
			return false, errors.Wrapf(ErrInvalidPoint, "batch verify: proof %d is not a valid subgroup element", i)
		}
	}

	uniqueCommitments, commitmentIndices := deduplicateCommitments(commitments)
	for i, c := range uniqueCommitments {
		if !c.IsValid() {
			return false, errors.Wrapf(ErrInvalidPoint, "batch verify: commitment %d is not a valid subgroup element", i)
		}
	}

	rPowers, err := computeRPowersForVerifyCellKZGProofBatch(uniqueCommitments, commitmentIndices, cellIndices, cells, proofs)
	if err != nil {
		return false, errors.Wrap(err, "batch verify: derive challenge")
	}

	proofLinComb := G1LinComb(proofs, rPowers, n, nil)

	weightedCommitments, err := computeWeightedSumOfCommitments(uniqueCommitments, commitmentIndices, rPowers)
	if err != nil {
		return false, errors.Wrap(err, "batch verify: weighted commitment sum")
	}

	interpolationCommit, err := computeCommitmentToAggregatedInterpolationPoly(rPowers, cellIndices, cells, ks.FFTSettings, ks.G1Monomial())
	if err != nil {
		return false, errors.Wrap(err, "batch verify: interpolation polynomial commitment")
	}

	weightedProofs, err := computeWeightedSumOfProofs(proofs, rPowers, cellIndices, ks.FFTSettings)
	if err != nil {
		return false, errors.Wrap(err, "batch verify: weighted proof sum")
	}

	finalG1Sum := weightedCommitments.Sub(interpolationCommit).Add(weightedProofs)

	powerOfS := ks.G2Monomial()[FieldElementsPerCell]

	return Verify(finalG1Sum, G2Generator(), proofLinComb, powerOfS), nil
}

// deduplicateCommitments returns an order-preserving unique commitment
// list and, for every original row, the index of its commitment within
// that list.
func deduplicateCommitments(commitments []G1) ([]G1, []int) {
	unique := make([]G1, 0, len(commitments))
	indices := make([]int, len(commitments))

	for i, c := range commitments {
		found := -1
		for j, u := range unique {
			if c.Equal(u) {
				found = j
				break
			}
		}
		if found == -1 {
			unique = append(unique, c)
			found = len(unique) - 1
		}
		indices[i] = found
	}

	return unique, indices
}

// computeRPowersForVerifyCellKZGProofBatch derives the Fiat-Shamir
// challenge r per the normative byte layout in spec.md §6, and returns
// its powers [1, r, ..., r^(n-1)].
func computeRPowersForVerifyCellKZGProofBatch(uniqueCommitments []G1, commitmentIndices []int, cellIndices []int, cells []Cell, proofs []G1) ([]Fr, error) {
	n := len(cells)

	size := 16 + 8 + 8 + 8
	size += len(uniqueCommitments) * 48
	size += n * (8 + 8 + FieldElementsPerCell*32 + 48)

	buf := make([]byte, size)
	offset := 0

	copy(buf[offset:], randomChallengeKZGCellBatchDomain[:])
	offset += 16

	binary.BigEndian.PutUint64(buf[offset:], uint64(FieldElementsPerCell))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(len(uniqueCommitments)))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(n))
	offset += 8

	for _, c := range uniqueCommitments {
		b := c.ToBytes()
		copy(buf[offset:], b[:])
		offset += 48
	}

	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(buf[offset:], uint64(commitmentIndices[i]))
		offset += 8
		binary.BigEndian.PutUint64(buf[offset:], uint64(cellIndices[i]))
		offset += 8
		for _, fr := range cells[i] {
			b := fr.ToBytes()
			copy(buf[offset:], b[:])
			offset += 32
		}
		b := proofs[i].ToBytes()
		copy(buf[offset:], b[:])
		offset += 48
	}

	if offset != size {
		return nil, errors.Wrap(ErrInvalidLength, "challenge buffer: size mismatch")
	}

	digest := sha256.Sum256(buf)
	r := hashToBLSField(digest)

	return computePowers(r, n), nil
}

// computeWeightedSumOfCommitments folds r_powers into per-commitment
// weights (spec.md §4.8 step 3). Partial weight vectors are accumulated
// per goroutine and combined in a fixed index order, keeping the result
// deterministic regardless of thread count (spec.md §5 "Ordering").
func computeWeightedSumOfCommitments(uniqueCommitments []G1, commitmentIndices []int, rPowers []Fr) (G1, error) {
	numUnique := len(uniqueCommitments)
	weights := make([]Fr, numUnique)
	for i := range weights {
		weights[i] = FrZero()
	}

	// partials[start] holds the chunk starting at start; unused slots stay nil.
	partials := make([][]Fr, len(rPowers))
	var mu sync.Mutex

	err := dparallel.Range(len(rPowers), func(start, end int) error {
		local := make([]Fr, numUnique)
		for i := range local {
			local[i] = FrZero()
		}
		for i := start; i < end; i++ {
			idx := commitmentIndices[i]
			local[idx] = local[idx].Add(rPowers[i])
		}
		mu.Lock()
		partials[start] = local
		mu.Unlock()
		return nil
	})
	if err != nil {
		return G1{}, err
	}

	for _, local := range partials {
		if local == nil {
			continue
		}
		for i := range weights {
			weights[i] = weights[i].Add(local[i])
		}
	}

	return G1LinComb(uniqueCommitments, weights, numUnique, nil), nil
}

// getInvCosetShiftForCell returns h_k^{-1}, the inverse coset generator
// for cellIndex.
func getInvCosetShiftForCell(cellIndex int, fs *FFTSettings) (Fr, error) {
	cellIndexRBL := cellIndicesRBL[cellIndex]
	if cellIndexRBL > FieldElementsPerExtBlob {
		return Fr{}, errors.Wrap(ErrInvalidIndex, "invalid cell index")
	}
	invIdx := FieldElementsPerExtBlob - cellIndexRBL
	return fs.GetRootsOfUnityAt(uint64(invIdx)), nil
}

// getCosetShiftPowForCell returns h_k^{FieldElementsPerCell} for cellIndex.
func getCosetShiftPowForCell(cellIndex int, fs *FFTSettings) (Fr, error) {
	cellIndexRBL := cellIndicesRBL[cellIndex]
	idx := cellIndexRBL * FieldElementsPerCell
	if idx > FieldElementsPerExtBlob {
		return Fr{}, errors.Wrap(ErrInvalidIndex, "invalid cell index")
	}
	return fs.GetRootsOfUnityAt(uint64(idx)), nil
}

// computeCommitmentToAggregatedInterpolationPoly builds and commits to the
// polynomial that interpolates all rows' weighted cell values, per
// spec.md §4.8 step 4.
func computeCommitmentToAggregatedInterpolationPoly(rPowers []Fr, cellIndices []int, cells []Cell, fs *FFTSettings, g1Monomial []G1) (G1, error) {
	col := make([]Fr, CellsPerExtBlob*FieldElementsPerCell)
	for i := range col {
		col[i] = FrZero()
	}

	for row, cellIndex := range cellIndices {
		for j := 0; j < FieldElementsPerCell; j++ {
			scaled := cells[row][j].Mul(rPowers[row])
			idx := cellIndex*FieldElementsPerCell + j
			col[idx] = col[idx].Add(scaled)
		}
	}

	used := make([]bool, CellsPerExtBlob)
	for _, idx := range cellIndices {
		used[idx] = true
	}

	aggInterp := make([]Fr, FieldElementsPerCell)
	for i := range aggInterp {
		aggInterp[i] = FrZero()
	}

	for u := 0; u < CellsPerExtBlob; u++ {
		if !used[u] {
			continue
		}

		start := u * FieldElementsPerCell
		segment := make([]Fr, FieldElementsPerCell)
		copy(segment, col[start:start+FieldElementsPerCell])

		if err := ReverseBitOrderFr(segment); err != nil {
			return G1{}, errors.Wrap(err, "aggregate interpolation: bit-reverse column")
		}

		colInterp, err := fs.FFTFr(segment, true)
		if err != nil {
			return G1{}, errors.Wrap(err, "aggregate interpolation: inverse FFT")
		}

		invShift, err := getInvCosetShiftForCell(u, fs)
		if err != nil {
			return G1{}, err
		}
		shiftPoly(colInterp, invShift)

		for k := range aggInterp {
			aggInterp[k] = aggInterp[k].Add(colInterp[k])
		}
	}

	// The precomputation handle is left unstated as oversight-or-intentional
	// by the source (spec.md §9 Open Question); this call mirrors it by
	// always passing nil, exactly as the reference implementation does.
	return G1LinComb(g1Monomial, aggInterp, FieldElementsPerCell, nil), nil
}

// computeWeightedSumOfProofs folds r_powers * h_k^{FieldElementsPerCell}
// into the proof weights, per spec.md §4.8 step 5.
func computeWeightedSumOfProofs(proofs []G1, rPowers []Fr, cellIndices []int, fs *FFTSettings) (G1, error) {
	weights := make([]Fr, len(proofs))
	for i := range proofs {
		hPow, err := getCosetShiftPowForCell(cellIndices[i], fs)
		if err != nil {
			return G1{}, err
		}
		weights[i] = rPowers[i].Mul(hPow)
	}
	return G1LinComb(proofs, weights, len(proofs), nil), nil
}
