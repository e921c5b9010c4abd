package kzg

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func allCellIndices() []int {
	indices := make([]int, CellsPerExtBlob)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// TestFullDAS exercises the whole sampling lifecycle: commit to a blob,
// extend it to cells and proofs, verify every cell, drop up to half the
// cells, recover them, and verify again.
func TestFullDAS(t *testing.T) {
	ks, _ := generateTestKZGSettings(t, "full-das-1234", FieldElementsPerCell+1)
	blob := randomBlob(1234)

	commitment, err := BlobToKZGCommitment(ks, blob)
	require.NoError(t, err)

	cells, proofs, err := ComputeCellsAndKZGProofs(ks, blob)
	require.NoError(t, err)
	require.Len(t, cells, CellsPerExtBlob)
	require.Len(t, proofs, CellsPerExtBlob)

	commitments := make([]G1, CellsPerExtBlob)
	for i := range commitments {
		commitments[i] = commitment
	}

	ok, err := VerifyCellKZGProofBatch(ks, commitments, allCellIndices(), cells, proofs)
	require.NoError(t, err)
	if !ok {
		t.Fatal("full-cell batch failed to verify")
	}

	// Drop a random subset, no more than half, and recover.
	rng := rand.New(rand.NewSource(42))
	present := make([]int, 0, CellsPerExtBlob)
	presentCells := make([]Cell, 0, CellsPerExtBlob)
	missing := 0
	for i := 0; i < CellsPerExtBlob; i++ {
		if rng.Intn(2) == 0 && missing < CellsPerExtBlob/2 {
			missing++
			continue
		}
		present = append(present, i)
		presentCells = append(presentCells, cells[i])
	}
	if missing == 0 {
		t.Fatal("test setup error: no cells were dropped")
	}

	recoveredCells, recoveredProofs, err := RecoverCellsAndKZGProofs(ks, present, presentCells)
	require.NoError(t, err)
	require.Len(t, recoveredCells, CellsPerExtBlob)

	for i := range cells {
		for j := range cells[i] {
			if !cells[i][j].Equal(recoveredCells[i][j]) {
				t.Fatalf("cell %d element %d: recovered value differs from original", i, j)
			}
		}
	}

	ok, err = VerifyCellKZGProofBatch(ks, commitments, allCellIndices(), recoveredCells, recoveredProofs)
	require.NoError(t, err)
	if !ok {
		t.Fatal("recovered cells failed to verify")
	}
}

func TestVerifyCellKZGProofBatchRejectsTamperedCell(t *testing.T) {
	ks, _ := generateTestKZGSettings(t, "tampered-cell", FieldElementsPerCell+1)
	blob := randomBlob(777)

	commitment, err := BlobToKZGCommitment(ks, blob)
	require.NoError(t, err)

	cells, proofs, err := ComputeCellsAndKZGProofs(ks, blob)
	require.NoError(t, err)

	cells[0][0] = cells[0][0].Add(FrOne())

	ok, err := VerifyCellKZGProofBatch(ks, []G1{commitment}, []int{0}, cells[:1], proofs[:1])
	require.NoError(t, err)
	if ok {
		t.Fatal("tampered cell must not verify")
	}
}

func TestRecoverCellsAndKZGProofsRejectsInsufficientCells(t *testing.T) {
	ks, _ := generateTestKZGSettings(t, "insufficient-cells", FieldElementsPerCell+1)
	blob := randomBlob(99)

	cells, _, err := ComputeCellsAndKZGProofs(ks, blob)
	require.NoError(t, err)

	// Keep fewer than half the cells: recovery must fail.
	keep := CellsPerExtBlob/2 - 1
	present := make([]int, keep)
	presentCells := make([]Cell, keep)
	for i := 0; i < keep; i++ {
		present[i] = i
		presentCells[i] = cells[i]
	}

	_, _, err = RecoverCellsAndKZGProofs(ks, present, presentCells)
	if err == nil {
		t.Fatal("expected an error when too many cells are missing")
	}
	if !errors.Is(err, ErrInsufficientCells) {
		t.Errorf("expected ErrInsufficientCells, got %v", err)
	}
}

func TestRecoverCellsAndKZGProofsRejectsDuplicateIndex(t *testing.T) {
	ks, _ := generateTestKZGSettings(t, "duplicate-index", FieldElementsPerCell+1)

	// Enough cells to clear the minimum-count check, so the duplicate-index
	// check is what actually gets exercised.
	count := CellsPerExtBlob / 2
	indices := make([]int, count)
	cells := make([]Cell, count)
	for i := range indices {
		indices[i] = i
	}
	indices[1] = indices[0] // duplicate

	_, _, err := RecoverCellsAndKZGProofs(ks, indices, cells)
	if !errors.Is(err, ErrDuplicateIndex) {
		t.Errorf("expected ErrDuplicateIndex, got %v", err)
	}
}
