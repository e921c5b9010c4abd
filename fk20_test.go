package kzg

import "testing"

func TestToeplitzCoeffsStrideLayout(t *testing.T) {
	n := 16
	stride := 4
	poly := make([]Fr, n)
	for i := range poly {
		poly[i] = FrFromU64(uint64(i + 1))
	}

	out, err := toeplitzCoeffsStride(poly, n, 0, stride)
	if err != nil {
		t.Fatalf("toeplitz coeffs: %v", err)
	}

	k := n / stride
	if len(out) != 2*k {
		t.Fatalf("length mismatch: got %d, want %d", len(out), 2*k)
	}
	if !out[0].Equal(poly[n-1]) {
		t.Errorf("out[0] = %s, want poly[n-1] = %s", out[0].ToBig(), poly[n-1].ToBig())
	}
	for i := 1; i <= k+1 && i < 2*k; i++ {
		if !out[i].IsZero() {
			t.Errorf("out[%d] should be zero, got %s", i, out[i].ToBig())
		}
	}
}

func TestToeplitzCoeffsStrideRejectsZeroStride(t *testing.T) {
	if _, err := toeplitzCoeffsStride([]Fr{FrOne()}, 1, 0, 0); err == nil {
		t.Fatal("expected an error for a zero stride")
	}
}

func TestComputeFK20ProofsProducesOnePerCell(t *testing.T) {
	ks, _ := generateTestKZGSettings(t, "fk20-proof-count", FieldElementsPerCell+1)

	poly := make([]Fr, FieldElementsPerBlob)
	for i := range poly {
		poly[i] = FrFromU64(uint64(i))
	}

	proofs, err := computeFK20Proofs(poly, FieldElementsPerBlob, ks)
	if err != nil {
		t.Fatalf("compute fk20 proofs: %v", err)
	}
	if len(proofs) != CellsPerExtBlob {
		t.Fatalf("got %d proofs, want %d", len(proofs), CellsPerExtBlob)
	}
	for i, p := range proofs {
		if !p.IsValid() {
			t.Errorf("proof %d is not a valid subgroup element", i)
		}
	}
}
