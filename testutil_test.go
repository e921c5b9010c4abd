package kzg

import (
	"crypto/sha256"
	"testing"
)

// generateTestKZGSettings builds a toy trusted setup from a deterministic
// secret derived from seed. It is only fit for tests: the secret scalar is
// recoverable from the seed string, unlike a real ceremony's toxic waste.
func generateTestKZGSettings(t *testing.T, seed string, g2Count int) (*KZGSettings, Fr) {
	t.Helper()

	tau := hashToBLSField(sha256.Sum256([]byte(seed)))

	g1Monomial := make([]G1, FieldElementsPerBlob)
	power := FrOne()
	for i := range g1Monomial {
		g1Monomial[i] = G1Generator().Mul(power)
		power = power.Mul(tau)
	}

	g2Monomial := make([]G2, g2Count)
	power = FrOne()
	for i := range g2Monomial {
		g2Monomial[i] = G2Generator().Mul(power)
		power = power.Mul(tau)
	}

	fs := NewFFTSettings(fftScaleForWidth(FieldElementsPerExtBlob))
	ks, err := NewKZGSettings(fs, g1Monomial, g2Monomial)
	if err != nil {
		t.Fatalf("build test kzg settings: %v", err)
	}
	return ks, tau
}

// randomBlob returns a deterministic, seed-derived blob of
// FieldElementsPerBlob scalars, none of which happen to be the null
// sentinel.
func randomBlob(seed uint64) []Fr {
	blob := make([]Fr, FieldElementsPerBlob)
	current := FrFromU64(seed + 1)
	step := FrFromU64(2654435761)
	for i := range blob {
		current = current.Mul(step).Add(FrFromU64(uint64(i)))
		blob[i] = current
	}
	return blob
}
