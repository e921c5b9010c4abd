package kzg

import "testing"

// evalPoly evaluates poly (constant term first) at x via Horner's method.
func evalPoly(poly []Fr, x Fr) Fr {
	result := FrZero()
	for i := len(poly) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(poly[i])
	}
	return result
}

func TestVanishingPolynomialVanishesAtRoots(t *testing.T) {
	roots := []Fr{FrFromU64(3), FrFromU64(11), FrFromU64(29)}
	poly, err := vanishingPolynomialFromRoots(roots)
	if err != nil {
		t.Fatalf("build vanishing polynomial: %v", err)
	}

	if len(poly) != len(roots)+1 {
		t.Fatalf("degree mismatch: got %d coefficients, want %d", len(poly), len(roots)+1)
	}
	if !poly[len(poly)-1].IsOne() {
		t.Fatal("vanishing polynomial must be monic")
	}

	for _, r := range roots {
		if v := evalPoly(poly, r); !v.IsZero() {
			t.Errorf("polynomial does not vanish at root %s: got %s", r.ToBig(), v.ToBig())
		}
	}

	if v := evalPoly(poly, FrFromU64(5)); v.IsZero() {
		t.Error("polynomial unexpectedly vanishes at a non-root")
	}
}

func TestVanishingPolynomialRejectsEmptyRoots(t *testing.T) {
	if _, err := vanishingPolynomialFromRoots(nil); err == nil {
		t.Fatal("expected an error for zero roots")
	}
}
