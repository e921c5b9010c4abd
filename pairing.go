package kzg

import (
	kbls "github.com/kilic/bls12-381"
)

// Verify evaluates the pairing equality e(A, B) == e(C, D).
func Verify(a G1, b G2, c G1, d G2) bool {
	eng := kbls.NewPairingEngine()
	aff1, bff1 := kbls.PointG1(a), kbls.PointG2(b)
	aff2, bff2 := kbls.PointG1(c), kbls.PointG2(d)

	eng.AddPair(&aff1, &bff1)
	negC := negG1(aff2)
	eng.AddPair(&negC, &bff2)

	return eng.Check()
}

func negG1(p kbls.PointG1) kbls.PointG1 {
	var out kbls.PointG1
	g1Engine.Neg(&out, &p)
	return out
}
