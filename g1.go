package kzg

import (
	kbls "github.com/kilic/bls12-381"
	"github.com/pkg/errors"
)

var g1Engine = kbls.NewG1()

// G1 is a point on the BLS12-381 G1 curve.
type G1 kbls.PointG1

// G1Identity returns the G1 identity element.
func G1Identity() G1 {
	return G1(*g1Engine.Zero())
}

// G1Generator returns the canonical G1 generator.
func G1Generator() G1 {
	return G1(*g1Engine.One())
}

// Add returns p+q.
func (p G1) Add(q G1) G1 {
	a, b := kbls.PointG1(p), kbls.PointG1(q)
	var out kbls.PointG1
	g1Engine.Add(&out, &a, &b)
	return G1(out)
}

// Sub returns p-q.
func (p G1) Sub(q G1) G1 {
	a, b := kbls.PointG1(p), kbls.PointG1(q)
	var out kbls.PointG1
	g1Engine.Sub(&out, &a, &b)
	return G1(out)
}

// Mul returns the scalar multiple s*p.
func (p G1) Mul(s Fr) G1 {
	a := kbls.PointG1(p)
	sc := kbls.Fr(s)
	var out kbls.PointG1
	g1Engine.MulScalar(&out, &a, &sc)
	return G1(out)
}

// IsValid reports whether p is on the curve and in the correct prime-order
// subgroup.
func (p G1) IsValid() bool {
	a := kbls.PointG1(p)
	return g1Engine.IsOnCurve(&a) && g1Engine.InCorrectSubgroup(&a)
}

// ToBytes returns the compressed 48-byte encoding of p.
func (p G1) ToBytes() [48]byte {
	a := kbls.PointG1(p)
	var out [48]byte
	copy(out[:], g1Engine.ToCompressed(&a))
	return out
}

// G1FromBytes decodes a compressed 48-byte G1 point.
func G1FromBytes(b [48]byte) (G1, error) {
	p, err := g1Engine.FromCompressed(b[:])
	if err != nil {
		return G1{}, errors.Wrap(err, "decode compressed G1 point")
	}
	return G1(*p), nil
}

// Equal reports whether p and q represent the same point.
func (p G1) Equal(q G1) bool {
	a, b := kbls.PointG1(p), kbls.PointG1(q)
	return g1Engine.Equal(&a, &b)
}

// G1LinComb computes sum(points[i] * scalars[i]) for the first n entries of
// each slice. precomp is accepted but always nil in this implementation
// (see DESIGN.md's note on the Open Question in spec.md §9 about
// precomputation plumbing, mirrored here exactly as in the source: the
// interpolation-polynomial commitment call site never supplies one).
func G1LinComb(points []G1, scalars []Fr, n int, precomp interface{}) G1 {
	if n == 0 {
		return G1Identity()
	}
	kPoints := make([]*kbls.PointG1, n)
	kScalars := make([]*kbls.Fr, n)
	for i := 0; i < n; i++ {
		p := kbls.PointG1(points[i])
		s := kbls.Fr(scalars[i])
		kPoints[i] = &p
		kScalars[i] = &s
	}
	var out kbls.PointG1
	if _, err := g1Engine.MultiExp(&out, kPoints, kScalars); err != nil {
		// A multi-exponentiation over caller-validated points/scalars of
		// matching, non-zero length cannot fail; a failure here indicates a
		// broken backend invariant, not a recoverable input error.
		panic(err)
	}
	return G1(out)
}
