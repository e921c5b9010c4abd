package kzg

import (
	kbls "github.com/kilic/bls12-381"
	"github.com/pkg/errors"
)

var g2Engine = kbls.NewG2()

// G2 is a point on the BLS12-381 G2 curve.
type G2 kbls.PointG2

// G2Identity returns the G2 identity element.
func G2Identity() G2 {
	return G2(*g2Engine.Zero())
}

// G2Generator returns the canonical G2 generator.
func G2Generator() G2 {
	return G2(*g2Engine.One())
}

// Add returns p+q.
func (p G2) Add(q G2) G2 {
	a, b := kbls.PointG2(p), kbls.PointG2(q)
	var out kbls.PointG2
	g2Engine.Add(&out, &a, &b)
	return G2(out)
}

// Sub returns p-q.
func (p G2) Sub(q G2) G2 {
	a, b := kbls.PointG2(p), kbls.PointG2(q)
	var out kbls.PointG2
	g2Engine.Sub(&out, &a, &b)
	return G2(out)
}

// Mul returns the scalar multiple s*p.
func (p G2) Mul(s Fr) G2 {
	a := kbls.PointG2(p)
	sc := kbls.Fr(s)
	var out kbls.PointG2
	g2Engine.MulScalar(&out, &a, &sc)
	return G2(out)
}

// IsValid reports whether p is on the curve and in the correct prime-order
// subgroup.
func (p G2) IsValid() bool {
	a := kbls.PointG2(p)
	return g2Engine.IsOnCurve(&a) && g2Engine.InCorrectSubgroup(&a)
}

// ToBytes returns the compressed 96-byte encoding of p.
func (p G2) ToBytes() [96]byte {
	a := kbls.PointG2(p)
	var out [96]byte
	copy(out[:], g2Engine.ToCompressed(&a))
	return out
}

// G2FromBytes decodes a compressed 96-byte G2 point.
func G2FromBytes(b [96]byte) (G2, error) {
	p, err := g2Engine.FromCompressed(b[:])
	if err != nil {
		return G2{}, errors.Wrap(err, "decode compressed G2 point")
	}
	return G2(*p), nil
}
