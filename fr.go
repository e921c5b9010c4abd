package kzg

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	kbls "github.com/kilic/bls12-381"
)

// Fr is a scalar field element of the BLS12-381 scalar field, backed by
// github.com/kilic/bls12-381's Montgomery representation.
type Fr kbls.Fr

// nullLimbs is an unreduced bit pattern (all limbs saturated) that can never
// be produced by any Fr arithmetic operation, since every valid Fr is kept
// reduced modulo the field order. It marks a cell slot as "not yet filled"
// without a separate presence bitmap -- see DESIGN.md for why the sentinel
// was kept over a bitmap refactor.
var nullLimbs = kbls.Fr{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

// FrZero returns the additive identity.
func FrZero() Fr {
	var z kbls.Fr
	return Fr(z)
}

// FrOne returns the multiplicative identity.
func FrOne() Fr {
	var o kbls.Fr
	o.One()
	return Fr(o)
}

// FrFromU64 builds a field element from a small unsigned integer.
func FrFromU64(v uint64) Fr {
	var data [32]byte
	binary.BigEndian.PutUint64(data[24:], v)
	var out kbls.Fr
	out.FromBytes(data[:])
	return Fr(out)
}

// FrNull returns the distinguished missing-cell sentinel. It must never
// equal any field element produced by arithmetic.
func FrNull() Fr {
	return Fr(nullLimbs)
}

// IsNull reports whether fr is the missing-cell sentinel.
func (fr Fr) IsNull() bool {
	k := kbls.Fr(fr)
	return k == nullLimbs
}

// FrFromBytes decodes a canonical 32-byte big-endian encoding.
func FrFromBytes(b [32]byte) Fr {
	var out kbls.Fr
	out.FromBytes(b[:])
	return Fr(out)
}

// ToBytes encodes fr as a canonical 32-byte big-endian value.
func (fr Fr) ToBytes() [32]byte {
	k := kbls.Fr(fr)
	var out [32]byte
	copy(out[:], k.ToBytes())
	return out
}

// Add returns a+b.
func (fr Fr) Add(other Fr) Fr {
	a, b := kbls.Fr(fr), kbls.Fr(other)
	var out kbls.Fr
	out.Add(&a, &b)
	return Fr(out)
}

// Sub returns a-b.
func (fr Fr) Sub(other Fr) Fr {
	a, b := kbls.Fr(fr), kbls.Fr(other)
	var out kbls.Fr
	out.Sub(&a, &b)
	return Fr(out)
}

// Mul returns a*b.
func (fr Fr) Mul(other Fr) Fr {
	a, b := kbls.Fr(fr), kbls.Fr(other)
	var out kbls.Fr
	out.Mul(&a, &b)
	return Fr(out)
}

// Div returns a/b. Returns ErrArithmeticFailure if b is zero.
func (fr Fr) Div(other Fr) (Fr, error) {
	if other.IsZero() {
		return Fr{}, ErrArithmeticFailure
	}
	b := kbls.Fr(other)
	var inv, out kbls.Fr
	inv.Inverse(&b)
	a := kbls.Fr(fr)
	out.Mul(&a, &inv)
	return Fr(out), nil
}

// Negate returns -a.
func (fr Fr) Negate() Fr {
	a := kbls.Fr(fr)
	var zero, out kbls.Fr
	out.Sub(&zero, &a)
	return Fr(out)
}

// Inverse returns 1/a. Returns ErrArithmeticFailure if a is zero.
func (fr Fr) Inverse() (Fr, error) {
	if fr.IsZero() {
		return Fr{}, ErrArithmeticFailure
	}
	a := kbls.Fr(fr)
	var out kbls.Fr
	out.Inverse(&a)
	return Fr(out), nil
}

// IsZero reports whether fr is the additive identity.
func (fr Fr) IsZero() bool {
	k := kbls.Fr(fr)
	return k.IsZero()
}

// IsOne reports whether fr is the multiplicative identity.
func (fr Fr) IsOne() bool {
	k := kbls.Fr(fr)
	return k.IsOne()
}

// Equal reports whether fr and other represent the same field element.
func (fr Fr) Equal(other Fr) bool {
	a, b := kbls.Fr(fr), kbls.Fr(other)
	return a.Equal(&b)
}

// RandomFr returns a cryptographically random field element.
func RandomFr() (Fr, error) {
	var out kbls.Fr
	if _, err := out.Rand(rand.Reader); err != nil {
		return Fr{}, err
	}
	return Fr(out), nil
}

// ToBig returns fr as a big.Int, mirroring kbls.Fr.ToBig for debugging.
func (fr Fr) ToBig() *big.Int {
	k := kbls.Fr(fr)
	return k.ToBig()
}

// hashToBLSField reduces a 32-byte hash digest modulo the scalar field
// order, matching the EIP-4844 hash_to_bls_field convention referenced by
// spec.md §6.
func hashToBLSField(digest [32]byte) Fr {
	v := new(big.Int).SetBytes(digest[:])
	v.Mod(v, scalarFieldModulus)
	var b [32]byte
	v.FillBytes(b[:])
	return FrFromBytes(b)
}

// Pow returns fr raised to the given non-negative exponent via
// repeated squaring.
func (fr Fr) Pow(exp *big.Int) Fr {
	result := FrOne()
	base := fr
	e := new(big.Int).Set(exp)
	zero := big.NewInt(0)
	for e.Cmp(zero) > 0 {
		if e.Bit(0) == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e.Rsh(e, 1)
	}
	return result
}

// computePowers returns [1, r, r^2, ..., r^(n-1)].
func computePowers(r Fr, n int) []Fr {
	powers := make([]Fr, n)
	current := FrOne()
	for i := 0; i < n; i++ {
		powers[i] = current
		current = current.Mul(r)
	}
	return powers
}
