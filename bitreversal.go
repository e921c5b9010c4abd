package kzg

import (
	"math/bits"

	"github.com/pkg/errors"
)

// isPowerOfTwo reports whether v is a non-zero power of two.
func isPowerOfTwo(v uint64) bool {
	return v > 0 && v&(v-1) == 0
}

// ReverseBitsLimited returns the bit-reversal of i within log2(n) bits. n
// must be a power of two.
func ReverseBitsLimited(n uint32, i uint32) uint32 {
	unusedBits := bits.LeadingZeros32(n) + 1
	return bits.Reverse32(i) >> unusedBits
}

// ReverseBitOrderFr permutes buf in place so that the element at index i
// moves to the bit-reversal of i within log2(len(buf)) bits. len(buf) must
// be a non-zero power of two. It is an involution.
func ReverseBitOrderFr(buf []Fr) error {
	n := uint64(len(buf))
	if !isPowerOfTwo(n) {
		return errors.Wrapf(ErrInvalidLength, "reverse bit order: length %d is not a power of two", n)
	}
	for i := range buf {
		j := ReverseBitsLimited(uint32(n), uint32(i))
		if uint32(i) < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return nil
}

// ReverseBitOrderG1 is the G1 analogue of ReverseBitOrderFr.
func ReverseBitOrderG1(buf []G1) error {
	n := uint64(len(buf))
	if !isPowerOfTwo(n) {
		return errors.Wrapf(ErrInvalidLength, "reverse bit order: length %d is not a power of two", n)
	}
	for i := range buf {
		j := ReverseBitsLimited(uint32(n), uint32(i))
		if uint32(i) < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return nil
}
