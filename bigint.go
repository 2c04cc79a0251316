package softfloat

import "math/big"

// Arbitrary-precision integer helpers used by the rounding engine and
// the classification/packing code. Kept in one file, grouping small
// numeric primitives together rather than scattering them.

// bigOne, bigZero are shared immutable constants; callers must never
// mutate a value returned from a function in this file in place.
var bigZero = big.NewInt(0)
var bigOne = big.NewInt(1)
var bigTwo = big.NewInt(2)

// pow2 returns 2^n as a freshly allocated big.Int.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(bigOne, n)
}

// ceilLog2 returns the smallest k such that 2^k >= x, for x > 0.
func ceilLog2(x *big.Int) uint {
	if x.Sign() <= 0 {
		panic("softfloat: ceilLog2 of non-positive value")
	}
	bits := uint(x.BitLen())
	// x.BitLen() is floor(log2(x))+1; if x is itself a power of two,
	// floor(log2(x)) == ceil(log2(x)), otherwise ceil = floor+1.
	lowBit := new(big.Int).Lsh(bigOne, bits-1)
	if lowBit.Cmp(x) == 0 {
		return bits - 1
	}
	return bits
}

// isPowerOfTwo reports whether x is an exact power of two (x > 0).
func isPowerOfTwo(x *big.Int) bool {
	if x.Sign() <= 0 {
		return false
	}
	t := new(big.Int).Sub(x, bigOne)
	t.And(t, x)
	return t.Sign() == 0
}

// stickyRshift right-shifts x by n bits (n may be zero), returning the
// shifted quotient and whether any discarded bit was nonzero (the
// "sticky" bit of IEEE 754 guard/round/sticky rounding). x must be
// non-negative.
func stickyRshift(x *big.Int, n uint) (quotient *big.Int, sticky bool) {
	if n == 0 {
		return new(big.Int).Set(x), false
	}
	quotient = new(big.Int).Rsh(x, n)
	restored := new(big.Int).Lsh(quotient, n)
	sticky = restored.Cmp(x) != 0
	return quotient, sticky
}

// bitAt reports whether bit i (0 = LSB) of x is set. x must be
// non-negative.
func bitAt(x *big.Int, i uint) bool {
	if i > 1<<31 {
		return false
	}
	return x.Bit(int(i)) == 1
}

// maskBits returns a mask with the low n bits set (n may be zero).
func maskBits(n uint) *big.Int {
	if n == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(pow2(n), bigOne)
}
