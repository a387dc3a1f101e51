// Package num provides the width-generic torus integer used throughout
// glwecore: an unsigned scalar type with wrapping arithmetic and a signed
// companion of the same width.
package num

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// TorusInt is the scalar type backing the discretized torus T_q = Z/2^W.
// Arithmetic on these types wraps modulo 2^W, the group structure the torus
// needs.
//
// Go has no native 128-bit unsigned integer, so a W=128 torus has no
// instantiation here; see DESIGN.md's Open Question section for why that
// was left uninstantiated rather than hand-rolled.
type TorusInt interface {
	constraints.Unsigned
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SizeT returns the bit width W of T.
func SizeT[T TorusInt]() int {
	var z T
	switch any(z).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("num: unsupported TorusInt width")
	}
}

// IsPowerOfTwo returns whether x is a power of two. Zero is not a power of
// two.
func IsPowerOfTwo[T TorusInt](x T) bool {
	return x != 0 && (x&(x-1)) == 0
}

// Log2 returns floor(log2(x)). Panics if x is zero.
func Log2[T TorusInt](x T) int {
	if x == 0 {
		panic("num: Log2 of zero")
	}
	return bits.Len64(uint64(x)) - 1
}

// SignedOf reinterprets x's bit pattern as the signed companion of T,
// returning the value as an int64 sign-extended from W bits. This is a bit
// reinterpretation, not a numeric conversion: SignedOf(2^W-1) is -1.
func SignedOf[T TorusInt](x T) int64 {
	w := SizeT[T]()
	v := int64(x)
	signBit := int64(1) << (w - 1)
	if v&signBit != 0 {
		v -= int64(1) << w
	}
	return v
}

// FromSigned reinterprets a signed value's two's-complement bit pattern as
// a T-width torus scalar.
func FromSigned[T TorusInt](x int64) T {
	return T(uint64(x))
}
