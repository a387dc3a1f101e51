// Package vec implements the scalar-vector arithmetic the LWE half of the
// core needs: wrapping add/sub and the dot product used by LWE
// encryption/decryption and the keyswitch formula. Mirrors the polynomial
// ring's operations in math/poly, collapsed to plain slices (N=1).
package vec

import "github.com/go-fhe/glwecore/math/num"

// WrappingAddAssign computes out = a + b, element-wise mod 2^W.
func WrappingAddAssign[T num.TorusInt](a, b, out []T) {
	n := checkSameLen(a, b, out)
	for i := 0; i < n; i++ {
		out[i] = a[i] + b[i]
	}
}

// WrappingSubAssign computes out = a - b, element-wise mod 2^W.
func WrappingSubAssign[T num.TorusInt](a, b, out []T) {
	n := checkSameLen(a, b, out)
	for i := 0; i < n; i++ {
		out[i] = a[i] - b[i]
	}
}

// Dot computes the wrapping dot product <a,b> = sum_i a[i]*b[i] mod 2^W,
// the scalar inner product LWE encryption and decryption use in place of
// the negacyclic polynomial multisum.
func Dot[T num.TorusInt](a, b []T) T {
	n := checkSameLen(a, b)
	var acc T
	for i := 0; i < n; i++ {
		acc += a[i] * b[i]
	}
	return acc
}

func checkSameLen[T num.TorusInt](vs ...[]T) int {
	n := len(vs[0])
	for _, v := range vs[1:] {
		if len(v) != n {
			panic("vec: length mismatch")
		}
	}
	return n
}
