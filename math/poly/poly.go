// Package poly implements dense polynomials over Z_{2^W}[X]/(X^N+1), the
// negacyclic ring GLWE ciphertexts live in. N must be a power of two.
//
// The multiplication routines here are schoolbook (O(N^2)) negacyclic
// convolutions, not NTT-accelerated. A Fourier-domain evaluator only pays
// off once blind rotation is in the picture; plain convolution is the right
// tool for encryption and decryption on their own.
package poly

import "github.com/go-fhe/glwecore/math/num"

// Poly is a polynomial of degree < N over Z_{2^W}[X]/(X^N+1), stored as its
// N coefficients in natural (ascending power) order.
type Poly[T num.TorusInt] struct {
	Coeffs []T
}

// New allocates a zero polynomial of degree N.
func New[T num.TorusInt](n int) Poly[T] {
	if n <= 0 || !num.IsPowerOfTwo(uint64(n)) {
		panic("poly: degree must be a positive power of two")
	}
	return Poly[T]{Coeffs: make([]T, n)}
}

// Degree returns N.
func (p Poly[T]) Degree() int {
	return len(p.Coeffs)
}

// Clear zeroes all coefficients in place.
func (p Poly[T]) Clear() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}

// CopyFrom copies src's coefficients into p. Panics on degree mismatch.
func (p Poly[T]) CopyFrom(src Poly[T]) {
	if len(p.Coeffs) != len(src.Coeffs) {
		panic("poly: degree mismatch in CopyFrom")
	}
	copy(p.Coeffs, src.Coeffs)
}

// Clone returns a fresh copy of p.
func (p Poly[T]) Clone() Poly[T] {
	out := New[T](p.Degree())
	out.CopyFrom(p)
	return out
}
