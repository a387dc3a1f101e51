package glwe

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// Ciphertext is a GlweCiphertext(k,N): a (k+1)-polynomial block whose first
// k polynomials are the mask A and whose last polynomial is the body B.
// Mask and body share the same polynomial degree N.
type Ciphertext[T num.TorusInt] struct {
	// Value holds k+1 polynomials: Value[0:k] is the mask, Value[k] is the
	// body.
	Value poly.List[T]
}

// NewCiphertext allocates a zeroed Ciphertext matching the given GLWE rank
// and polynomial degree.
func NewCiphertext[T num.TorusInt](glweRank, polyDegree int) Ciphertext[T] {
	return Ciphertext[T]{Value: poly.NewList[T](glweRank+1, polyDegree)}
}

// Clone returns a fresh copy of ct.
func (ct Ciphertext[T]) Clone() Ciphertext[T] {
	out := NewCiphertext[T](ct.GlweRank(), ct.PolyDegree())
	for i := range out.Value.Polys {
		out.Value.Polys[i].CopyFrom(ct.Value.Polys[i])
	}
	return out
}

// GlweRank returns k.
func (ct Ciphertext[T]) GlweRank() int {
	return ct.Value.Len() - 1
}

// PolyDegree returns N.
func (ct Ciphertext[T]) PolyDegree() int {
	return ct.Value.Degree()
}

// Mask returns the k mask polynomials A.
func (ct Ciphertext[T]) Mask() poly.List[T] {
	return poly.List[T]{Polys: ct.Value.Polys[:ct.GlweRank()]}
}

// Body returns the body polynomial B.
func (ct Ciphertext[T]) Body() poly.Poly[T] {
	return ct.Value.Polys[ct.GlweRank()]
}

// AddAssign adds a into ct in place (ct += a), the ciphertext-level
// homomorphic addition of two GLWE encryptions under the same secret key.
func (ct Ciphertext[T]) AddAssign(a Ciphertext[T]) {
	if a.GlweRank() != ct.GlweRank() || a.PolyDegree() != ct.PolyDegree() {
		panic(fmt.Sprintf("glwe: ciphertext shape (k=%d,N=%d) does not match (k=%d,N=%d)",
			a.GlweRank(), a.PolyDegree(), ct.GlweRank(), ct.PolyDegree()))
	}
	for i := range ct.Value.Polys {
		poly.AddAssign(a.Value.Polys[i], ct.Value.Polys[i])
	}
}

// SubAssign subtracts a from ct in place (ct -= a), the ciphertext-level
// homomorphic subtraction of two GLWE encryptions under the same secret
// key.
func (ct Ciphertext[T]) SubAssign(a Ciphertext[T]) {
	if a.GlweRank() != ct.GlweRank() || a.PolyDegree() != ct.PolyDegree() {
		panic(fmt.Sprintf("glwe: ciphertext shape (k=%d,N=%d) does not match (k=%d,N=%d)",
			a.GlweRank(), a.PolyDegree(), ct.GlweRank(), ct.PolyDegree()))
	}
	for i := range ct.Value.Polys {
		poly.SubAssign(a.Value.Polys[i], ct.Value.Polys[i])
	}
}

// List is a GlweCiphertextList: n GLWE ciphertexts of identical (k,N)
// held in encryption order, each with its own separately allocated storage.
type List[T num.TorusInt] struct {
	Cts []Ciphertext[T]
}

// NewCiphertextList allocates count zeroed ciphertexts of the given shape.
func NewCiphertextList[T num.TorusInt](count, glweRank, polyDegree int) List[T] {
	l := List[T]{Cts: make([]Ciphertext[T], count)}
	for i := range l.Cts {
		l.Cts[i] = NewCiphertext[T](glweRank, polyDegree)
	}
	return l
}

// Len returns n, the number of ciphertexts in the list.
func (l List[T]) Len() int {
	return len(l.Cts)
}

// PlaintextList is an ordered sequence of scalars, reinterpretable as one
// polynomial of length N or as chunks of N.
type PlaintextList[T num.TorusInt] struct {
	Value []T
}

// NewPlaintextList allocates a zeroed PlaintextList of the given length.
func NewPlaintextList[T num.TorusInt](n int) PlaintextList[T] {
	return PlaintextList[T]{Value: make([]T, n)}
}

// Len returns the number of scalars.
func (pt PlaintextList[T]) Len() int {
	return len(pt.Value)
}

// AsPoly reinterprets the full plaintext list as a single polynomial.
// Panics unless Len() equals n.
func (pt PlaintextList[T]) AsPoly(n int) poly.Poly[T] {
	if len(pt.Value) != n {
		panic("glwe: plaintext list length does not match polynomial degree")
	}
	return poly.Poly[T]{Coeffs: pt.Value}
}

// Chunk returns the i-th length-n chunk of the plaintext list as a
// polynomial view sharing the underlying storage.
func (pt PlaintextList[T]) Chunk(i, n int) poly.Poly[T] {
	return poly.Poly[T]{Coeffs: pt.Value[i*n : (i+1)*n]}
}
