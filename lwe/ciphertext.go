package lwe

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/vec"
)

// Ciphertext is an LweCiphertext(n): an (n+1)-scalar vector whose first n
// scalars are the mask A and whose last scalar is the body b.
type Ciphertext[T num.TorusInt] struct {
	// Value holds n+1 scalars: Value[0:n] is the mask, Value[n] is the body.
	Value []T
}

// NewCiphertext allocates a zeroed Ciphertext of the given LWE dimension.
func NewCiphertext[T num.TorusInt](dimension int) Ciphertext[T] {
	return Ciphertext[T]{Value: make([]T, dimension+1)}
}

// Dimension returns n.
func (ct Ciphertext[T]) Dimension() int {
	return len(ct.Value) - 1
}

// Mask returns the n mask scalars A.
func (ct Ciphertext[T]) Mask() []T {
	return ct.Value[:ct.Dimension()]
}

// Body returns the body scalar b.
func (ct Ciphertext[T]) Body() T {
	return ct.Value[ct.Dimension()]
}

// SetBody overwrites the body scalar b.
func (ct Ciphertext[T]) SetBody(b T) {
	ct.Value[ct.Dimension()] = b
}

// Clone returns a fresh copy of ct.
func (ct Ciphertext[T]) Clone() Ciphertext[T] {
	out := NewCiphertext[T](ct.Dimension())
	copy(out.Value, ct.Value)
	return out
}

// AddAssign adds a into ct in place (ct += a), the ciphertext-level
// homomorphic addition of two LWE encryptions under the same secret key.
func (ct Ciphertext[T]) AddAssign(a Ciphertext[T]) {
	if a.Dimension() != ct.Dimension() {
		panic(fmt.Sprintf("lwe: ciphertext dimension %d does not match %d", a.Dimension(), ct.Dimension()))
	}
	vec.WrappingAddAssign(ct.Value, a.Value, ct.Value)
}

// SubAssign subtracts a from ct in place (ct -= a), the ciphertext-level
// homomorphic subtraction of two LWE encryptions under the same secret
// key.
func (ct Ciphertext[T]) SubAssign(a Ciphertext[T]) {
	if a.Dimension() != ct.Dimension() {
		panic(fmt.Sprintf("lwe: ciphertext dimension %d does not match %d", a.Dimension(), ct.Dimension()))
	}
	vec.WrappingSubAssign(ct.Value, a.Value, ct.Value)
}
