// Package lwe implements the scalar LWE half of the core: secret keys,
// ciphertexts, encryption/decryption, and the decomposition-gadget
// keyswitch key that bridges two LWE keys. It follows the glwe package's
// shapes with the ring dimension N collapsed to 1 -- mask and secret key
// are plain []T vectors, and the inner product is a scalar dot product
// rather than a negacyclic convolution.
package lwe

import (
	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
)

// SecretKey is an LweSecretKey(n): a length-n uniform-binary vector.
// Immutable after generation; must never cross the ciphertext boundary.
type SecretKey[T num.TorusInt] struct {
	Value []T
}

// Dimension returns n, the LWE dimension.
func (sk SecretKey[T]) Dimension() int {
	return len(sk.Value)
}

// NewSecretKey allocates a zeroed SecretKey of the given dimension.
func NewSecretKey[T num.TorusInt](dimension int) SecretKey[T] {
	return SecretKey[T]{Value: make([]T, dimension)}
}

// GenSecretKey draws a fresh uniform-binary SecretKey of the given
// dimension using sampler.
func GenSecretKey[T num.TorusInt](dimension int, sampler *csprng.BinarySampler[T]) SecretKey[T] {
	sk := NewSecretKey[T](dimension)
	sampler.SampleSliceAssign(sk.Value)
	return sk
}
