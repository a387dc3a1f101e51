// Package glwe implements the GLWE ciphertext engine: secret key
// generation, encryption, decryption, trivial encryption, and the
// plaintext/ciphertext list types.
package glwe

import (
	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// SecretKey is a GlweSecretKey(k,N): a PolynomialList(N,k) with
// uniform-binary coefficients. Immutable after generation; never crosses
// the ciphertext boundary.
type SecretKey[T num.TorusInt] struct {
	Value poly.List[T]
}

// GlweRank returns k, the number of mask polynomials this key backs.
func (sk SecretKey[T]) GlweRank() int {
	return sk.Value.Len()
}

// PolyDegree returns N.
func (sk SecretKey[T]) PolyDegree() int {
	return sk.Value.Degree()
}

// NewSecretKey allocates a zeroed SecretKey of the given rank and degree.
// Use GenSecretKey to actually sample it.
func NewSecretKey[T num.TorusInt](glweRank, polyDegree int) SecretKey[T] {
	return SecretKey[T]{Value: poly.NewList[T](glweRank, polyDegree)}
}

// GenSecretKey samples a fresh, uniform-binary SecretKey using sampler.
func GenSecretKey[T num.TorusInt](glweRank, polyDegree int, sampler *csprng.BinarySampler[T]) SecretKey[T] {
	sk := NewSecretKey[T](glweRank, polyDegree)
	sampler.SampleListAssign(sk.Value)
	return sk
}
