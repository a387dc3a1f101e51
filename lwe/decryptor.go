package lwe

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/vec"
)

// Decryptor decrypts LWE ciphertexts under a single SecretKey.
type Decryptor[T num.TorusInt] struct {
	Dimension int
	SecretKey SecretKey[T]
}

// NewDecryptor returns a Decryptor bound to sk.
func NewDecryptor[T num.TorusInt](sk SecretKey[T]) *Decryptor[T] {
	return &Decryptor[T]{Dimension: sk.Dimension(), SecretKey: sk}
}

// Decrypt returns b - <A,S> (wrapping), a noisy approximation of the
// original plaintext scalar. Decoding/rounding is the caller's
// responsibility.
func (d *Decryptor[T]) Decrypt(ct Ciphertext[T]) T {
	if ct.Dimension() != d.Dimension {
		panic(fmt.Sprintf("lwe: ciphertext dimension %d does not match secret key dimension %d", ct.Dimension(), d.Dimension))
	}
	return ct.Body() - vec.Dot(ct.Mask(), d.SecretKey.Value)
}
