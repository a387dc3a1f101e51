package lwe

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/vec"
)

// Encryptor encrypts LWE ciphertexts under a single SecretKey. Not safe
// for concurrent use; give each goroutine its own Encryptor and RNGPair.
type Encryptor[T num.TorusInt] struct {
	Dimension int
	SecretKey SecretKey[T]

	rng *csprng.RNGPair
}

// NewEncryptor returns an Encryptor bound to sk and rng.
func NewEncryptor[T num.TorusInt](sk SecretKey[T], rng *csprng.RNGPair) *Encryptor[T] {
	return &Encryptor[T]{Dimension: sk.Dimension(), SecretKey: sk, rng: rng}
}

// EncryptAssign fills out (already shaped to this Encryptor's dimension)
// with a fresh encryption of the scalar plaintext m under the noise
// distribution dist -- the scalar analogue of glwe.Encryptor.EncryptAssign.
func (e *Encryptor[T]) EncryptAssign(m T, dist csprng.NoiseDistribution[T], out Ciphertext[T]) {
	if out.Dimension() != e.Dimension {
		panic(fmt.Sprintf("lwe: output ciphertext dimension %d does not match secret key dimension %d", out.Dimension(), e.Dimension))
	}

	csprng.NewUniformSampler[T](e.rng.Mask).SampleSliceAssign(out.Mask())

	var noise [1]T
	dist.AddNoiseSliceAssign(e.rng.Noise, noise[:])

	out.SetBody(noise[0] + m + vec.Dot(out.Mask(), e.SecretKey.Value))
}
