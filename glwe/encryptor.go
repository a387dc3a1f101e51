package glwe

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// Encryptor encrypts GLWE ciphertexts under a single SecretKey; decryption
// is done by Decryptor.
//
// Encryptor is not safe for concurrent use; construct one per goroutine
// from the same SecretKey, each with its own RNGPair.
type Encryptor[T num.TorusInt] struct {
	GlweRank   int
	PolyDegree int

	SecretKey SecretKey[T]

	rng *csprng.RNGPair
}

// NewEncryptor returns an Encryptor bound to sk and rng.
func NewEncryptor[T num.TorusInt](sk SecretKey[T], rng *csprng.RNGPair) *Encryptor[T] {
	return &Encryptor[T]{
		GlweRank:   sk.GlweRank(),
		PolyDegree: sk.PolyDegree(),
		SecretKey:  sk,
		rng:        rng,
	}
}

func (e *Encryptor[T]) checkShape(glweRank, polyDegree int, what string) {
	if glweRank != e.GlweRank {
		panic(fmt.Sprintf("glwe: %s GLWE rank %d does not match secret key rank %d", what, glweRank, e.GlweRank))
	}
	if polyDegree != e.PolyDegree {
		panic(fmt.Sprintf("glwe: %s polynomial degree %d does not match secret key degree %d", what, polyDegree, e.PolyDegree))
	}
}

// EncryptAssign fills out (already shaped to this Encryptor's (k,N)) with a
// fresh encryption of the plaintext list pt under the noise distribution
// dist.
//
// Preconditions (checked, panics on violation): out's GLWE rank and
// polynomial degree match the secret key's, and len(pt) == N.
func (e *Encryptor[T]) EncryptAssign(pt PlaintextList[T], dist csprng.NoiseDistribution[T], out Ciphertext[T]) {
	e.checkShape(out.GlweRank(), out.PolyDegree(), "output ciphertext")
	if pt.Len() != e.PolyDegree {
		panic(fmt.Sprintf("glwe: plaintext length %d does not match polynomial degree %d", pt.Len(), e.PolyDegree))
	}

	body := out.Body()
	body.CopyFrom(pt.AsPoly(e.PolyDegree))
	e.EncryptAssignPreloaded(dist, out)
}

// EncryptAssignPreloaded assumes the plaintext is already loaded into out's
// body and adds the mask and noise around it. This avoids an extra
// plaintext buffer in hot paths where the body can be filled in place.
func (e *Encryptor[T]) EncryptAssignPreloaded(dist csprng.NoiseDistribution[T], out Ciphertext[T]) {
	e.checkShape(out.GlweRank(), out.PolyDegree(), "output ciphertext")

	mask := out.Mask()
	body := out.Body()

	// Fill the mask with uniform bytes from the mask generator.
	csprng.NewUniformSampler[T](e.rng.Mask).SampleListAssign(mask)

	// Add fresh noise from the (strictly secret) noise generator, one
	// sample per coefficient. body already holds P, so this folds B = P + E
	// into a single additive pass.
	dist.AddNoisePolyAssign(e.rng.Noise, body)

	// B += <A, S> in the negacyclic ring.
	poly.WrappingAddMultisumAssign[T](mask, e.SecretKey.Value, body)
}

// EncryptListAssign requires len(pt) == N*n and encrypts the i-th length-N
// chunk into the i-th ciphertext of out, sequentially, sharing rng.
// Ciphertexts within the list are ordered and depend on RNG draw order:
// they are not interchangeable with ciphertexts encrypted independently in
// a different order.
func (e *Encryptor[T]) EncryptListAssign(pt PlaintextList[T], dist csprng.NoiseDistribution[T], out List[T]) {
	n := e.PolyDegree
	if pt.Len() != n*out.Len() {
		panic(fmt.Sprintf("glwe: plaintext length %d does not match N*n = %d", pt.Len(), n*out.Len()))
	}
	for i := 0; i < out.Len(); i++ {
		chunk := PlaintextList[T]{Value: pt.Value[i*n : (i+1)*n]}
		e.EncryptAssign(chunk, dist, out.Cts[i])
	}
}
