package glwe

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// Decryptor decrypts GLWE ciphertexts under a single SecretKey.
type Decryptor[T num.TorusInt] struct {
	GlweRank   int
	PolyDegree int
	SecretKey  SecretKey[T]
}

// NewDecryptor returns a Decryptor bound to sk.
func NewDecryptor[T num.TorusInt](sk SecretKey[T]) *Decryptor[T] {
	return &Decryptor[T]{GlweRank: sk.GlweRank(), PolyDegree: sk.PolyDegree(), SecretKey: sk}
}

// DecryptAssign writes out <- B - <A, S> (wrapping). The result is a noisy
// approximation of the original plaintext; rounding/decoding is left to the
// caller, since noise growth is not itself an error at this layer.
func (d *Decryptor[T]) DecryptAssign(ct Ciphertext[T], out PlaintextList[T]) {
	if ct.GlweRank() != d.GlweRank || ct.PolyDegree() != d.PolyDegree {
		panic(fmt.Sprintf("glwe: ciphertext shape (k=%d,N=%d) does not match secret key (k=%d,N=%d)",
			ct.GlweRank(), ct.PolyDegree(), d.GlweRank, d.PolyDegree))
	}
	if out.Len() != d.PolyDegree {
		panic(fmt.Sprintf("glwe: output plaintext length %d does not match polynomial degree %d", out.Len(), d.PolyDegree))
	}

	dst := out.AsPoly(d.PolyDegree)
	dst.CopyFrom(ct.Body())
	poly.WrappingSubMultisumAssign[T](ct.Mask(), d.SecretKey.Value, dst)
}

// Decrypt is the allocating counterpart of DecryptAssign.
func (d *Decryptor[T]) Decrypt(ct Ciphertext[T]) PlaintextList[T] {
	out := NewPlaintextList[T](d.PolyDegree)
	d.DecryptAssign(ct, out)
	return out
}
