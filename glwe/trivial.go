package glwe

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/num"
)

// TrivialEncryptAssign sets the mask to zero and the body to pt, with no
// noise and no secret key involved. This is not an encryption -- it is a
// format shim decryptable by any secret key, used for publishing data (e.g.
// lookup tables) that the functional bootstrap consumes.
func TrivialEncryptAssign[T num.TorusInt](pt PlaintextList[T], out Ciphertext[T]) {
	if pt.Len() != out.PolyDegree() {
		panic(fmt.Sprintf("glwe: plaintext length %d does not match polynomial degree %d", pt.Len(), out.PolyDegree()))
	}
	out.Mask().Clear()
	out.Body().CopyFrom(pt.AsPoly(out.PolyDegree()))
}

// AllocateAndTriviallyEncryptNewCiphertext returns a fresh ciphertext of the
// given GLWE rank with N = len(pt), trivially encrypting pt into it.
func AllocateAndTriviallyEncryptNewCiphertext[T num.TorusInt](glweRank int, pt PlaintextList[T]) Ciphertext[T] {
	out := NewCiphertext[T](glweRank, pt.Len())
	TrivialEncryptAssign(pt, out)
	return out
}
