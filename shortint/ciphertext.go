package shortint

import (
	"github.com/go-fhe/glwecore/lwe"
	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
)

// Ciphertext is a ShortintCiphertext: an LWE ciphertext tagged with the
// message and carry moduli it was encoded under.
type Ciphertext[T num.TorusInt] struct {
	CT             lwe.Ciphertext[T]
	MessageModulus T
	CarryModulus   T
}

// NewCiphertext allocates a zeroed Ciphertext of the given LWE dimension
// and moduli tags.
func NewCiphertext[T num.TorusInt](dimension int, messageModulus, carryModulus T) Ciphertext[T] {
	fullMessageModulus(messageModulus, carryModulus) // panics if not a power of two
	return Ciphertext[T]{
		CT:             lwe.NewCiphertext[T](dimension),
		MessageModulus: messageModulus,
		CarryModulus:   carryModulus,
	}
}

// FullMessageModulus returns message_modulus * carry_modulus.
func (ct Ciphertext[T]) FullMessageModulus() uint64 {
	return fullMessageModulus(ct.MessageModulus, ct.CarryModulus)
}

// EncryptAssign encodes msg at ct's message position and fills ct with a
// fresh LWE encryption of it under enc's secret key.
func EncryptAssign[T num.TorusInt](enc *lwe.Encryptor[T], msg uint64, dist csprng.NoiseDistribution[T], ct Ciphertext[T]) {
	pt := Encode(ct.MessageModulus, ct.CarryModulus, msg)
	enc.EncryptAssign(pt, dist, ct.CT)
}

// Decrypt decrypts ct and decodes the resulting noisy plaintext back to a
// message in [0, message_modulus*carry_modulus).
func Decrypt[T num.TorusInt](dec *lwe.Decryptor[T], ct Ciphertext[T]) uint64 {
	pt := dec.Decrypt(ct.CT)
	return Decode(ct.MessageModulus, ct.CarryModulus, pt)
}
