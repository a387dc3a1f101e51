// Package shortint associates LWE ciphertexts with a (message_modulus,
// carry_modulus) pair and implements the keyswitch bridge that casts a
// ciphertext between two independently-parameterised shortint schemes. The
// functional bootstrap itself is an external collaborator, reached only
// through the ServerKey interface.
package shortint

import (
	"fmt"

	"github.com/go-fhe/glwecore/math/num"
)

// fullMessageModulus returns m*c and panics unless it is a power of two,
// the invariant every ShortintCiphertext must satisfy.
func fullMessageModulus[T num.TorusInt](messageModulus, carryModulus T) uint64 {
	fm := uint64(messageModulus) * uint64(carryModulus)
	if !num.IsPowerOfTwo(fm) {
		panic(fmt.Sprintf("shortint: message_modulus * carry_modulus = %d is not a power of two", fm))
	}
	return fm
}

// encodingShift returns the bit position the message occupies: the torus
// width minus the full-message-modulus bit count minus one padding bit.
func encodingShift[T num.TorusInt](messageModulus, carryModulus T) int {
	fm := fullMessageModulus(messageModulus, carryModulus)
	return num.SizeT[T]() - num.Log2(fm) - 1
}

// Encode places msg (reduced mod m*c) at its plaintext position, leaving
// one clean padding bit above it.
func Encode[T num.TorusInt](messageModulus, carryModulus T, msg uint64) T {
	fm := fullMessageModulus(messageModulus, carryModulus)
	shift := encodingShift(messageModulus, carryModulus)
	return T(msg%fm) << uint(shift)
}

// Decode recovers the message encoded by Encode from a (possibly noisy)
// plaintext scalar, rounding to the nearest representable value before
// extracting it.
func Decode[T num.TorusInt](messageModulus, carryModulus T, pt T) uint64 {
	fm := fullMessageModulus(messageModulus, carryModulus)
	shift := encodingShift(messageModulus, carryModulus)

	rounded := pt
	if shift > 0 {
		rounded += T(1) << uint(shift-1)
	}
	rounded >>= uint(shift)
	return uint64(rounded) % fm
}
