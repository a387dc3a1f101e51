package shortint

import "github.com/go-fhe/glwecore/math/num"

// ServerKey is the bootstrapping key plus functional bootstrap, referenced
// only through the two capabilities the keyswitch bridge consumes. Callers
// supply their own implementation backed by a real programmable bootstrap;
// internal/fhetest provides a non-cryptographic stand-in used only by this
// module's own tests.
type ServerKey[T num.TorusInt] interface {
	// Dimension returns the LWE dimension ciphertexts under this key have.
	Dimension() int
	// MessageModulus and CarryModulus are this parameter set's (m, c).
	MessageModulus() T
	CarryModulus() T

	// GenerateLookupTable builds a LUT evaluating f under this key's
	// encoding.
	GenerateLookupTable(f func(uint64) uint64) LookupTable[T]
	// ApplyLookupTableAssign evaluates lut on ct, writing the result into
	// out (which may alias ct).
	ApplyLookupTableAssign(ct Ciphertext[T], lut LookupTable[T], out *Ciphertext[T])
	// ApplyLookupTable is the allocating counterpart of
	// ApplyLookupTableAssign.
	ApplyLookupTable(ct Ciphertext[T], lut LookupTable[T]) Ciphertext[T]
}
