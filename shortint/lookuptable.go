package shortint

import (
	"github.com/go-fhe/glwecore/glwe"
	"github.com/go-fhe/glwecore/math/num"
)

// LookupTable is the LUT produced by ServerKey.GenerateLookupTable:
// on-the-wire it is a trivially-encrypted GLWE accumulator, the format a
// real functional bootstrap (blind rotation) consumes. Because that
// bootstrap is not implemented here, LookupTable also carries the
// generating function directly, so that a non-cryptographic ServerKey
// stand-in (internal/fhetest) can evaluate it without implementing blind
// rotation; a production ServerKey built on real PBS uses Accumulator only
// and ignores Function.
type LookupTable[T num.TorusInt] struct {
	Accumulator glwe.Ciphertext[T]
	Function    func(uint64) uint64
}

// Evaluate applies the table's function to x. A real bootstrap instead
// evaluates Accumulator homomorphically; this is the cleartext equivalent
// used only by test ServerKey implementations.
func (lut LookupTable[T]) Evaluate(x uint64) uint64 {
	return lut.Function(x)
}
