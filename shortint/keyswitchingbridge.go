package shortint

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/go-fhe/glwecore/lwe"
	"github.com/go-fhe/glwecore/math/num"
)

// KeySwitchingBridge is the parameter-set caster: a keyswitch key plus the
// source and destination server keys, and the precomputed shift between
// their full message moduli.
type KeySwitchingBridge[T num.TorusInt] struct {
	KeySwitchKey lwe.KeySwitchKey[T]
	Src          ServerKey[T]
	Dst          ServerKey[T]

	// CastRshift = log2(m_dst*c_dst) - log2(m_src*c_src), validated against
	// the torus width at construction time.
	CastRshift int
}

func validateShape[T num.TorusInt](ksk lwe.KeySwitchKey[T], src, dst ServerKey[T]) (m1, m2 uint64, rshift int) {
	if ksk.InputDimension != src.Dimension() {
		panic(fmt.Sprintf("shortint: keyswitch key input dimension %d does not match source server key dimension %d", ksk.InputDimension, src.Dimension()))
	}
	if ksk.OutputDimension != dst.Dimension() {
		panic(fmt.Sprintf("shortint: keyswitch key output dimension %d does not match destination server key dimension %d", ksk.OutputDimension, dst.Dimension()))
	}

	m1 = fullMessageModulus(src.MessageModulus(), src.CarryModulus())
	m2 = fullMessageModulus(dst.MessageModulus(), dst.CarryModulus())

	rshift = num.Log2(m2) - num.Log2(m1)
	w := num.SizeT[T]()
	if rshift >= w || rshift <= -w {
		panic(fmt.Sprintf("shortint: cast_rshift %d does not fit within the torus width %d", rshift, w))
	}
	return m1, m2, rshift
}

// New constructs a KeySwitchingBridge, checking dimension agreement between
// ksk and the two server keys, and that both full message moduli are
// powers of two (fullMessageModulus already panics otherwise via
// src.MessageModulus()/CarryModulus()). Ciphertext moduli are always equal
// here since src, dst and ksk share the same torus type T.
func New[T num.TorusInt](ksk lwe.KeySwitchKey[T], src, dst ServerKey[T]) *KeySwitchingBridge[T] {
	_, _, rshift := validateShape(ksk, src, dst)
	return &KeySwitchingBridge[T]{KeySwitchKey: ksk, Src: src, Dst: dst, CastRshift: rshift}
}

// CastInto casts src into dst across the bridge's two parameter sets, a
// three-case dispatch keyed by CastRshift. dst must already be allocated at
// the destination server key's dimension; its moduli tags are overwritten
// to the destination's.
func (b *KeySwitchingBridge[T]) CastInto(src Ciphertext[T], dst *Ciphertext[T]) {
	switch {
	case b.CastRshift == 0:
		lwe.KeySwitchAssign(b.KeySwitchKey, src.CT, dst.CT)

	case b.CastRshift > 0:
		// Widening: keyswitch first, then a LUT on the destination side
		// cleans the extra low bits the keyswitch introduced and rescales
		// the payload into its new (higher) message position.
		lwe.KeySwitchAssign(b.KeySwitchKey, src.CT, dst.CT)
		shift := uint(b.CastRshift)
		lut := b.Dst.GenerateLookupTable(func(n uint64) uint64 { return n >> shift })
		b.Dst.ApplyLookupTableAssign(*dst, lut, dst)

	default:
		// Narrowing: the shift must happen while the padding bit is still
		// clean, i.e. under the source parameters, before the keyswitch --
		// doing it after would let the left shift corrupt the padding bit
		// and propagate dirty bits through the keyswitch.
		shift := uint(-b.CastRshift)
		m1 := fullMessageModulus(b.Src.MessageModulus(), b.Src.CarryModulus())
		lut := b.Src.GenerateLookupTable(func(n uint64) uint64 { return (n << shift) % m1 })
		shifted := b.Src.ApplyLookupTable(src, lut)
		lwe.KeySwitchAssign(b.KeySwitchKey, shifted.CT, dst.CT)
	}

	dst.MessageModulus = b.Dst.MessageModulus()
	dst.CarryModulus = b.Dst.CarryModulus()
}

// Cast allocates a fresh ciphertext under the destination server key's
// parameters and delegates to CastInto.
func (b *KeySwitchingBridge[T]) Cast(src Ciphertext[T]) Ciphertext[T] {
	dst := NewCiphertext[T](b.Dst.Dimension(), b.Dst.MessageModulus(), b.Dst.CarryModulus())
	b.CastInto(src, &dst)
	return dst
}

// IntoRawParts deconstructs the bridge into its components -- useful when
// the server keys are serialized separately and shared by reference across
// many bridges.
func (b *KeySwitchingBridge[T]) IntoRawParts() (lwe.KeySwitchKey[T], ServerKey[T], ServerKey[T], int) {
	return b.KeySwitchKey, b.Src, b.Dst, b.CastRshift
}

// FromRawParts reconstructs a KeySwitchingBridge from its components,
// re-validating every invariant New checks plus the supplied castRshift
// itself.
func FromRawParts[T num.TorusInt](ksk lwe.KeySwitchKey[T], src, dst ServerKey[T], castRshift int) (*KeySwitchingBridge[T], error) {
	m1, m2, expected := validateShape(ksk, src, dst)
	if castRshift != expected {
		return nil, errors.Errorf("shortint: cast_rshift %d does not match log2(%d)-log2(%d) = %d", castRshift, m2, m1, expected)
	}
	return &KeySwitchingBridge[T]{KeySwitchKey: ksk, Src: src, Dst: dst, CastRshift: castRshift}, nil
}

// WriteTo serializes the bridge's keyswitch key and cast shift only --
// not the server keys, which are typically shared by reference across
// many bridges and are expected to be (de)serialized independently.
func (b *KeySwitchingBridge[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := b.KeySwitchKey.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(err, "shortint: writing keyswitching bridge")
	}
	var shiftBuf [8]byte
	putInt64(shiftBuf[:], int64(b.CastRshift))
	m, err := w.Write(shiftBuf[:])
	n += int64(m)
	if err != nil {
		return n, errors.Wrap(err, "shortint: writing keyswitching bridge cast shift")
	}
	return n, nil
}

// ReadKeySwitchingBridge deserializes a bridge written by WriteTo. The
// caller supplies src and dst, since the wire format does not embed server
// keys (see WriteTo).
func ReadKeySwitchingBridge[T num.TorusInt](r io.Reader, src, dst ServerKey[T]) (*KeySwitchingBridge[T], int64, error) {
	ksk, n, err := lwe.ReadKeySwitchKey[T](r)
	if err != nil {
		return nil, n, errors.Wrap(err, "shortint: reading keyswitching bridge")
	}
	var shiftBuf [8]byte
	m, err := io.ReadFull(r, shiftBuf[:])
	n += int64(m)
	if err != nil {
		return nil, n, errors.Wrap(err, "shortint: reading keyswitching bridge cast shift")
	}
	castRshift := int(getInt64(shiftBuf[:]))

	bridge, err := FromRawParts(ksk, src, dst, castRshift)
	if err != nil {
		return nil, n, err
	}
	return bridge, n, nil
}

func putInt64(buf []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
}

func getInt64(buf []byte) int64 {
	var u uint64
	for i := 7; i >= 0; i-- {
		u = u<<8 | uint64(buf[i])
	}
	return int64(u)
}
