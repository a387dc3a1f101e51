package lwe

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/go-fhe/glwecore/math/num"
)

// DecompositionParametersLiteral is the uncompiled (base log, level count)
// pair describing a signed gadget decomposition. Compile it once into a
// DecompositionParameters before use.
type DecompositionParametersLiteral[T num.TorusInt] struct {
	// BaseLog is log2(B), the digit width in bits.
	BaseLog int
	// Level is the number of decomposition levels l.
	Level int
}

// Compile validates the literal against the torus width W and returns a
// DecompositionParameters. Panics if BaseLog*Level exceeds W or either
// field is non-positive.
func (lit DecompositionParametersLiteral[T]) Compile() DecompositionParameters[T] {
	w := num.SizeT[T]()
	if lit.BaseLog <= 0 || lit.Level <= 0 {
		panic("lwe: decomposition base log and level must be positive")
	}
	if lit.BaseLog*lit.Level > w {
		panic(fmt.Sprintf("lwe: decomposition base log * level = %d exceeds torus width %d", lit.BaseLog*lit.Level, w))
	}
	return DecompositionParameters[T]{baseLog: lit.BaseLog, level: lit.Level}
}

// DecompositionParameters is a compiled, validated gadget decomposition
// shape. Immutable.
type DecompositionParameters[T num.TorusInt] struct {
	baseLog int
	level   int
}

// BaseLog returns log2(B).
func (p DecompositionParameters[T]) BaseLog() int { return p.baseLog }

// Level returns the level count l.
func (p DecompositionParameters[T]) Level() int { return p.level }

// Base returns B = 2^BaseLog.
func (p DecompositionParameters[T]) Base() T { return T(1) << uint(p.baseLog) }

// Literal returns the uncompiled literal this was compiled from.
func (p DecompositionParameters[T]) Literal() DecompositionParametersLiteral[T] {
	return DecompositionParametersLiteral[T]{BaseLog: p.baseLog, Level: p.level}
}

// WriteTo serializes the literal as two little-endian uint64 fields.
func (p DecompositionParameters[T]) WriteTo(w io.Writer) (int64, error) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(p.baseLog))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(p.level))
	n, err := w.Write(buf[:])
	if err != nil {
		return int64(n), errors.Wrap(err, "lwe: writing decomposition parameters")
	}
	return int64(n), nil
}

// ReadFrom deserializes a DecompositionParameters previously written by
// WriteTo, re-validating it via Compile.
func (p *DecompositionParameters[T]) ReadFrom(r io.Reader) (int64, error) {
	var buf [16]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(n), errors.Wrap(err, "lwe: reading decomposition parameters")
	}
	lit := DecompositionParametersLiteral[T]{
		BaseLog: int(binary.LittleEndian.Uint64(buf[0:8])),
		Level:   int(binary.LittleEndian.Uint64(buf[8:16])),
	}
	*p = lit.Compile()
	return int64(n), nil
}

// DecomposeAssign writes the signed gadget decomposition of x into out
// (len(out) must equal params.Level()), most-significant level first. Each
// digit lies in [-B/2, B/2), stored as its torus (wrapping) representation,
// and recombining them via sum_j out[j] * 2^(W - BaseLog*(j+1)) reconstructs
// x up to the rounding error discarded below the lowest decomposed bit.
func DecomposeAssign[T num.TorusInt](x T, params DecompositionParameters[T], out []T) {
	if len(out) != params.level {
		panic("lwe: decomposition output length does not match level count")
	}

	w := num.SizeT[T]()
	shift := w - params.baseLog*params.level

	rounded := x
	if shift > 0 {
		rounded += T(1) << uint(shift-1)
	}
	rounded >>= uint(shift)

	base := params.Base()
	halfBase := base >> 1
	mask := base - 1

	var carry T
	for j := params.level - 1; j >= 0; j-- {
		digit := (rounded & mask) + carry
		rounded >>= uint(params.baseLog)
		if digit >= halfBase {
			out[j] = digit - base
			carry = 1
		} else {
			out[j] = digit
			carry = 0
		}
	}
}

// Decompose is the allocating counterpart of DecomposeAssign.
func Decompose[T num.TorusInt](x T, params DecompositionParameters[T]) []T {
	out := make([]T, params.level)
	DecomposeAssign(x, params, out)
	return out
}
