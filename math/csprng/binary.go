package csprng

import (
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// BinarySampler draws uniform-binary {0,1} scalars, used to sample GLWE and
// LWE secret keys.
type BinarySampler[T num.TorusInt] struct {
	gen *Generator

	bitBuf byte
	nBits  int
}

// NewBinarySampler wraps gen in a BinarySampler[T].
func NewBinarySampler[T num.TorusInt](gen *Generator) *BinarySampler[T] {
	return &BinarySampler[T]{gen: gen}
}

func (s *BinarySampler[T]) nextBit() T {
	if s.nBits == 0 {
		var b [1]byte
		s.gen.Fill(b[:])
		s.bitBuf = b[0]
		s.nBits = 8
	}
	bit := s.bitBuf & 1
	s.bitBuf >>= 1
	s.nBits--
	return T(bit)
}

// SampleSliceAssign fills out with independent uniform-binary scalars.
func (s *BinarySampler[T]) SampleSliceAssign(out []T) {
	for i := range out {
		out[i] = s.nextBit()
	}
}

// SamplePolyAssign fills p's coefficients with independent uniform-binary
// scalars.
func (s *BinarySampler[T]) SamplePolyAssign(p poly.Poly[T]) {
	s.SampleSliceAssign(p.Coeffs)
}

// SampleListAssign fills every polynomial in l with independent
// uniform-binary scalars.
func (s *BinarySampler[T]) SampleListAssign(l poly.List[T]) {
	for _, p := range l.Polys {
		s.SamplePolyAssign(p)
	}
}
