package csprng

import (
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// UniformSampler draws torus scalars uniformly from T_q = Z/2^W by taking
// raw generator bytes: every bit pattern of width W is already a valid,
// equally likely torus element, so no rejection step is needed. This is
// the mask generator's only job.
type UniformSampler[T num.TorusInt] struct {
	gen *Generator
}

// NewUniformSampler wraps gen (typically the mask generator) in a
// UniformSampler[T].
func NewUniformSampler[T num.TorusInt](gen *Generator) *UniformSampler[T] {
	return &UniformSampler[T]{gen: gen}
}

// SampleSliceAssign fills out with independent uniform torus scalars.
func (s *UniformSampler[T]) SampleSliceAssign(out []T) {
	w := num.SizeT[T]() / 8
	buf := make([]byte, w)
	for i := range out {
		s.gen.Fill(buf)
		var v uint64
		for j := w - 1; j >= 0; j-- {
			v = v<<8 | uint64(buf[j])
		}
		out[i] = T(v)
	}
}

// SamplePolyAssign fills p's coefficients with independent uniform torus
// scalars.
func (s *UniformSampler[T]) SamplePolyAssign(p poly.Poly[T]) {
	s.SampleSliceAssign(p.Coeffs)
}

// SampleListAssign fills every polynomial in l with independent uniform
// torus scalars.
func (s *UniformSampler[T]) SampleListAssign(l poly.List[T]) {
	for _, p := range l.Polys {
		s.SamplePolyAssign(p)
	}
}
