package csprng

import (
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// TUniformSampler draws torus scalars from TUniform(b), the triangular-
// endpoint distribution on [-2^b, 2^b]. Its sampling recipe is bit-exact by
// construction (no rejection), which is what makes it suitable for
// constant-time noise sampling.
type TUniformSampler[T num.TorusInt] struct {
	gen *Generator
	b   int
}

// NewTUniformSampler constructs a TUniformSampler for bound b. Panics if
// b+2 exceeds the bit width of T.
func NewTUniformSampler[T num.TorusInt](gen *Generator, b int) *TUniformSampler[T] {
	if b < 0 {
		panic("csprng: TUniform bound must be non-negative")
	}
	if b+2 > num.SizeT[T]() {
		panic("csprng: TUniform bound_log2 + 2 exceeds the torus bit width")
	}
	return &TUniformSampler[T]{gen: gen, b: b}
}

// BoundLog2 returns b.
func (s *TUniformSampler[T]) BoundLog2() int {
	return s.b
}

// DistinctValueCount returns the number of distinct values TUniform(b) can
// take: 2^(b+1) + 1.
func (s *TUniformSampler[T]) DistinctValueCount() uint64 {
	return (uint64(1) << (s.b + 1)) + 1
}

// MinValueInclusive returns -2^b, the distribution's lower endpoint.
func (s *TUniformSampler[T]) MinValueInclusive() int64 {
	return -(int64(1) << s.b)
}

// MaxValueInclusive returns 2^b, the distribution's upper endpoint.
func (s *TUniformSampler[T]) MaxValueInclusive() int64 {
	return int64(1) << s.b
}

// Sample draws one torus scalar from TUniform(b), following this bit-exact
// recipe:
//
//  1. draw ceil((b+2)/8) bytes, little-endian packed into a W-bit buffer
//  2. mask to the low b+2 bits -> r in [0, 2^(b+2))
//  3. carry = r&1; r >>= 1 -> r' in [0, 2^(b+1)]
//  4. r' = r' + carry (wrapping); r' -= 2^b (wrapping); return as torus scalar
func (s *TUniformSampler[T]) Sample() T {
	requiredBits := s.b + 2
	requiredBytes := (requiredBits + 7) / 8

	var buf [16]byte // wide enough for the largest supported W (64 bits -> <=8 bytes)
	s.gen.Fill(buf[:requiredBytes])

	var native uint64
	for i := requiredBytes - 1; i >= 0; i-- {
		native = native<<8 | uint64(buf[i])
	}

	modMask := uint64(1)<<uint(requiredBits) - 1
	r := native & modMask

	carry := r & 1
	r >>= 1
	r = r + carry
	r -= uint64(1) << s.b

	return T(r)
}

// SampleSliceAssign fills out with independent TUniform(b) samples.
func (s *TUniformSampler[T]) SampleSliceAssign(out []T) {
	for i := range out {
		out[i] = s.Sample()
	}
}

// SamplePolyAssign fills p's coefficients with independent TUniform(b)
// samples, one sample per coefficient.
func (s *TUniformSampler[T]) SamplePolyAssign(p poly.Poly[T]) {
	s.SampleSliceAssign(p.Coeffs)
}

// SampleSliceAddAssign adds one independent TUniform(b) sample to every
// element of out.
func (s *TUniformSampler[T]) SampleSliceAddAssign(out []T) {
	for i := range out {
		out[i] += s.Sample()
	}
}

// SamplePolyAddAssign adds one independent TUniform(b) sample to every
// coefficient of p.
func (s *TUniformSampler[T]) SamplePolyAddAssign(p poly.Poly[T]) {
	s.SampleSliceAddAssign(p.Coeffs)
}
