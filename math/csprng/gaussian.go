package csprng

import (
	"math"

	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// GaussianSampler draws torus scalars from a zero-mean discrete Gaussian of
// variance sigma^2, via the two-IID-uniform Box-Muller transform scaled to
// the torus.
type GaussianSampler[T num.TorusInt] struct {
	gen *Generator
}

// NewGaussianSampler wraps gen (typically the noise generator) in a
// GaussianSampler[T].
func NewGaussianSampler[T num.TorusInt](gen *Generator) *GaussianSampler[T] {
	return &GaussianSampler[T]{gen: gen}
}

// uniformOpenUnit returns a uniform float64 in (0, 1], avoiding the 0 that
// would make log(u1) diverge in the Box-Muller transform.
func (s *GaussianSampler[T]) uniformOpenUnit() float64 {
	const mantissaBits = 53
	v := s.gen.Uint64() >> (64 - mantissaBits)
	return (float64(v) + 1) / float64(uint64(1)<<mantissaBits)
}

// Sample draws one torus scalar from the zero-mean Gaussian of standard
// deviation stdDev (a fraction of the torus, e.g. ~2^-ksecurity).
func (s *GaussianSampler[T]) Sample(stdDev float64) T {
	u1 := s.uniformOpenUnit()
	u2 := s.uniformOpenUnit()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return floatToTorus[T](z * stdDev)
}

// SampleSliceAddAssign adds one independent Gaussian sample of standard
// deviation stdDev to every element of out.
func (s *GaussianSampler[T]) SampleSliceAddAssign(stdDev float64, out []T) {
	for i := range out {
		out[i] += s.Sample(stdDev)
	}
}

// SamplePolyAddAssign adds one independent Gaussian sample of standard
// deviation stdDev to every coefficient of p.
func (s *GaussianSampler[T]) SamplePolyAddAssign(stdDev float64, p poly.Poly[T]) {
	s.SampleSliceAddAssign(stdDev, p.Coeffs)
}

// floatToTorus rounds a real value x, expressed as a fraction of the torus
// [0,1), onto T by multiplying by 2^W and truncating toward zero, then
// reinterpreting the signed result as a wrapping torus scalar.
func floatToTorus[T num.TorusInt](x float64) T {
	scaled := x * math.Exp2(float64(num.SizeT[T]()))
	return num.FromSigned[T](int64(scaled))
}
