package csprng

import (
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

// NoiseDistribution is a noise parameterization -- Gaussian(σ²) or
// TUniform(b) -- that GLWE/LWE encryption can add to a polynomial or slice
// using a given noise generator, without the caller needing to know which
// concrete sampler backs it.
type NoiseDistribution[T num.TorusInt] interface {
	AddNoisePolyAssign(noise *Generator, p poly.Poly[T])
	AddNoiseSliceAssign(noise *Generator, out []T)
}

// GaussianNoise is the Gaussian(σ²) noise distribution, parameterized by
// its standard deviation expressed as a fraction of the torus.
type GaussianNoise[T num.TorusInt] struct {
	StdDev float64
}

// AddNoisePolyAssign implements NoiseDistribution[T].
func (g GaussianNoise[T]) AddNoisePolyAssign(noise *Generator, p poly.Poly[T]) {
	NewGaussianSampler[T](noise).SamplePolyAddAssign(g.StdDev, p)
}

// AddNoiseSliceAssign implements NoiseDistribution[T].
func (g GaussianNoise[T]) AddNoiseSliceAssign(noise *Generator, out []T) {
	NewGaussianSampler[T](noise).SampleSliceAddAssign(g.StdDev, out)
}

// TUniformNoise is the TUniform(b) noise distribution, parameterized by its
// bound exponent b.
type TUniformNoise[T num.TorusInt] struct {
	BoundLog2 int
}

// AddNoisePolyAssign implements NoiseDistribution[T].
func (d TUniformNoise[T]) AddNoisePolyAssign(noise *Generator, p poly.Poly[T]) {
	NewTUniformSampler[T](noise, d.BoundLog2).SamplePolyAddAssign(p)
}

// AddNoiseSliceAssign implements NoiseDistribution[T].
func (d TUniformNoise[T]) AddNoiseSliceAssign(noise *Generator, out []T) {
	NewTUniformSampler[T](noise, d.BoundLog2).SampleSliceAddAssign(out)
}
