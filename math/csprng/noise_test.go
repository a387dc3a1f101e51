package csprng_test

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/math/poly"
)

func TestGaussianNoiseStdDev(t *testing.T) {
	const stdDev = 1.0 / 4096.0
	const draws = 20000

	rng := csprng.NewGenerator(csprng.Seed{3})
	dist := csprng.GaussianNoise[uint64]{StdDev: stdDev}

	out := make([]uint64, draws)
	dist.AddNoiseSliceAssign(rng, out)

	samples := make([]float64, draws)
	for i, v := range out {
		samples[i] = float64(num.SignedOf(v)) / math.Exp2(64)
	}

	sd, err := stats.StandardDeviation(samples)
	require.NoError(t, err)
	assert.InDelta(t, stdDev, sd, stdDev*0.2, "empirical standard deviation should track the configured sigma")
}

func TestNoiseDistributionPolyAssign(t *testing.T) {
	rng := csprng.NewGenerator(csprng.Seed{4})
	p := poly.New[uint64](8)

	var dist csprng.NoiseDistribution[uint64] = csprng.TUniformNoise[uint64]{BoundLog2: 20}
	dist.AddNoisePolyAssign(rng, p)

	nonzero := false
	for _, v := range p.Coeffs {
		if v != 0 {
			nonzero = true
			break
		}
	}
	assert.True(t, nonzero, "adding noise should perturb at least one coefficient")
}
