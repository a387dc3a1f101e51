package lwe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fhe/glwecore/lwe"
	"github.com/go-fhe/glwecore/math/csprng"
)

func decodeTop4Bits(x uint64) uint64 {
	const shift = 60
	rounded := (x + (1 << (shift - 1))) >> shift
	return rounded & 0xF
}

func TestEncryptDecrypt(t *testing.T) {
	const dimension = 630
	seed := csprng.Seed{7}
	rng := csprng.NewRNGPairFromSeed(seed)
	sk := lwe.GenSecretKey[uint64](dimension, csprng.NewBinarySampler[uint64](rng.Mask))

	rng2 := csprng.NewRNGPairFromSeed(seed)
	enc := lwe.NewEncryptor[uint64](sk, &rng2)
	dec := lwe.NewDecryptor[uint64](sk)

	ct := lwe.NewCiphertext[uint64](dimension)
	dist := csprng.GaussianNoise[uint64]{StdDev: 2.94e-16}
	enc.EncryptAssign(3<<60, dist, ct)

	out := dec.Decrypt(ct)
	require.Equal(t, uint64(3), decodeTop4Bits(out))
}

func TestKeySwitch(t *testing.T) {
	const inDim, outDim = 630, 1024
	seed := csprng.Seed{11}
	rng := csprng.NewRNGPairFromSeed(seed)

	srcKey := lwe.GenSecretKey[uint64](inDim, csprng.NewBinarySampler[uint64](rng.Mask))
	dstKey := lwe.GenSecretKey[uint64](outDim, csprng.NewBinarySampler[uint64](rng.Mask))

	params := lwe.DecompositionParametersLiteral[uint64]{BaseLog: 4, Level: 8}.Compile()
	kskDist := csprng.TUniformNoise[uint64]{BoundLog2: 15}
	ksk := lwe.GenKeySwitchKey[uint64](srcKey, dstKey, params, kskDist, &rng)

	srcEnc := lwe.NewEncryptor[uint64](srcKey, &rng)
	dstDec := lwe.NewDecryptor[uint64](dstKey)

	encDist := csprng.GaussianNoise[uint64]{StdDev: 2.94e-16}
	src := lwe.NewCiphertext[uint64](inDim)
	srcEnc.EncryptAssign(3<<60, encDist, src)

	dst := lwe.KeySwitch[uint64](ksk, src)
	assert.Equal(t, outDim, dst.Dimension())

	decoded := decodeTop4Bits(dstDec.Decrypt(dst))
	require.Equal(t, uint64(3), decoded)
}

func TestCiphertextAddSubAssign(t *testing.T) {
	const dimension = 630
	seed := csprng.Seed{13}
	rng := csprng.NewRNGPairFromSeed(seed)
	sk := lwe.GenSecretKey[uint64](dimension, csprng.NewBinarySampler[uint64](rng.Mask))

	encRng := csprng.NewRNGPairFromSeed(csprng.Seed{14})
	enc := lwe.NewEncryptor[uint64](sk, &encRng)
	dec := lwe.NewDecryptor[uint64](sk)
	dist := csprng.GaussianNoise[uint64]{StdDev: 2.94e-16}

	ctA := lwe.NewCiphertext[uint64](dimension)
	enc.EncryptAssign(2<<60, dist, ctA)
	ctB := lwe.NewCiphertext[uint64](dimension)
	enc.EncryptAssign(5<<60, dist, ctB)

	sum := ctA.Clone()
	sum.AddAssign(ctB)
	require.Equal(t, uint64(7), decodeTop4Bits(dec.Decrypt(sum)))

	diff := ctB.Clone()
	diff.SubAssign(ctA)
	require.Equal(t, uint64(3), decodeTop4Bits(dec.Decrypt(diff)))
}

func TestDecompositionParametersCompile(t *testing.T) {
	assert.Panics(t, func() {
		lwe.DecompositionParametersLiteral[uint64]{BaseLog: 32, Level: 3}.Compile()
	})

	params := lwe.DecompositionParametersLiteral[uint64]{BaseLog: 8, Level: 4}.Compile()
	assert.Equal(t, 8, params.BaseLog())
	assert.Equal(t, 4, params.Level())
	assert.Equal(t, uint64(256), params.Base())
}
