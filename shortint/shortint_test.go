package shortint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-fhe/glwecore/internal/fhetest"
	"github.com/go-fhe/glwecore/lwe"
	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/shortint"
)

const lweDimension = 630

func setup(t *testing.T, messageModulus, carryModulus uint64) (*lwe.Encryptor[uint64], *fhetest.ServerKey[uint64], csprng.NoiseDistribution[uint64]) {
	t.Helper()
	rng := csprng.NewRNGPairFromSeed(csprng.Seed{byte(messageModulus), byte(carryModulus)})
	sk := lwe.GenSecretKey[uint64](lweDimension, csprng.NewBinarySampler[uint64](rng.Mask))
	dist := csprng.GaussianNoise[uint64]{StdDev: 2.94e-16}
	enc := lwe.NewEncryptor[uint64](sk, &rng)
	sv := fhetest.New[uint64](sk, messageModulus, carryModulus, dist, &rng)
	return enc, sv, dist
}

func TestKeySwitchingBridgeSameWidth(t *testing.T) {
	encSrc, svSrc, dist := setup(t, 2, 2)
	_, svDst, _ := setup(t, 2, 2)

	dstSk := svDst.SecretKey
	rng := csprng.NewRNGPairFromSeed(csprng.Seed{99})
	params := lwe.DecompositionParametersLiteral[uint64]{BaseLog: 4, Level: 8}.Compile()
	kskDist := csprng.TUniformNoise[uint64]{BoundLog2: 15}
	ksk := lwe.GenKeySwitchKey[uint64](svSrc.SecretKey, dstSk, params, kskDist, &rng)

	bridge := shortint.New[uint64](ksk, svSrc, svDst)
	require.Equal(t, 0, bridge.CastRshift)

	src := shortint.NewCiphertext[uint64](lweDimension, 2, 2)
	shortint.EncryptAssign[uint64](encSrc, 1, dist, src)

	dst := bridge.Cast(src)
	require.Equal(t, uint64(1), shortint.Decrypt[uint64](lwe.NewDecryptor[uint64](dstSk), dst))
}

func TestKeySwitchingBridgeWidening(t *testing.T) {
	encSrc, svSrc, dist := setup(t, 2, 1)
	_, svDst, _ := setup(t, 4, 2)

	dstSk := svDst.SecretKey
	rng := csprng.NewRNGPairFromSeed(csprng.Seed{100})
	params := lwe.DecompositionParametersLiteral[uint64]{BaseLog: 4, Level: 8}.Compile()
	kskDist := csprng.TUniformNoise[uint64]{BoundLog2: 15}
	ksk := lwe.GenKeySwitchKey[uint64](svSrc.SecretKey, dstSk, params, kskDist, &rng)

	bridge := shortint.New[uint64](ksk, svSrc, svDst)
	require.Equal(t, 2, bridge.CastRshift)

	src := shortint.NewCiphertext[uint64](lweDimension, 2, 1)
	shortint.EncryptAssign[uint64](encSrc, 1, dist, src)

	dst := bridge.Cast(src)
	require.Equal(t, uint64(1), shortint.Decrypt[uint64](lwe.NewDecryptor[uint64](dstSk), dst))
}

func TestKeySwitchingBridgeNarrowing(t *testing.T) {
	encSrc, svSrc, dist := setup(t, 4, 2)
	_, svDst, _ := setup(t, 2, 1)

	dstSk := svDst.SecretKey
	rng := csprng.NewRNGPairFromSeed(csprng.Seed{101})
	params := lwe.DecompositionParametersLiteral[uint64]{BaseLog: 4, Level: 8}.Compile()
	kskDist := csprng.TUniformNoise[uint64]{BoundLog2: 15}
	ksk := lwe.GenKeySwitchKey[uint64](svSrc.SecretKey, dstSk, params, kskDist, &rng)

	bridge := shortint.New[uint64](ksk, svSrc, svDst)
	require.Equal(t, -2, bridge.CastRshift)

	src := shortint.NewCiphertext[uint64](lweDimension, 4, 2)
	shortint.EncryptAssign[uint64](encSrc, 1, dist, src)

	dst := bridge.Cast(src)
	require.Equal(t, uint64(1), shortint.Decrypt[uint64](lwe.NewDecryptor[uint64](dstSk), dst))

	// Swapping the order (keyswitch before shift) corrupts the still-dirty
	// padding bit and must not reproduce the same correct decryption.
	wrongOrder := func() uint64 {
		shifted := lwe.KeySwitch[uint64](ksk, src.CT)
		shiftedCt := shortint.Ciphertext[uint64]{CT: shifted, MessageModulus: 2, CarryModulus: 1}
		lut := svDst.GenerateLookupTable(func(n uint64) uint64 { return (n << 2) % 2 })
		result := svDst.ApplyLookupTable(shiftedCt, lut)
		return shortint.Decrypt[uint64](lwe.NewDecryptor[uint64](dstSk), result)
	}()
	require.NotEqual(t, uint64(1), wrongOrder)
}

func TestKeySwitchingBridgeConstructionGuards(t *testing.T) {
	_, svSrc, _ := setup(t, 2, 2)
	_, svDst, _ := setup(t, 2, 2)

	rng := csprng.NewRNGPairFromSeed(csprng.Seed{102})
	params := lwe.DecompositionParametersLiteral[uint64]{BaseLog: 4, Level: 8}.Compile()
	kskDist := csprng.TUniformNoise[uint64]{BoundLog2: 15}

	// Wrong input dimension: build a keyswitch key from a different-sized
	// source key than svSrc holds.
	badSrcKey := lwe.GenSecretKey[uint64](lweDimension+1, csprng.NewBinarySampler[uint64](rng.Mask))
	badKsk := lwe.GenKeySwitchKey[uint64](badSrcKey, svDst.SecretKey, params, kskDist, &rng)

	require.Panics(t, func() {
		shortint.New[uint64](badKsk, svSrc, svDst)
	})
}
