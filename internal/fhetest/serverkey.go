// Package fhetest is a test fixture, not a cryptographic implementation.
// It implements shortint.ServerKey with a decrypt-evaluate-re-encrypt
// reference bootstrap that holds the secret key purely to exercise
// shortint.KeySwitchingBridge end to end without a real programmable
// bootstrap. Never import this package outside a _test.go file: a real
// ServerKey never holds a decryption key.
package fhetest

import (
	"github.com/go-fhe/glwecore/lwe"
	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
	"github.com/go-fhe/glwecore/shortint"
)

// ServerKey is the non-cryptographic shortint.ServerKey stand-in.
type ServerKey[T num.TorusInt] struct {
	SecretKey     lwe.SecretKey[T]
	MsgModulus    T
	CarryModulus_ T
	NoiseDist     csprng.NoiseDistribution[T]
	rng           *csprng.RNGPair
}

// New returns a ServerKey wrapping sk, used to decode, evaluate and
// re-encrypt lookup tables in the clear.
func New[T num.TorusInt](sk lwe.SecretKey[T], messageModulus, carryModulus T, dist csprng.NoiseDistribution[T], rng *csprng.RNGPair) *ServerKey[T] {
	return &ServerKey[T]{SecretKey: sk, MsgModulus: messageModulus, CarryModulus_: carryModulus, NoiseDist: dist, rng: rng}
}

// Dimension implements shortint.ServerKey.
func (k *ServerKey[T]) Dimension() int { return k.SecretKey.Dimension() }

// MessageModulus implements shortint.ServerKey.
func (k *ServerKey[T]) MessageModulus() T { return k.MsgModulus }

// CarryModulus implements shortint.ServerKey.
func (k *ServerKey[T]) CarryModulus() T { return k.CarryModulus_ }

// GenerateLookupTable implements shortint.ServerKey. The accumulator is
// left as its zero value: this stand-in evaluates f directly instead of
// homomorphically, so no GLWE accumulator is ever built or consumed.
func (k *ServerKey[T]) GenerateLookupTable(f func(uint64) uint64) shortint.LookupTable[T] {
	return shortint.LookupTable[T]{Function: f}
}

// ApplyLookupTableAssign implements shortint.ServerKey by decrypting ct,
// evaluating lut in the clear, and re-encrypting the result under this
// key's parameters into out.
func (k *ServerKey[T]) ApplyLookupTableAssign(ct shortint.Ciphertext[T], lut shortint.LookupTable[T], out *shortint.Ciphertext[T]) {
	dec := lwe.NewDecryptor[T](k.SecretKey)
	msg := shortint.Decode(ct.MessageModulus, ct.CarryModulus, dec.Decrypt(ct.CT))
	result := lut.Evaluate(msg)

	if out.CT.Dimension() != k.Dimension() {
		*out = shortint.NewCiphertext[T](k.Dimension(), k.MsgModulus, k.CarryModulus_)
	}
	out.MessageModulus = k.MsgModulus
	out.CarryModulus = k.CarryModulus_

	enc := lwe.NewEncryptor[T](k.SecretKey, k.rng)
	shortint.EncryptAssign(enc, result, k.NoiseDist, *out)
}

// ApplyLookupTable is the allocating counterpart of
// ApplyLookupTableAssign.
func (k *ServerKey[T]) ApplyLookupTable(ct shortint.Ciphertext[T], lut shortint.LookupTable[T]) shortint.Ciphertext[T] {
	out := shortint.NewCiphertext[T](k.Dimension(), k.MsgModulus, k.CarryModulus_)
	k.ApplyLookupTableAssign(ct, lut, &out)
	return out
}
