// Package csprng implements the RNG pair: a public mask generator and a
// secret noise generator, deterministically seeded and kept independent.
// The byte stream itself is ChaCha20; the two sub-seeds are derived from
// one caller-supplied seed by hashing a distinct label followed by that
// seed with BLAKE3, so that replaying a seed pair
// reproduces an identical ciphertext bit-for-bit.
package csprng

import (
	"crypto/rand"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
)

// SeedSize is the byte length of a Seed.
const SeedSize = 32

// Seed is an opaque 256-bit seed for a Generator.
type Seed [SeedSize]byte

// Seeder supplies a fresh seed per RNG. Any source of unpredictable bytes
// satisfies this; NewSeeder returns the default crypto/rand-backed
// implementation.
type Seeder interface {
	Seed() Seed
}

// systemSeeder draws seeds from crypto/rand. crypto/rand is the stdlib
// boundary for OS entropy; none of the retrieved example repos wrap system
// randomness collection in a third-party library, so this one call site is
// stdlib by necessity rather than by omission.
type systemSeeder struct{}

// NewSeeder returns the default Seeder, backed by the operating system's
// CSPRNG.
func NewSeeder() Seeder { return systemSeeder{} }

func (systemSeeder) Seed() Seed {
	var s Seed
	if _, err := io.ReadFull(rand.Reader, s[:]); err != nil {
		panic("csprng: failed to read system entropy: " + err.Error())
	}
	return s
}

// Generator is a deterministic byte-oriented CSPRNG keyed from a Seed. It
// produces the ChaCha20 keystream: uniform bytes with forward secrecy are
// all the rest of this package requires of it.
type Generator struct {
	cipher *chacha20.Cipher
}

// NewGenerator creates a Generator deterministically seeded from seed.
func NewGenerator(seed Seed) *Generator {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Sanity check: seed is always 32 bytes and nonce is always
		// chacha20.NonceSize, so this can never fail.
		panic("csprng: " + err.Error())
	}
	return &Generator{cipher: c}
}

// Fill writes len(buf) pseudorandom bytes into buf.
func (g *Generator) Fill(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	g.cipher.XORKeyStream(buf, buf)
}

// Uint64 returns the next 8 bytes of the stream as a little-endian uint64.
func (g *Generator) Uint64() uint64 {
	var buf [8]byte
	g.Fill(buf[:])
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v
}

// RNGPair is the mask/noise generator pair. The mask stream may be replayed
// publicly for verification; the noise stream must never be. Merging them
// defeats that separation, so RNGPair deliberately exposes two independent
// Generators rather than one generator shared by role.
type RNGPair struct {
	Mask  *Generator
	Noise *Generator
}

// NewRNGPair derives a mask generator and a noise generator from a single
// seed drawn from seeder. The two sub-seeds are domain-separated by
// hashing a distinct label ahead of the seed with BLAKE3, so the mask and
// noise streams are independent even though they trace back to one seed.
func NewRNGPair(seeder Seeder) RNGPair {
	parent := seeder.Seed()
	return RNGPair{
		Mask:  NewGenerator(deriveSeed(parent, "glwecore mask v1")),
		Noise: NewGenerator(deriveSeed(parent, "glwecore noise v1")),
	}
}

// NewRNGPairFromSeed is the deterministic counterpart of NewRNGPair, used by
// tests and replay verification to reproduce an identical RNGPair from a
// fixed seed.
func NewRNGPairFromSeed(parent Seed) RNGPair {
	return RNGPair{
		Mask:  NewGenerator(deriveSeed(parent, "glwecore mask v1")),
		Noise: NewGenerator(deriveSeed(parent, "glwecore noise v1")),
	}
}

func deriveSeed(parent Seed, label string) Seed {
	h := blake3.New()
	_, _ = h.Write([]byte(label))
	_, _ = h.Write(parent[:])
	sum := h.Sum(nil)
	var out Seed
	copy(out[:], sum)
	return out
}
