package lwe

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/go-fhe/glwecore/math/csprng"
	"github.com/go-fhe/glwecore/math/num"
)

// KeySwitchKey is an LweKeyswitchKey: a decomposition-gadget encryption of
// each bit-group of a source LWE key under a destination LWE key. Rows has
// one row per source-key coefficient, each row holding Params.Level()
// ciphertexts under the destination key, built with the same Encryptor used
// for ordinary LWE encryption.
type KeySwitchKey[T num.TorusInt] struct {
	InputDimension  int
	OutputDimension int
	Params          DecompositionParameters[T]

	// Rows[i][j] encrypts srcKey.Value[i] * 2^(W - BaseLog*(j+1)) under the
	// destination key.
	Rows [][]Ciphertext[T]
}

// GenKeySwitchKey builds a KeySwitchKey from srcKey to dstKey at the given
// decomposition parameters, drawing fresh randomness from rng under dist.
func GenKeySwitchKey[T num.TorusInt](srcKey, dstKey SecretKey[T], params DecompositionParameters[T], dist csprng.NoiseDistribution[T], rng *csprng.RNGPair) KeySwitchKey[T] {
	w := num.SizeT[T]()
	enc := NewEncryptor[T](dstKey, rng)

	ksk := KeySwitchKey[T]{
		InputDimension:  srcKey.Dimension(),
		OutputDimension: dstKey.Dimension(),
		Params:          params,
		Rows:            make([][]Ciphertext[T], srcKey.Dimension()),
	}

	for i := 0; i < srcKey.Dimension(); i++ {
		row := make([]Ciphertext[T], params.Level())
		for j := 0; j < params.Level(); j++ {
			shift := w - params.BaseLog()*(j+1)
			plaintext := srcKey.Value[i] << uint(shift)
			ct := NewCiphertext[T](dstKey.Dimension())
			enc.EncryptAssign(plaintext, dist, ct)
			row[j] = ct
		}
		ksk.Rows[i] = row
	}
	return ksk
}

// KeySwitchAssign applies the gadget-decomposed keyswitch formula, writing
// the result (under ksk's destination key) into out. out must already be
// shaped to ksk.OutputDimension; src must be shaped to ksk.InputDimension.
func KeySwitchAssign[T num.TorusInt](ksk KeySwitchKey[T], src Ciphertext[T], out Ciphertext[T]) {
	if src.Dimension() != ksk.InputDimension {
		panic(fmt.Sprintf("lwe: source ciphertext dimension %d does not match keyswitch key input dimension %d", src.Dimension(), ksk.InputDimension))
	}
	if out.Dimension() != ksk.OutputDimension {
		panic(fmt.Sprintf("lwe: output ciphertext dimension %d does not match keyswitch key output dimension %d", out.Dimension(), ksk.OutputDimension))
	}

	for i := range out.Value {
		out.Value[i] = 0
	}
	out.SetBody(src.Body())

	digits := make([]T, ksk.Params.Level())
	mask := src.Mask()
	for i := 0; i < ksk.InputDimension; i++ {
		if mask[i] == 0 {
			continue
		}
		DecomposeAssign(mask[i], ksk.Params, digits)
		row := ksk.Rows[i]
		for j := 0; j < ksk.Params.Level(); j++ {
			d := digits[j]
			if d == 0 {
				continue
			}
			rowCt := row[j]
			for t := range out.Value {
				out.Value[t] -= d * rowCt.Value[t]
			}
		}
	}
}

// KeySwitch is the allocating counterpart of KeySwitchAssign.
func KeySwitch[T num.TorusInt](ksk KeySwitchKey[T], src Ciphertext[T]) Ciphertext[T] {
	out := NewCiphertext[T](ksk.OutputDimension)
	KeySwitchAssign(ksk, src, out)
	return out
}

// WriteTo serializes ksk: dimensions, decomposition parameters, then every
// row's ciphertexts back-to-back, scalars little-endian.
func (ksk KeySwitchKey[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64

	header := [2]uint64{uint64(ksk.InputDimension), uint64(ksk.OutputDimension)}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return total, errors.Wrap(err, "lwe: writing keyswitch key dimensions")
	}
	total += 16

	n, err := ksk.Params.WriteTo(w)
	total += n
	if err != nil {
		return total, errors.Wrap(err, "lwe: writing keyswitch key decomposition parameters")
	}

	for i, row := range ksk.Rows {
		for j, ct := range row {
			if err := binary.Write(w, binary.LittleEndian, ct.Value); err != nil {
				return total, errors.Wrapf(err, "lwe: writing keyswitch key row %d level %d", i, j)
			}
			total += int64(len(ct.Value)) * int64(num.SizeT[T]()/8)
		}
	}
	return total, nil
}

// ReadKeySwitchKey deserializes a KeySwitchKey previously written by
// WriteTo.
func ReadKeySwitchKey[T num.TorusInt](r io.Reader) (KeySwitchKey[T], int64, error) {
	var header [2]uint64
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return KeySwitchKey[T]{}, 0, errors.Wrap(err, "lwe: reading keyswitch key dimensions")
	}
	var total int64 = 16

	var params DecompositionParameters[T]
	n, err := params.ReadFrom(r)
	total += n
	if err != nil {
		return KeySwitchKey[T]{}, total, errors.Wrap(err, "lwe: reading keyswitch key decomposition parameters")
	}

	inputDim, outputDim := int(header[0]), int(header[1])
	ksk := KeySwitchKey[T]{
		InputDimension:  inputDim,
		OutputDimension: outputDim,
		Params:          params,
		Rows:            make([][]Ciphertext[T], inputDim),
	}
	for i := 0; i < inputDim; i++ {
		row := make([]Ciphertext[T], params.Level())
		for j := 0; j < params.Level(); j++ {
			ct := NewCiphertext[T](outputDim)
			if err := binary.Read(r, binary.LittleEndian, ct.Value); err != nil {
				return ksk, total, errors.Wrapf(err, "lwe: reading keyswitch key row %d level %d", i, j)
			}
			total += int64(len(ct.Value)) * int64(num.SizeT[T]()/8)
			row[j] = ct
		}
		ksk.Rows[i] = row
	}
	return ksk, total, nil
}
