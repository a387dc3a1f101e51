package num_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fhe/glwecore/math/num"
)

func TestSizeT(t *testing.T) {
	assert.Equal(t, 8, num.SizeT[uint8]())
	assert.Equal(t, 16, num.SizeT[uint16]())
	assert.Equal(t, 32, num.SizeT[uint32]())
	assert.Equal(t, 64, num.SizeT[uint64]())
}

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		x    uint64
		want bool
	}{
		{0, false}, {1, true}, {2, true}, {3, false}, {4, true}, {1023, false}, {1024, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, num.IsPowerOfTwo(c.x), "x=%d", c.x)
	}
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, num.Log2(uint64(1)))
	assert.Equal(t, 10, num.Log2(uint64(1024)))
	assert.Equal(t, 10, num.Log2(uint64(1025)))
	assert.Panics(t, func() { num.Log2(uint64(0)) })
}

func TestSignedRoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, 1 << 63, 1<<64 - 1, 1 << 62} {
		signed := num.SignedOf(x)
		back := num.FromSigned[uint64](signed)
		require.Equal(t, x, uint64(back), "x=%d", x)
	}
}

func TestSignedOfNegativeOne(t *testing.T) {
	assert.Equal(t, int64(-1), num.SignedOf(uint64(1<<64-1)))
	assert.Equal(t, int64(-1), num.SignedOf(uint8(0xFF)))
}
