package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fhe/glwecore/math/poly"
)

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	assert.Panics(t, func() { poly.New[uint64](0) })
	assert.Panics(t, func() { poly.New[uint64](3) })
	assert.NotPanics(t, func() { poly.New[uint64](4) })
}

func TestCopyFromAndClone(t *testing.T) {
	a := poly.New[uint32](4)
	for i := range a.Coeffs {
		a.Coeffs[i] = uint32(i + 1)
	}
	b := poly.New[uint32](4)
	b.CopyFrom(a)
	require.Equal(t, a.Coeffs, b.Coeffs)

	c := a.Clone()
	c.Coeffs[0] = 99
	assert.NotEqual(t, a.Coeffs[0], c.Coeffs[0], "Clone must not alias storage")
}

func TestWrappingAddSub(t *testing.T) {
	a := poly.New[uint8](4)
	b := poly.New[uint8](4)
	a.Coeffs = []uint8{250, 1, 2, 3}
	b.Coeffs = []uint8{10, 1, 1, 1}

	sum := poly.New[uint8](4)
	poly.WrappingAddAssign(a, b, sum)
	require.Equal(t, []uint8{4, 2, 3, 4}, sum.Coeffs) // 250+10 wraps mod 256

	diff := poly.New[uint8](4)
	poly.WrappingSubAssign(a, b, diff)
	require.Equal(t, []uint8{240, 0, 1, 2}, diff.Coeffs)
}

// TestMultisumNegacyclicReduction checks <a,b> for a single-polynomial list
// against hand-computed schoolbook convolution with X^N=-1 reduction.
func TestMultisumNegacyclicReduction(t *testing.T) {
	const n = 4
	a := poly.New[uint32](n)
	a.Coeffs = []uint32{1, 2, 3, 4}
	s := poly.New[uint32](n)
	s.Coeffs = []uint32{0, 1, 0, 0} // s = X

	// a*X in Z[X]/(X^4+1): coefficients rotate with the top one negated.
	// a = 1 + 2X + 3X^2 + 4X^3 => a*X = X + 2X^2 + 3X^3 + 4X^4 = -4 + X + 2X^2 + 3X^3
	want := []uint32{^uint32(4) + 1, 1, 2, 3} // -4 mod 2^32, 1, 2, 3

	out := poly.New[uint32](n)
	aList := poly.List[uint32]{Polys: []poly.Poly[uint32]{a}}
	sList := poly.List[uint32]{Polys: []poly.Poly[uint32]{s}}
	poly.WrappingAddMultisumAssign[uint32](aList, sList, out)
	require.Equal(t, want, out.Coeffs)

	// Subtracting the same product back out should return to zero.
	poly.WrappingSubMultisumAssign[uint32](aList, sList, out)
	require.Equal(t, make([]uint32, n), out.Coeffs)
}

func TestListOps(t *testing.T) {
	l := poly.NewList[uint16](3, 8)
	require.Equal(t, 3, l.Len())
	require.Equal(t, 8, l.Degree())

	l.Polys[0].Coeffs[0] = 7
	l.Clear()
	assert.Equal(t, uint16(0), l.Polys[0].Coeffs[0])
}
