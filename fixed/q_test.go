package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

var arctangentFormat = Q1_31.WithRange(Normal, NewScales(Normal, 0, 1, 2, 3, 4, 5, 6, 7))

var squareRootFormat = Q1_31.WithRange(Normal, NewBandedScales(
	Range{Lower: 0.027, Upper: 0.75, Scale: 0},
	Range{Lower: 0.75, Upper: 1.75, Scale: 1},
	Range{Lower: 1.75, Upper: 2.341, Scale: 2},
))

func TestQ15Encoding(t *testing.T) {
	q := Q15(0.05)
	assert.Equal(t, int16(1638), q.Raw())
	assert.Equal(t, uint8(0), q.Scale())
	assert.InDelta(t, 0.05, q.Float(), 0.0005)
}

func TestQ31Encoding(t *testing.T) {
	tests := []struct {
		value float64
		raw   int32
	}{
		{0, 0},
		{0.5, 1 << 30},
		{-0.5, -(1 << 30)},
		{-1, math.MinInt32},
		{1, math.MaxInt32},
	}

	for _, tc := range tests {
		q := Q31(tc.value)
		assert.Equal(t, tc.raw, q.Raw(), "value %v", tc.value)
	}
}

func TestWord(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), New[int16](Q1_15, -1.0/32768).Word())
	assert.Equal(t, uint32(0x4000), Q15(0.5).Word())
	assert.Equal(t, uint32(0x80000000), Q31(-1).Word())
}

func TestSaturation(t *testing.T) {
	for _, f := range []*Format{Q1_31, arctangentFormat} {
		upper := f.Scales.Domain().Upper
		lower := f.Scales.Domain().Lower

		assert.Equal(t, New[int32](f, upper).Raw(), New[int32](f, upper*3).Raw(), f.Scales.Domain())
		assert.Equal(t, New[int32](f, upper).Scale(), New[int32](f, upper*3).Scale())
		assert.Equal(t, New[int32](f, lower).Raw(), New[int32](f, lower-10).Raw())
	}

	assert.Equal(t, int16(math.MaxInt16), Q15(7).Raw())
	assert.Equal(t, int16(math.MinInt16), Q15(-7).Raw())
	assert.Equal(t, int16(0), Q15(math.NaN()).Raw())
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []*Format{Q1_31, arctangentFormat, squareRootFormat} {
		d := f.Scales.Domain()
		for i := 0; i <= 1000; i++ {
			v := d.Lower + (d.Upper-d.Lower)*float64(i)/1000
			q := New[int32](f, v)
			require.InDelta(t, v, q.Fixed(), q.Quantum(), "value %v", v)
		}
	}

	for i := -1000; i <= 1000; i++ {
		v := float64(i) / 1000
		q := Q15(v)
		require.InDelta(t, v, q.Float(), q.Quantum(), "value %v", v)
	}
}

func TestScaleMonotonic(t *testing.T) {
	var values []float64
	for i := -2000; i <= 2000; i++ {
		values = append(values, float64(i)/10)
	}
	// Boundaries of every range
	for i := 0; i < arctangentFormat.Scales.Len(); i++ {
		r := arctangentFormat.Scales.Range(i)
		values = append(values, r.Lower, r.Upper)
	}
	slices.SortFunc(values, func(a, b float64) int {
		switch {
		case math.Abs(a) < math.Abs(b):
			return -1
		case math.Abs(a) > math.Abs(b):
			return 1
		}
		return 0
	})

	var last uint8
	for _, v := range values {
		scale := New[int32](arctangentFormat, v).Scale()
		require.GreaterOrEqual(t, scale, last, "value %v", v)
		last = scale
	}
}

func TestBandedScales(t *testing.T) {
	tests := []struct {
		value float64
		scale uint8
	}{
		{0.5, 0},
		{0.75, 0},
		{1.0, 1},
		{2.0, 2},
		{2.341, 2},
		{0.001, 2},
		{0.01, 2},
		{-0.5, 2},
		{40, 2},
	}

	for _, tc := range tests {
		q := New[int32](squareRootFormat, tc.value)
		assert.Equal(t, tc.scale, q.Scale(), "value %v", tc.value)
	}
}

func TestBandedFallback(t *testing.T) {
	// Below the first band the widest range is used, the value is kept
	for _, v := range []float64{0.01, -0.5, -3.9} {
		q := New[int32](squareRootFormat, v)
		assert.InDelta(t, v, q.Float(), q.Quantum(), "value %v", v)
	}

	// Beyond the last band the scaled value saturates
	assert.Equal(t, int32(math.MaxInt32), New[int32](squareRootFormat, 40).Raw())
	assert.Equal(t, int32(math.MinInt32), New[int32](squareRootFormat, -40).Raw())
	assert.Equal(t, int32(0), New[int32](squareRootFormat, math.NaN()).Raw())
}

func TestSoftScale(t *testing.T) {
	q := Q31(0.25)
	assert.Equal(t, 1.0, q.SoftScale())

	q = q.WithSoftScale(4)
	assert.InDelta(t, 0.25, q.Fixed(), 1e-9)
	assert.InDelta(t, 1.0, q.Float(), 1e-9)

	// Assignment keeps the soft scale
	q.Set(0.5)
	assert.Equal(t, 4.0, q.SoftScale())
	assert.InDelta(t, 2.0, q.Float(), 1e-9)
}

func TestFromRaw(t *testing.T) {
	q := FromRaw[int32](arctangentFormat, 1<<30, 3)
	assert.InDelta(t, 4.0, q.Fixed(), 1e-9)
	assert.Equal(t, uint8(3), q.Scale())
}

func TestZeroValue(t *testing.T) {
	var q Q[int16]
	assert.Equal(t, Q1_15, q.Format())
	assert.Equal(t, 0.0, q.Float())

	q.Set(0.25)
	assert.Equal(t, int16(1<<13), q.Raw())
}

func TestFormatTooWide(t *testing.T) {
	assert.Panics(t, func() {
		New[int16](Q1_31, 0.5)
	})
}
