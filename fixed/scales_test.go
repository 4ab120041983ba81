package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSmallestScaleIndex(t *testing.T) {
	s := NewScales(Normal, 0, 1, 2, 3)

	tests := []struct {
		value float64
		index int
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{1.5, 1},
		{-2, 1},
		{2.0001, 2},
		{8, 3},
		{100, 3},
		{-100, 3},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.index, s.FindSmallestScaleIndex(tc.value), "value %v", tc.value)
	}
}

func TestFindScaleIndex(t *testing.T) {
	s := NewScales(Normal, 1, 3, 5)
	assert.Equal(t, 0, s.FindScaleIndex(1))
	assert.Equal(t, 1, s.FindScaleIndex(3))
	assert.Equal(t, 2, s.FindScaleIndex(5))
	assert.Equal(t, 2, s.FindScaleIndex(0))
	assert.Equal(t, Bounds{Lower: -8, Upper: 8}, s.Range(s.FindScaleIndex(3)).Bounds())
}

func TestDomain(t *testing.T) {
	assert.Equal(t, Bounds{Lower: -128, Upper: 128}, NewScales(Normal, 0, 7).Domain())

	banded := NewBandedScales(
		Range{Lower: 0.107, Upper: 1, Scale: 1},
		Range{Lower: 1, Upper: 3, Scale: 2},
	)
	assert.Equal(t, Bounds{Lower: 0.107, Upper: 3}, banded.Domain())
}

func TestNewScalesPanics(t *testing.T) {
	assert.Panics(t, func() { NewScales(Normal) })
	assert.Panics(t, func() { NewScales(Normal, 2, 1) })
	assert.Panics(t, func() { NewBandedScales() })
}

func TestBounds(t *testing.T) {
	b := Bounds{Lower: -0.5, Upper: 0.5}
	assert.True(t, b.Contains(0.5))
	assert.False(t, b.Contains(0.50001))
	assert.Equal(t, 0.5, b.Clamp(3))
	assert.Equal(t, -0.5, b.Clamp(-3))
	assert.Equal(t, Bounds{Lower: -2, Upper: 2}, b.Scaled(2))
}
