package cordic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/cordic/fixed"
	"omibyte.io/cordic/peripheral"
)

func TestNewOperation(t *testing.T) {
	op, err := NewOperation[int32](Cosine)
	require.NoError(t, err)
	assert.Equal(t, Two, op.NumArgs())
	assert.Equal(t, Two, op.NumResults())
	assert.InDelta(t, 1, op.Arg2().Float(), 1e-9)
	assert.Equal(t, int32(0), op.Arg1().Raw())

	op, err = NewOperation[int32](SquareRoot)
	require.NoError(t, err)
	assert.Equal(t, int32(0), op.Arg2().Raw())

	_, err = NewOperation[int16](Function(42))
	assert.ErrorIs(t, err, peripheral.ErrInvalidArgument)
}

func TestKindMismatch(t *testing.T) {
	op := Sqrt[int32](0.5)
	assert.ErrorIs(t, op.SetAngle(fixed.NewAngle[int32](1)), peripheral.ErrInvalidArgument)
	assert.ErrorIs(t, op.SetVector(fixed.NewVec2[int32](0.1, 0.2)), peripheral.ErrInvalidArgument)
	assert.ErrorIs(t, op.SetModulus(fixed.NewModulus[int32](0.5)), peripheral.ErrInvalidArgument)
	assert.ErrorIs(t, op.SetArg2(fixed.Q31(0.5)), peripheral.ErrInvalidArgument)

	op = Cos(fixed.NewAngle[int32](0))
	assert.ErrorIs(t, op.SetValue(0.5), peripheral.ErrInvalidArgument)
	assert.ErrorIs(t, op.SetVector(fixed.NewVec2[int32](0.1, 0.2)), peripheral.ErrInvalidArgument)
	assert.NoError(t, op.SetArg2(fixed.Q31(0.5)))

	op = Mod(fixed.NewVec2[int32](0.1, 0.2))
	assert.ErrorIs(t, op.SetAngle(fixed.NewAngle[int32](1)), peripheral.ErrInvalidArgument)
}

func TestValueScale(t *testing.T) {
	tests := []struct {
		op    *Operation[int32]
		scale uint8
	}{
		{Atan[int32](0.5), 0},
		{Atan[int32](1.5), 1},
		{Atan[int32](100), 7},
		{Atan[int32](1000), 7},
		{Cosh[int32](0.1), 1},
		{Atanh[int32](0.7), 1},
		{Ln[int32](0.2), 1},
		{Ln[int32](5), 3},
		{Ln[int32](100), 4},
		{Sqrt[int32](0.001), 2},
		{Sqrt[int32](-0.5), 2},
		{Ln[int32](0.01), 4},
		{Sqrt[int32](1), 1},
		{Sqrt[int32](2.2), 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.scale, tt.op.Scale(), "%v(%v)", tt.op.Function(), tt.op.Arg1())
	}
}

func TestArgumentStaysAllowed(t *testing.T) {
	for _, x := range []float64{-10, -1, 0, 0.3, 1, 1.2, 10} {
		op := Cosh[int32](x)
		v := math.Ldexp(op.Arg1().Fixed(), -int(op.Scale()))
		allowed := op.Descriptor().Allowed
		assert.GreaterOrEqual(t, v, allowed.Lower-1e-9, "cosh(%v)", x)
		assert.LessOrEqual(t, v, allowed.Upper+1e-9, "cosh(%v)", x)
	}
}

func TestDecodeInheritsMagnitude(t *testing.T) {
	op := Mod(fixed.NewVec2[int32](4, 1))
	q0 := op.decode(0, 1<<30)
	q1 := op.decode(1, 1<<30)
	assert.InDelta(t, 0.5*4*fixed.VectorHeadroom, q0.Float(), 1e-9)
	assert.InDelta(t, 0.5, q1.Float(), 1e-9)

	res := op.NewResult()
	res.SetResult(q0)
	res.SetSecondaryResult(q1)
	assert.Equal(t, 2, res.Len())
	assert.InDelta(t, 0.5*math.Pi, res.SecondaryFloat(), 1e-9)
}
