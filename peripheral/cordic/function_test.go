package cordic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/cordic/chip/stm32g4"
	"omibyte.io/cordic/peripheral"
)

func TestParseFunction(t *testing.T) {
	tests := map[string]Function{
		"cos":               Cosine,
		"Sine":              Sine,
		"phase":             Phase,
		"mod":               Modulus,
		" atan ":            Arctangent,
		"hyperbolic-cosine": HyperbolicCosine,
		"hyperbolic_sine":   HyperbolicSine,
		"atanh":             Arctanh,
		"ln":                NaturalLogarithm,
		"square-root":       SquareRoot,
	}
	for s, want := range tests {
		got, err := ParseFunction(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := ParseFunction("tan")
	assert.ErrorIs(t, err, peripheral.ErrInvalidArgument)
}

func TestFunctionNamesRoundTrip(t *testing.T) {
	for _, f := range Functions() {
		got, err := ParseFunction(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "Function(12)", Function(12).String())
}

func TestDescriptors(t *testing.T) {
	for _, f := range Functions() {
		d, err := Lookup(f)
		require.NoError(t, err)
		assert.Equal(t, f, d.Function)
		assert.Equal(t, stm32g4.CORDIC_CSR_REG_FUNC(f), d.Opcode, "%v", f)
		assert.NotNil(t, d.Scales)

		// Every band has to fit into the allowed interval after scaling
		for i := 0; i < d.Scales.Len(); i++ {
			r := d.Scales.Range(i)
			lo := math.Ldexp(r.Lower, -int(r.Scale))
			hi := math.Ldexp(r.Upper, -int(r.Scale))
			assert.True(t, d.Allowed.Contains(lo), "%v band %d", f, i)
			assert.True(t, d.Allowed.Contains(hi), "%v band %d", f, i)
		}

		assert.Equal(t, uint8(16), d.Format(16).Bits())
		assert.Equal(t, uint8(32), d.Format(32).Bits())
	}

	_, err := Lookup(Function(10))
	assert.ErrorIs(t, err, peripheral.ErrInvalidArgument)
}

func TestArity(t *testing.T) {
	twoArgs := []Function{Cosine, Sine, Phase, Modulus}
	twoResults := []Function{Cosine, Sine, Phase, Modulus, HyperbolicCosine, HyperbolicSine}

	for _, f := range Functions() {
		d, _ := Lookup(f)
		if contains(twoArgs, f) {
			assert.Equal(t, Two, d.Args, "%v", f)
		} else {
			assert.Equal(t, One, d.Args, "%v", f)
		}
		if contains(twoResults, f) {
			assert.Equal(t, Two, d.Results, "%v", f)
		} else {
			assert.Equal(t, One, d.Results, "%v", f)
		}
	}
}

func TestPostScaling(t *testing.T) {
	d, _ := Lookup(Phase)
	assert.Equal(t, math.Pi, d.Post[0])
	d, _ = Lookup(Modulus)
	assert.Equal(t, math.Pi, d.Post[1])
	d, _ = Lookup(NaturalLogarithm)
	assert.Equal(t, 2.0, d.Post[0])
}

func contains(fns []Function, f Function) bool {
	for _, g := range fns {
		if g == f {
			return true
		}
	}
	return false
}
