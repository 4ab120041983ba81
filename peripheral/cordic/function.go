package cordic

import (
	"fmt"
	"math"
	"strings"

	"omibyte.io/cordic/chip/stm32g4"
	"omibyte.io/cordic/fixed"
	"omibyte.io/cordic/peripheral"
)

// Function selects the calculation performed by the co-processor.
type Function uint8

const (
	Cosine Function = iota
	Sine
	Phase
	Modulus
	Arctangent
	HyperbolicCosine
	HyperbolicSine
	Arctanh
	NaturalLogarithm
	SquareRoot
)

var functionNames = [...]string{
	Cosine:           "cosine",
	Sine:             "sine",
	Phase:            "phase",
	Modulus:          "modulus",
	Arctangent:       "arctangent",
	HyperbolicCosine: "hyperbolic-cosine",
	HyperbolicSine:   "hyperbolic-sine",
	Arctanh:          "arctanh",
	NaturalLogarithm: "natural-logarithm",
	SquareRoot:       "square-root",
}

var functionAliases = map[string]Function{
	"cos":   Cosine,
	"sin":   Sine,
	"mod":   Modulus,
	"atan":  Arctangent,
	"cosh":  HyperbolicCosine,
	"sinh":  HyperbolicSine,
	"atanh": Arctanh,
	"ln":    NaturalLogarithm,
	"sqrt":  SquareRoot,
}

func (f Function) String() string {
	if int(f) < len(functionNames) {
		return functionNames[f]
	}
	return fmt.Sprintf("Function(%d)", f)
}

// ParseFunction accepts the names returned by String and the usual short
// forms such as "cos" or "sqrt".
func ParseFunction(s string) (Function, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if f, ok := functionAliases[s]; ok {
		return f, nil
	}
	for i, name := range functionNames {
		if name == s || strings.ReplaceAll(name, "-", "_") == s {
			return Function(i), nil
		}
	}
	return 0, fmt.Errorf("unknown function %q: %w", s, peripheral.ErrInvalidArgument)
}

// Functions returns all functions in opcode order.
func Functions() []Function {
	fns := make([]Function, len(functionNames))
	for i := range fns {
		fns[i] = Function(i)
	}
	return fns
}

// Count is the number of argument or result words of a function.
type Count uint8

const (
	One Count = 1
	Two Count = 2
)

// Kind tells how the arguments of a function are expressed.
type Kind uint8

const (
	// KindAngle takes an angle and a modulus.
	KindAngle Kind = iota
	// KindVector takes the x and y coordinate of a vector.
	KindVector
	// KindValue takes a single scaled value.
	KindValue
)

// Descriptor holds everything the driver needs to know about a function.
type Descriptor struct {
	Function Function
	Opcode   stm32g4.CORDIC_CSR_REG_FUNC
	Args     Count
	Results  Count
	Kind     Kind

	// Domain is the input range the hardware produces meaningful results for.
	// It is documentation only, encoding goes through Scales and Allowed.
	Domain fixed.Bounds

	// Allowed is the interval an argument is clamped to after scaling.
	Allowed fixed.Bounds
	Scales  *fixed.Scales

	// Post is multiplied into the soft scale of each result.
	Post [2]float64

	// Inherit marks results carrying the magnitude of the arguments, these
	// take over the argument's soft scale.
	Inherit [2]bool

	formats [2]*fixed.Format
}

var (
	hyperbolicBounds = fixed.Bounds{Lower: -0.559, Upper: 0.559}
	arctanhBounds    = fixed.Bounds{Lower: -0.403, Upper: 0.403}
)

var descriptors = [...]Descriptor{
	Cosine: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_COSINE,
		Args:    Two,
		Results: Two,
		Kind:    KindAngle,
		Domain:  fixed.Normal,
		Allowed: fixed.Normal,
		Scales:  fixed.NormalScales,
		Post:    [2]float64{1, 1},
		Inherit: [2]bool{true, true},
	},
	Sine: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_SINE,
		Args:    Two,
		Results: Two,
		Kind:    KindAngle,
		Domain:  fixed.Normal,
		Allowed: fixed.Normal,
		Scales:  fixed.NormalScales,
		Post:    [2]float64{1, 1},
		Inherit: [2]bool{true, true},
	},
	Phase: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_PHASE,
		Args:    Two,
		Results: Two,
		Kind:    KindVector,
		Domain:  fixed.Normal,
		Allowed: fixed.Normal,
		Scales:  fixed.NormalScales,
		Post:    [2]float64{math.Pi, 1},
		Inherit: [2]bool{false, true},
	},
	Modulus: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_MODULUS,
		Args:    Two,
		Results: Two,
		Kind:    KindVector,
		Domain:  fixed.Normal,
		Allowed: fixed.Normal,
		Scales:  fixed.NormalScales,
		Post:    [2]float64{1, math.Pi},
		Inherit: [2]bool{true, false},
	},
	Arctangent: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_ARCTANGENT,
		Args:    One,
		Results: One,
		Kind:    KindValue,
		Domain:  fixed.Bounds{Lower: -128, Upper: 128},
		Allowed: fixed.Normal,
		Scales:  fixed.NewScales(fixed.Normal, 0, 1, 2, 3, 4, 5, 6, 7),
		Post:    [2]float64{math.Pi, 1},
	},
	HyperbolicCosine: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_HYPERBOLICCOSINE,
		Args:    One,
		Results: Two,
		Kind:    KindValue,
		Domain:  fixed.Bounds{Lower: -1.118, Upper: 1.118},
		Allowed: hyperbolicBounds,
		Scales:  fixed.NewScales(hyperbolicBounds, 1),
		Post:    [2]float64{1, 1},
	},
	HyperbolicSine: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_HYPERBOLICSINE,
		Args:    One,
		Results: Two,
		Kind:    KindValue,
		Domain:  fixed.Bounds{Lower: -1.118, Upper: 1.118},
		Allowed: hyperbolicBounds,
		Scales:  fixed.NewScales(hyperbolicBounds, 1),
		Post:    [2]float64{1, 1},
	},
	Arctanh: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_ARCTANH,
		Args:    One,
		Results: One,
		Kind:    KindValue,
		Domain:  fixed.Bounds{Lower: -0.806, Upper: 0.806},
		Allowed: arctanhBounds,
		Scales:  fixed.NewScales(arctanhBounds, 1),
		Post:    [2]float64{1, 1},
	},
	NaturalLogarithm: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_NATURALLOGARITHM,
		Args:    One,
		Results: One,
		Kind:    KindValue,
		Domain:  fixed.Bounds{Lower: 0.107, Upper: 9.35},
		Allowed: fixed.Normal,
		Scales: fixed.NewBandedScales(
			fixed.Range{Lower: 0.107, Upper: 1, Scale: 1},
			fixed.Range{Lower: 1, Upper: 3, Scale: 2},
			fixed.Range{Lower: 3, Upper: 7, Scale: 3},
			fixed.Range{Lower: 7, Upper: 9.35, Scale: 4},
		),
		Post: [2]float64{2, 1},
	},
	SquareRoot: {
		Opcode:  stm32g4.CORDIC_CSR_REG_FUNC_SQUAREROOT,
		Args:    One,
		Results: One,
		Kind:    KindValue,
		Domain:  fixed.Bounds{Lower: 0.027, Upper: 2.341},
		Allowed: fixed.Normal,
		Scales: fixed.NewBandedScales(
			fixed.Range{Lower: 0.027, Upper: 0.75, Scale: 0},
			fixed.Range{Lower: 0.75, Upper: 1.75, Scale: 1},
			fixed.Range{Lower: 1.75, Upper: 2.341, Scale: 2},
		),
		Post: [2]float64{1, 1},
	},
}

func init() {
	for i := range descriptors {
		d := &descriptors[i]
		d.Function = Function(i)
		d.formats[0] = fixed.Q1_15.WithRange(d.Allowed, d.Scales)
		d.formats[1] = fixed.Q1_31.WithRange(d.Allowed, d.Scales)
	}
}

// Lookup returns the descriptor of f.
func Lookup(f Function) (*Descriptor, error) {
	if int(f) >= len(descriptors) {
		return nil, fmt.Errorf("%v: %w", f, peripheral.ErrInvalidArgument)
	}
	return &descriptors[f], nil
}

// Format returns the argument format of the function for words of the given
// width.
func (d *Descriptor) Format(bits uint8) *fixed.Format {
	if bits == 16 {
		return d.formats[0]
	}
	return d.formats[1]
}
