package fixed

import "math"

// Bounds is a closed interval of real values.
type Bounds struct {
	Lower float64
	Upper float64
}

// Normal is the range every Qx.y argument of the CORDIC must fall into.
var Normal = Bounds{Lower: -1, Upper: 1}

func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.Lower, math.Min(b.Upper, v))
}

// Scaled returns the bounds multiplied by 2^exp.
func (b Bounds) Scaled(exp uint8) Bounds {
	return Bounds{
		Lower: math.Ldexp(b.Lower, int(exp)),
		Upper: math.Ldexp(b.Upper, int(exp)),
	}
}

// Range is a single entry of a scale table. Values inside the range are encoded
// after being divided by 2^Scale.
type Range struct {
	Lower float64
	Upper float64
	Scale uint8
}

// Contains reports whether v lies in the closed interval [Lower, Upper].
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

func (r Range) Bounds() Bounds {
	return Bounds{Lower: r.Lower, Upper: r.Upper}
}

// Scales is a read-only lookup table of input ranges. The table is scanned in
// order and the first range containing a value wins.
type Scales struct {
	ranges []Range
}

// NormalScales only knows the unscaled [-1, 1] range.
var NormalScales = NewScales(Normal, 0)

// NewScales creates a table whose ranges are target multiplied by 2^exp for every
// exponent. The exponents must be given in ascending order.
func NewScales(target Bounds, exponents ...uint8) *Scales {
	if len(exponents) == 0 {
		panic("fixed: scale table without exponents")
	}

	s := &Scales{ranges: make([]Range, len(exponents))}
	for i, exp := range exponents {
		if i > 0 && exp <= exponents[i-1] {
			panic("fixed: scale exponents must be ascending")
		}
		b := target.Scaled(exp)
		s.ranges[i] = Range{Lower: b.Lower, Upper: b.Upper, Scale: exp}
	}
	return s
}

// NewBandedScales creates a table from explicit, possibly non-uniform bands.
func NewBandedScales(ranges ...Range) *Scales {
	if len(ranges) == 0 {
		panic("fixed: scale table without ranges")
	}
	return &Scales{ranges: append([]Range(nil), ranges...)}
}

func (s *Scales) Len() int {
	return len(s.ranges)
}

func (s *Scales) Range(i int) Range {
	return s.ranges[i]
}

// FindSmallestScaleIndex returns the index of the first range containing value.
// Values outside every range map to the last range.
func (s *Scales) FindSmallestScaleIndex(value float64) int {
	for i := 0; i < len(s.ranges)-1; i++ {
		if s.ranges[i].Contains(value) {
			return i
		}
	}
	return len(s.ranges) - 1
}

// FindScaleIndex returns the index of the range using the given exponent, or the
// last range if there is none.
func (s *Scales) FindScaleIndex(scale uint8) int {
	for i := 0; i < len(s.ranges)-1; i++ {
		if s.ranges[i].Scale == scale {
			return i
		}
	}
	return len(s.ranges) - 1
}

// Domain is the union of all ranges in the table.
func (s *Scales) Domain() Bounds {
	d := s.ranges[0].Bounds()
	for _, r := range s.ranges[1:] {
		d.Lower = math.Min(d.Lower, r.Lower)
		d.Upper = math.Max(d.Upper, r.Upper)
	}
	return d
}
