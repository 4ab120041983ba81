// Package fixed implements signed Qm.n fixed-point numbers with a dynamic
// power-of-two scale and an additional host-side soft scale, plus the angle,
// vector and modulus value types built on top of them.
//
// A number is stored as raw * 2^-n. The scale exponent is chosen from a scale
// table when the number is encoded and travels with the raw value, so the real
// value is raw * 2^-n * 2^scale. The soft scale is a plain float factor that is
// only applied when converting back to floating point; it never reaches the
// hardware.
package fixed

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Format describes how a float is turned into raw bits: the number of integer
// and fractional bits, the interval the scaled value is clamped to and the scale
// table used to pick the exponent.
type Format struct {
	IntBits  uint8
	FracBits uint8
	Bounds   Bounds
	Scales   *Scales
}

var (
	Q1_15 = &Format{IntBits: 1, FracBits: 15, Bounds: Normal, Scales: NormalScales}
	Q1_31 = &Format{IntBits: 1, FracBits: 31, Bounds: Normal, Scales: NormalScales}
)

func (f *Format) Bits() uint8 {
	return f.IntBits + f.FracBits
}

// WithRange returns a copy of the format using other bounds and scales.
func (f *Format) WithRange(bounds Bounds, scales *Scales) *Format {
	return &Format{
		IntBits:  f.IntBits,
		FracBits: f.FracBits,
		Bounds:   bounds,
		Scales:   scales,
	}
}

func (f *Format) String() string {
	return fmt.Sprintf("Q%d.%d", f.IntBits, f.FracBits)
}

// Bits returns the width of T in bits.
func Bits[T constraints.Signed]() uint8 {
	var v T
	return uint8(unsafe.Sizeof(v) * 8)
}

// DefaultFormat returns the Q1.(n-1) format filling all bits of T.
func DefaultFormat[T constraints.Signed]() *Format {
	switch bits := Bits[T](); bits {
	case 16:
		return Q1_15
	case 32:
		return Q1_31
	default:
		return &Format{IntBits: 1, FracBits: bits - 1, Bounds: Normal, Scales: NormalScales}
	}
}

// Q is a fixed-point number whose raw value is stored in T.
type Q[T constraints.Signed] struct {
	raw       T
	format    *Format
	scale     uint8
	softScale float64
}

// New encodes v using format f.
func New[T constraints.Signed](f *Format, v float64) Q[T] {
	q := Q[T]{format: f}
	q.Set(v)
	return q
}

// FromRaw wraps a raw machine value that was produced with the given scale.
func FromRaw[T constraints.Signed](f *Format, raw T, scale uint8) Q[T] {
	return Q[T]{raw: raw, format: f, scale: scale}
}

func Q15(v float64) Q[int16] {
	return New[int16](Q1_15, v)
}

func Q31(v float64) Q[int32] {
	return New[int32](Q1_31, v)
}

// Set re-encodes the number from v. The soft scale is kept.
func (q *Q[T]) Set(v float64) {
	f := q.Format()
	if f.Bits() > Bits[T]() {
		panic(fmt.Sprintf("fixed: %v does not fit into %d bits", f, Bits[T]()))
	}

	scales := f.Scales
	if scales == nil {
		scales = NormalScales
	}

	// The first range holding v picks the scale, values outside of every range
	// use the last one and saturate at the bounds once scaled.
	r := scales.Range(scales.FindSmallestScaleIndex(v))

	scaled := f.Bounds.Clamp(math.Ldexp(v, -int(r.Scale)))
	q.raw = saturate[T](math.Round(math.Ldexp(scaled, int(f.FracBits))), f.Bits())
	q.scale = r.Scale
}

func (q Q[T]) Format() *Format {
	if q.format == nil {
		return DefaultFormat[T]()
	}
	return q.format
}

func (q Q[T]) Raw() T {
	return q.raw
}

// Word returns the raw value as a sign extended two's-complement machine word.
func (q Q[T]) Word() uint32 {
	return uint32(int64(q.raw))
}

func (q Q[T]) Scale() uint8 {
	return q.scale
}

func (q Q[T]) SoftScale() float64 {
	if q.softScale == 0 {
		return 1
	}
	return q.softScale
}

// WithSoftScale returns a copy of q carrying the soft scale s.
func (q Q[T]) WithSoftScale(s float64) Q[T] {
	q.softScale = s
	return q
}

// Fixed returns the value as seen by the hardware: the soft scale is not applied.
func (q Q[T]) Fixed() float64 {
	return math.Ldexp(float64(q.raw), int(q.scale)-int(q.Format().FracBits))
}

// Float returns the represented value.
func (q Q[T]) Float() float64 {
	return q.Fixed() * q.SoftScale()
}

// Quantum is the value of one least significant bit at the current scale.
func (q Q[T]) Quantum() float64 {
	return math.Ldexp(1, int(q.scale)-int(q.Format().FracBits))
}

func (q Q[T]) String() string {
	return fmt.Sprintf("%g", q.Float())
}

func saturate[T constraints.Signed](x float64, bits uint8) T {
	hi := int64(1)<<(bits-1) - 1
	lo := -hi - 1

	switch {
	case math.IsNaN(x):
		return 0
	case x >= float64(hi):
		return T(hi)
	case x <= float64(lo):
		return T(lo)
	}
	return T(x)
}
