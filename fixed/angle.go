package fixed

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Degrees is an integer angle in degrees.
type Degrees int16

func (d Degrees) Radians() float64 {
	return float64(d) * math.Pi / 180
}

// Angle stores an angle as radians/π in a fixed-point number, which is the
// format the CORDIC expects for its angle argument.
type Angle[T constraints.Signed] struct {
	q Q[T]
}

// NewAngle encodes the angle given in radians. The angle is wrapped into
// [-π, π] first.
func NewAngle[T constraints.Signed](radians float64) Angle[T] {
	return Angle[T]{q: New[T](DefaultFormat[T](), wrapTurns(radians/math.Pi))}
}

func AngleFromDegrees[T constraints.Signed](d Degrees) Angle[T] {
	return Angle[T]{q: New[T](DefaultFormat[T](), wrapTurns(float64(d)/180))}
}

// AngleFromQ interprets q as radians/π.
func AngleFromQ[T constraints.Signed](q Q[T]) Angle[T] {
	return Angle[T]{q: q}
}

func (a Angle[T]) Radians() float64 {
	return a.q.Float() * math.Pi
}

func (a Angle[T]) Degrees() float64 {
	return a.q.Float() * 180
}

func (a Angle[T]) Q() Q[T] {
	return a.q
}

func (a Angle[T]) Scale() uint8 {
	return a.q.Scale()
}

// wrapTurns maps t (in units of π) into [-1, 1].
func wrapTurns(t float64) float64 {
	if t >= -1 && t <= 1 {
		return t
	}
	return math.Remainder(t, 2)
}
