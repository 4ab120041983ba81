package fixed

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ModulusHeadroom is the divisor margin used for moduli of magnitude one or more.
const ModulusHeadroom = 1.5

// Modulus is the magnitude argument of the polar functions.
type Modulus[T constraints.Signed] struct {
	q Q[T]
}

func NewModulus[T constraints.Signed](v float64) Modulus[T] {
	f := DefaultFormat[T]()
	if math.Abs(v) < 1 {
		return Modulus[T]{q: New[T](f, v)}
	}

	s := math.Abs(v) * ModulusHeadroom
	return Modulus[T]{q: New[T](f, v/s).WithSoftScale(s)}
}

func (m Modulus[T]) Q() Q[T] {
	return m.q
}

func (m Modulus[T]) Float() float64 {
	return m.q.Float()
}
