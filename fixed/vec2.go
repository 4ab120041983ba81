package fixed

import (
	"math"

	"golang.org/x/exp/constraints"
)

// VectorHeadroom is the margin applied when a vector has to be normalised. The
// CORDIC modulus of a normalised vector may exceed its largest coordinate, the
// headroom keeps most of those in range.
const VectorHeadroom = 1.15

// Vec2 is a two dimensional vector of fixed-point coordinates. Vectors with a
// coordinate outside of (-1, 1) are shrunk and remember the factor as soft scale.
type Vec2[T constraints.Signed] struct {
	x Q[T]
	y Q[T]
}

func NewVec2[T constraints.Signed](x, y float64) Vec2[T] {
	f := DefaultFormat[T]()
	if math.Abs(x) < 1 && math.Abs(y) < 1 {
		return Vec2[T]{x: New[T](f, x), y: New[T](f, y)}
	}

	s := math.Max(math.Abs(x), math.Abs(y)) * VectorHeadroom
	return Vec2[T]{
		x: New[T](f, x/s).WithSoftScale(s),
		y: New[T](f, y/s).WithSoftScale(s),
	}
}

func (v Vec2[T]) X() Q[T] {
	return v.x
}

func (v Vec2[T]) Y() Q[T] {
	return v.y
}

func (v Vec2[T]) SoftScale() float64 {
	return v.x.SoftScale()
}
