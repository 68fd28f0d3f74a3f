// Package flat provides small value types for 2-D geometry.
package flat

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a Point can be built over.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point is an x/y location (or displacement) over the element type T.
//
// The zero value is the origin. Methods with a pointer receiver mutate the
// point in place and return the same pointer so calls can be chained:
//
//	p.AtX(5).AtY(10)
type Point[T Scalar] struct {
	x T
	y T
}

// New returns the point (x, y).
func New[T Scalar](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

func (p Point[T]) X() T { return p.x }

func (p Point[T]) Y() T { return p.y }

// AtX sets the x coordinate and returns p.
func (p *Point[T]) AtX(v T) *Point[T] {
	p.x = v
	return p
}

// AtY sets the y coordinate and returns p.
func (p *Point[T]) AtY(v T) *Point[T] {
	p.y = v
	return p
}

// AddAssign adds q to p component-wise, in place.
func (p *Point[T]) AddAssign(q Point[T]) *Point[T] {
	p.x += q.x
	p.y += q.y
	return p
}

// SubAssign subtracts q from p component-wise, in place.
func (p *Point[T]) SubAssign(q Point[T]) *Point[T] {
	p.x -= q.x
	p.y -= q.y
	return p
}

// Add returns p+q, leaving p unchanged.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns p-q, leaving p unchanged.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{x: p.x - q.x, y: p.y - q.y}
}

// Mul returns p with both coordinates multiplied by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{x: p.x * s, y: p.y * s}
}

// Div returns p with both coordinates divided by s. For integer element
// types a zero s panics like any other integer division.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{x: p.x / s, y: p.y / s}
}

// DistanceFrom is Distance for two points of the same element type.
func (p Point[T]) DistanceFrom(q Point[T]) float64 {
	return Distance(p, q)
}

// XFrom is the absolute difference of the x coordinates.
func (p Point[T]) XFrom(q Point[T]) T {
	return absDiff(p.x, q.x)
}

// YFrom is the absolute difference of the y coordinates.
func (p Point[T]) YFrom(q Point[T]) T {
	return absDiff(p.y, q.y)
}

// Equals reports whether both coordinates are exactly equal.
func (p Point[T]) Equals(q Point[T]) bool {
	return p == q
}

func (p Point[T]) NotEquals(q Point[T]) bool {
	return p != q
}

// Hash returns a hash of the coordinate pair. Equal points hash equal.
func (p Point[T]) Hash() uint64 {
	var zero T
	x, y := p.x, p.y
	// fold -0 onto +0
	if x == zero {
		x = zero
	}
	if y == zero {
		y = zero
	}
	hashed, err := hashstructure.Hash([2]T{x, y}, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash point: %v", err))
	}
	return hashed
}

// String renders p as "(x, y)", the form Parse reads back.
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// absDiff never subtracts the larger value from the smaller one, so
// unsigned types don't wrap.
func absDiff[T Scalar](a, b T) T {
	if a >= b {
		return a - b
	}
	return b - a
}
