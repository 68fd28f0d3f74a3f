package flat

import "math"

// Distance returns the Euclidean distance between p and q. Both points are
// promoted to float64 first, so the element types may differ.
func Distance[T, U Scalar](p Point[T], q Point[U]) float64 {
	dx := float64(p.x) - float64(q.x)
	dy := float64(p.y) - float64(q.y)
	return math.Sqrt(dx*dx + dy*dy)
}

// XFrom returns |p.x - q.x| in p's element type.
func XFrom[T, U Scalar](p Point[T], q Point[U]) T {
	if same, ok := any(q).(Point[T]); ok {
		return absDiff(p.x, same.x)
	}
	return T(math.Abs(float64(p.x) - float64(q.x)))
}

// YFrom returns |p.y - q.y| in p's element type.
func YFrom[T, U Scalar](p Point[T], q Point[U]) T {
	if same, ok := any(q).(Point[T]); ok {
		return absDiff(p.y, same.y)
	}
	return T(math.Abs(float64(p.y) - float64(q.y)))
}

// Cast converts p to element type U using Go's numeric conversion rules:
// float to integer truncates toward zero.
func Cast[U, T Scalar](p Point[T]) Point[U] {
	return Point[U]{x: U(p.x), y: U(p.y)}
}
