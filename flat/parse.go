package flat

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is returned when the input is not of the form "x, y".
	ErrSyntax = errors.New("invalid point syntax")
	// ErrRange is returned when a coordinate can't be held by the element
	// type.
	ErrRange = errors.New("coordinate out of range")
)

// Parse reads a point written as "x,y", "x, y" or "(x, y)".
func Parse[T Scalar](s string) (Point[T], error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "(") || strings.HasSuffix(body, ")") {
		if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
			return Point[T]{}, fmt.Errorf("parse %q: unbalanced parentheses: %w", s, ErrSyntax)
		}
		body = body[1 : len(body)-1]
	}

	xs, ys, ok := strings.Cut(body, ",")
	if !ok {
		return Point[T]{}, fmt.Errorf("parse %q: missing comma: %w", s, ErrSyntax)
	}
	x, err := ParseScalar[T](xs)
	if err != nil {
		return Point[T]{}, fmt.Errorf("parse %q: x: %w", s, err)
	}
	y, err := ParseScalar[T](ys)
	if err != nil {
		return Point[T]{}, fmt.Errorf("parse %q: y: %w", s, err)
	}
	return New(x, y), nil
}

// MustParse is like Parse but panics if s is not a valid point.
func MustParse[T Scalar](s string) Point[T] {
	p, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseScalar reads a single coordinate value of type T. Integer types are
// parsed exactly; a fractional or out of range value is an ErrRange.
func ParseScalar[T Scalar](s string) (T, error) {
	s = strings.TrimSpace(s)
	if isInteger[T]() {
		return parseInteger[T](s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, numError(s, err)
	}
	c := T(v)
	if math.IsInf(float64(c), 0) && !math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrRange)
	}
	return c, nil
}

func parseInteger[T Scalar](s string) (T, error) {
	var (
		c   T
		err error
	)
	if isSigned[T]() {
		var v int64
		v, err = strconv.ParseInt(s, 10, 64)
		c = T(v)
		if err == nil && int64(c) != v {
			return 0, fmt.Errorf("%q: %w", s, ErrRange)
		}
	} else {
		var v uint64
		v, err = strconv.ParseUint(s, 10, 64)
		c = T(v)
		if err == nil && uint64(c) != v {
			return 0, fmt.Errorf("%q: %w", s, ErrRange)
		}
	}
	if err == nil {
		return c, nil
	}

	// A valid number that isn't a valid T: fractional, or negative for an
	// unsigned T.
	if errors.Is(err, strconv.ErrSyntax) {
		if _, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return 0, fmt.Errorf("%q: not a %T: %w", s, c, ErrRange)
		}
	}
	return 0, numError(s, err)
}

func numError(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%q: %w", s, ErrRange)
	}
	return fmt.Errorf("%q: %w", s, ErrSyntax)
}

// isInteger reports whether T is an integer type.
func isInteger[T Scalar]() bool {
	var one T = 1
	return one/2 == 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Scalar]() bool {
	var zero, one T = 0, 1
	return zero-one < zero
}
