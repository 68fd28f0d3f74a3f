package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hnimtadd/mite/flat"
)

// evaluate runs one of the two-operand commands with points of the element
// type named by typ.
func evaluate(command, typ string, args []string, w io.Writer) error {
	switch typ {
	case "int":
		return evaluateAs[int](command, args, w)
	case "int32":
		return evaluateAs[int32](command, args, w)
	case "int64":
		return evaluateAs[int64](command, args, w)
	case "uint":
		return evaluateAs[uint](command, args, w)
	case "float32":
		return evaluateAs[float32](command, args, w)
	case "float64":
		return evaluateAs[float64](command, args, w)
	default:
		return usagef("unknown element type %q", typ)
	}
}

func evaluateAs[T flat.Scalar](command string, args []string, w io.Writer) (err error) {
	// Integer division by zero panics inside flat; report it as a failed
	// command instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", command, r)
		}
	}()

	if command == "cast" {
		return castAs[T](args, w)
	}
	if len(args) != 2 {
		return usagef("%s takes 2 arguments, got %d", command, len(args))
	}
	p, err := flat.Parse[T](args[0])
	if err != nil {
		return usageError{err}
	}

	switch command {
	case "scale", "div":
		s, err := flat.ParseScalar[T](args[1])
		if err != nil {
			return usageError{fmt.Errorf("scalar: %w", err)}
		}
		if command == "scale" {
			_, err = fmt.Fprintln(w, p.Mul(s))
		} else {
			_, err = fmt.Fprintln(w, p.Div(s))
		}
		return err
	}

	q, err := flat.Parse[T](args[1])
	if err != nil {
		return usageError{err}
	}
	switch command {
	case "distance":
		_, err = fmt.Fprintln(w, p.DistanceFrom(q))
	case "delta":
		_, err = fmt.Fprintln(w, p.XFrom(q), p.YFrom(q))
	case "add":
		_, err = fmt.Fprintln(w, p.AddAssign(q))
	case "sub":
		_, err = fmt.Fprintln(w, p.SubAssign(q))
	default:
		return usagef("unknown command: %s", command)
	}
	return err
}

func castAs[T flat.Scalar](args []string, w io.Writer) error {
	fs := flag.NewFlagSet("cast", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	to := fs.String("to", "int", "target element type")
	if err := fs.Parse(pointArgs(args)); err != nil {
		return usageError{err}
	}
	if fs.NArg() != 1 {
		return usagef("cast takes 1 point, got %d", fs.NArg())
	}
	p, err := flat.Parse[T](fs.Arg(0))
	if err != nil {
		return usageError{err}
	}

	var out fmt.Stringer
	switch *to {
	case "int":
		out = flat.Cast[int](p)
	case "int32":
		out = flat.Cast[int32](p)
	case "int64":
		out = flat.Cast[int64](p)
	case "uint":
		out = flat.Cast[uint](p)
	case "float32":
		out = flat.Cast[float32](p)
	case "float64":
		out = flat.Cast[float64](p)
	default:
		return usagef("unknown element type %q", *to)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// pointArgs inserts "--" before the first argument that is a point with a
// negative x such as "-3,4", so the flag package stops there instead of
// reading it as an unknown flag. Every flag of the commands using it takes
// a value.
func pointArgs(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--" || !strings.HasPrefix(arg, "-"):
			return args
		case strings.Contains(arg, "="):
			continue
		case strings.Contains(arg, ","):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		// skip the flag value
		i++
	}
	return args
}
