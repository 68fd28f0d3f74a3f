package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hnimtadd/mite/logger"
)

const version = "0.1.0"

// Options are the global flags shared by every command.
type Options struct {
	LogLevel  string
	LogFormat string
	Type      string
}

// usageError marks errors caused by bad arguments rather than by
// evaluating them.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

func main() {
	var opts Options
	flag.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.StringVar(&opts.LogFormat, "log-format", "text", "log format: text, json")
	flag.StringVar(&opts.Type, "type", "float64", "element type of parsed points")
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()

	log, err := newLogger(opts, os.Stderr)
	if err != nil {
		logger.DefaultLogger.Error("invalid logger configuration", "error", err)
		os.Exit(2)
	}

	if err := run(flag.Args(), opts, os.Stdout, log); err != nil {
		log.Error("command failed", "command", flag.Arg(0), "error", err)
		var usage usageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newLogger(opts Options, w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	typ, err := logger.ParseType(opts.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{Buffer: w, Level: level, Type: typ}), nil
}

func run(args []string, opts Options, w io.Writer, log logger.Logger) error {
	if len(args) < 1 {
		printUsage(w)
		return usagef("no command given")
	}

	command := args[0]
	args = args[1:]
	log.Debug("running command", "command", command, "type", opts.Type, "args", args)

	switch command {
	case "distance", "delta", "add", "sub", "scale", "div", "cast":
		return evaluate(command, opts.Type, args, w)
	case "report":
		return handleReport(opts.Type, args, w, log)
	case "version":
		fmt.Fprintf(w, "mite version %s\n", version)
		return nil
	case "help":
		printUsage(w)
		return nil
	default:
		return usagef("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `mite - 2-D point arithmetic

Usage: mite [flags] <command> [args]

Commands:
  distance <p> <q>     Euclidean distance between p and q
  delta <p> <q>        Absolute x and y differences between p and q
  add <p> <q>          p + q
  sub <p> <q>          p - q
  scale <p> <s>        p * s
  div <p> <s>          p / s
  cast -to <type> <p>  Convert p to another element type
  report [-origin <p>] [-lang <tag>] <p>...
                       Table of distances from an origin
  version              Show mite version
  help                 Show this help message

Points are written as "x,y" or "(x, y)". A point with a negative x such as
"-3,4" is read as a point, not a flag; "--" ends flag parsing explicitly.

Flags:
  -type <type>         Element type: int, int32, int64, uint, float32, float64
                       (default float64)
  -log-level <level>   debug, info, warn, error (default info)
  -log-format <fmt>    text, json (default text)
`)
}
