package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/hnimtadd/mite/flat"
	"github.com/hnimtadd/mite/logger"
)

type reportConfig struct {
	Origin string
	Lang   language.Tag
	Points []string
}

func handleReport(typ string, args []string, w io.Writer, log logger.Logger) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	origin := fs.String("origin", "0,0", "point distances are measured from")
	lang := fs.String("lang", "en", "language tag used to format numbers")
	if err := fs.Parse(pointArgs(args)); err != nil {
		return usageError{err}
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return usageError{fmt.Errorf("lang: %w", err)}
	}
	cfg := reportConfig{Origin: *origin, Lang: tag, Points: fs.Args()}

	switch typ {
	case "int":
		return report[int](cfg, w, log)
	case "int32":
		return report[int32](cfg, w, log)
	case "int64":
		return report[int64](cfg, w, log)
	case "uint":
		return report[uint](cfg, w, log)
	case "float32":
		return report[float32](cfg, w, log)
	case "float64":
		return report[float64](cfg, w, log)
	default:
		return usagef("unknown element type %q", typ)
	}
}

// report writes one row per point with its offset and distance from the
// origin, followed by the mean and standard deviation of the distances.
func report[T flat.Scalar](cfg reportConfig, w io.Writer, log logger.Logger) error {
	if len(cfg.Points) == 0 {
		return usagef("report needs at least one point")
	}
	origin, err := flat.Parse[T](cfg.Origin)
	if err != nil {
		return usageError{fmt.Errorf("origin: %w", err)}
	}

	printer := message.NewPrinter(cfg.Lang)
	rows := [][]string{{"point", "dx", "dy", "distance"}}
	distances := make([]float64, 0, len(cfg.Points))
	for _, arg := range cfg.Points {
		p, err := flat.Parse[T](arg)
		if err != nil {
			return usageError{err}
		}
		d := flat.Distance(p, origin)
		log.Debug("report row", "point", p.String(), "distance", d)
		distances = append(distances, d)
		rows = append(rows, []string{
			p.String(),
			printer.Sprint(p.XFrom(origin)),
			printer.Sprint(p.YFrom(origin)),
			printer.Sprintf("%.3f", d),
		})
	}
	if err := writeTable(w, rows); err != nil {
		return err
	}

	mean, std := stat.MeanStdDev(distances, nil)
	if len(distances) < 2 {
		std = 0
	}
	_, err = printer.Fprintf(w, "mean %.3f  stddev %.3f\n", mean, std)
	return err
}

// writeTable pads every column to its widest cell. The first column is left
// aligned, the rest are numbers and aligned right.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
				b.WriteString(runewidth.FillLeft(cell, widths[i]))
				continue
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
