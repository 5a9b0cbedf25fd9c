// Package main provides the strided CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/strided/internal/layout"
)

const version = "v0.0.1-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "strided: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "strided %s\n", version)
		return nil
	case "layout":
		return runLayout(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "strided %s - strided layouts over flat buffers\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  layout     Show a contiguous layout and the view an index expression derives from it")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, `  strided layout -shape 4,3,2 -order C -index "1:3, None, ..., 0"`)
}

func runLayout(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	shapeFlag := fs.String("shape", "", "comma-separated extents, e.g. 4,3,2")
	orderFlag := fs.String("order", "C", "element order: C (row-major) or F (column-major)")
	indexFlag := fs.String("index", "", `index expression, e.g. "-2:1:-1, None, ..., 0"`)
	reshapeFlag := fs.String("reshape", "", "comma-separated target shape applied after indexing; -1 infers one extent")
	debug := fs.Bool("debug", false, "log debug records to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	shape, err := parseInts(*shapeFlag)
	if err != nil {
		return errors.WithMessage(err, "-shape")
	}
	order, err := parseOrder(*orderFlag)
	if err != nil {
		return err
	}
	if err := layout.Shape(shape).Validate(); err != nil {
		return errors.WithMessage(err, "-shape")
	}

	l := layout.Contig(shape, order)
	fmt.Fprintf(stdout, "input:\n%s\n", l)

	if *indexFlag != "" {
		sels, err := layout.ParseSelectors(*indexFlag)
		if err != nil {
			return errors.WithMessage(err, "-index")
		}
		if l, err = l.Slice(sels...); err != nil {
			return errors.WithMessage(err, "-index")
		}
		fmt.Fprintf(stdout, "\nindexed by [%s]:\n%s\n", strings.TrimSpace(*indexFlag), l)
	}

	if *reshapeFlag != "" {
		target, err := parseInts(*reshapeFlag)
		if err != nil {
			return errors.WithMessage(err, "-reshape")
		}
		r, ok, err := l.Reshape(target, order)
		if err != nil {
			return errors.WithMessage(err, "-reshape")
		}
		if ok {
			fmt.Fprintf(stdout, "\nreshaped without copy:\n%s\n", r)
		} else {
			fmt.Fprintf(stdout, "\nreshape needs a copy into:\n%s\n", r)
		}
	}
	return nil
}

func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Errorf("invalid extent %q", p)
		}
		out[i] = v
	}
	return out, nil
}

func parseOrder(s string) (layout.Order, error) {
	switch strings.ToUpper(s) {
	case "C", "ROW", "ROWMAJOR":
		return layout.RowMajor, nil
	case "F", "COL", "COLMAJOR":
		return layout.ColMajor, nil
	default:
		return 0, errors.Errorf("invalid order %q (want C or F)", s)
	}
}
