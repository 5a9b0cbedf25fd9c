// Package format renders tensors as nested bracketed text.
//
// Long axes are truncated: when an axis holds more than MaxPrint entries only
// the first and last MaxPrint/2 are printed, separated by "...".
package format

import (
	"fmt"
	"io"
	"strings"
)

// Options controls rendering.
type Options struct {
	MaxPrint  int  // entries per axis before truncation; <= 0 prints everything
	Width     int  // minimum element width
	Precision int  // < 0 keeps the default precision
	Verb      rune // fmt verb for elements, 'v' when zero
}

// DefaultOptions returns the options used by %v.
func DefaultOptions() Options {
	return Options{MaxPrint: 6, Precision: -1, Verb: 'v'}
}

// Value formats one element with the verb and precision of opts.
func Value(v any, opts Options) string {
	verb := opts.Verb
	if verb == 0 {
		verb = 'v'
	}
	if opts.Precision >= 0 {
		return fmt.Sprintf("%.*"+string(verb), opts.Precision, v)
	}
	return fmt.Sprintf("%"+string(verb), v)
}

// visible returns the indices printed along an axis of extent n; -1 marks
// the elided middle.
func visible(n, maxPrint int) []int {
	if maxPrint <= 0 || n <= maxPrint {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	half := max(maxPrint/2, 1)
	out := make([]int, 0, 2*half+1)
	for i := 0; i < half; i++ {
		out = append(out, i)
	}
	out = append(out, -1)
	for i := n - half; i < n; i++ {
		out = append(out, i)
	}
	return out
}

// Format writes the elements of an array of the given shape to w. at
// returns the text of the element at a multi-index.
func Format(w io.Writer, shape []int, at func(idx []int) string, opts Options) error {
	ndim := len(shape)
	axes := make([][]int, ndim)
	for k, n := range shape {
		axes[k] = visible(n, opts.MaxPrint)
	}

	// Render the visible elements first to find the column width.
	cells := map[string]string{}
	width := opts.Width
	idx := make([]int, ndim)
	var collect func(depth int)
	collect = func(depth int) {
		if depth == ndim {
			s := at(idx)
			cells[key(idx)] = s
			width = max(width, len(s))
			return
		}
		for _, i := range axes[depth] {
			if i < 0 {
				continue
			}
			idx[depth] = i
			collect(depth + 1)
		}
	}
	collect(0)

	var sb strings.Builder
	if ndim == 0 {
		sb.WriteString(cells[key(idx)])
	} else {
		var render func(depth int)
		render = func(depth int) {
			sb.WriteByte('[')
			last := depth == ndim-1
			for j, i := range axes[depth] {
				switch {
				case last:
					sb.WriteByte(' ')
				case j > 0:
					sb.WriteString(strings.Repeat("\n", ndim-depth-1))
					sb.WriteString(strings.Repeat(" ", depth+1))
				}
				if i < 0 {
					sb.WriteString("...")
					continue
				}
				idx[depth] = i
				if last {
					s := cells[key(idx)]
					sb.WriteString(strings.Repeat(" ", width-len(s)))
					sb.WriteString(s)
				} else {
					render(depth + 1)
				}
			}
			sb.WriteByte(']')
		}
		render(0)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func key(idx []int) string {
	return fmt.Sprint(idx)
}
