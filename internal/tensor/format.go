package tensor

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/strided/internal/format"
)

// Format implements fmt.Formatter.
//
// %v, %d, %f, %g, %e and %t print the elements as nested brackets, using
// the flag width and precision for every element. %+v appends the layout
// description:
//
//	[[ 0 1 2]
//	 [ 3 4 5]]
//	2-Dim (dyn), contiguous: Cc
//	shape: [2, 3], stride: [3, 1], offset: 0
func (t *Tensor[T]) Format(s fmt.State, verb rune) {
	opts := format.DefaultOptions()
	switch verb {
	case 'v', 'd', 'f', 'g', 'e', 't':
		opts.Verb = verb
	default:
		fmt.Fprintf(s, "%%!%c(tensor.Tensor[%s])", verb, DTypeName[T]())
		return
	}
	if w, ok := s.Width(); ok {
		opts.Width = w
	}
	if p, ok := s.Precision(); ok {
		opts.Precision = p
	}
	if s.Flag('#') {
		opts.MaxPrint = 0
	}
	_ = render(s, t, opts)
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "\n%s", t.layout.String())
	}
}

func render[T Elem](w io.Writer, t *Tensor[T], opts format.Options) error {
	return format.Format(w, t.layout.Shape(), func(idx []int) string {
		return format.Value(t.storage.data[t.layout.IndexUnchecked(idx)], opts)
	}, opts)
}

func sprint[T Elem](t *Tensor[T]) string {
	var sb strings.Builder
	_ = render(&sb, t, format.DefaultOptions())
	return sb.String()
}
