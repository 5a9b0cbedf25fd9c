package layout

import (
	"fmt"

	"github.com/born-ml/strided/internal/errs"
)

// Selector is one per-axis item of an index expression.
//
// The kinds are Index (integer), Slice (strided range), NewAxis and Ellipsis.
// Inserting an axis and indexing with an integer are distinct selectors; an
// optional integer is never accepted in place of either.
type Selector interface {
	selector()
}

// Index selects one position along an axis and removes the axis.
// Negative values count from the end.
type Index int

// Slice selects the strided range [start, stop) along an axis. Omitted
// bounds are open-ended; the step defaults to 1 and may be negative.
type Slice struct {
	start, stop       int
	hasStart, hasStop bool
	step              int
	hasStep           bool
}

type newAxis struct{}

type ellipsis struct{}

func (Index) selector()    {}
func (Slice) selector()    {}
func (newAxis) selector()  {}
func (ellipsis) selector() {}

// NewAxis inserts a length-1 axis without consuming a source axis.
var NewAxis Selector = newAxis{}

// Ellipsis expands to as many full ranges as needed to consume every source axis.
var Ellipsis Selector = ellipsis{}

// Range selects [start, stop).
func Range(start, stop int) Slice {
	return Slice{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From selects [start, end).
func From(start int) Slice { return Slice{start: start, hasStart: true} }

// Until selects [0, stop).
func Until(stop int) Slice { return Slice{stop: stop, hasStop: true} }

// All selects the whole axis.
func All() Slice { return Slice{} }

// Step returns the slice with the given step. A step of 0 is rejected when
// the slice is applied.
func (s Slice) Step(step int) Slice {
	s.step, s.hasStep = step, true
	return s
}

func (s Slice) String() string {
	str := func(v int, ok bool) string {
		if !ok {
			return ""
		}
		return fmt.Sprint(v)
	}
	out := str(s.start, s.hasStart) + ":" + str(s.stop, s.hasStop)
	if s.hasStep {
		out += ":" + fmt.Sprint(s.step)
	}
	return out
}

// resolve normalizes the slice against extent n and returns the first
// position, the number of selected positions and the step.
func (s Slice) resolve(n int) (start, length, step int, err error) {
	step = 1
	if s.hasStep {
		step = s.step
	}
	if step == 0 {
		return 0, 0, 0, errs.InvalidLayout("slice step cannot be zero")
	}
	bound := func(name string, v int) (int, error) {
		b := v
		if b < 0 {
			b += n
		}
		if b < 0 || b > n {
			return 0, errs.OutOfRange(name, v, n+1)
		}
		return b, nil
	}

	if step > 0 {
		start, stop := 0, n
		if s.hasStart {
			if start, err = bound("start", s.start); err != nil {
				return 0, 0, 0, err
			}
		}
		if s.hasStop {
			if stop, err = bound("stop", s.stop); err != nil {
				return 0, 0, 0, err
			}
		}
		if stop > start {
			length = (stop - start + step - 1) / step
		}
		return start, length, step, nil
	}

	start, stop := n-1, -1
	if s.hasStart {
		if start, err = bound("start", s.start); err != nil {
			return 0, 0, 0, err
		}
		start = min(start, n-1)
	}
	if s.hasStop {
		if stop, err = bound("stop", s.stop); err != nil {
			return 0, 0, 0, err
		}
	}
	if start > stop {
		length = (start - stop - step - 1) / -step
	}
	return start, length, step, nil
}

// Selectors converts loose arguments into selectors: int kinds become Index,
// nil becomes NewAxis and Selector values pass through. An optional integer
// (*int) is rejected: it is neither an index nor an axis insertion.
func Selectors(args ...any) ([]Selector, error) {
	out := make([]Selector, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case nil:
			out[i] = NewAxis
		case Selector:
			out[i] = v
		case int:
			out[i] = Index(v)
		case int32:
			out[i] = Index(int(v))
		case int64:
			out[i] = Index(int(v))
		case *int:
			return nil, errs.InvalidLayout("selector %d: optional integer is not a valid index; use NewAxis or Index", i)
		default:
			return nil, errs.InvalidLayout("selector %d: unsupported type %T", i, a)
		}
	}
	return out, nil
}

// Slice applies an index expression and returns the derived layout.
// Missing trailing selectors select whole axes. The buffer is never touched.
func (l Layout) Slice(sels ...Selector) (Layout, error) {
	ndim := len(l.shape)
	consumed, ellipses := 0, 0
	for _, s := range sels {
		switch s.(type) {
		case Index, Slice:
			consumed++
		case ellipsis:
			ellipses++
		case newAxis:
		default:
			return Layout{}, errs.InvalidLayout("unknown selector %T", s)
		}
	}
	if ellipses > 1 {
		return Layout{}, errs.InvalidLayout("an index expression can only have a single ellipsis")
	}
	if consumed > ndim {
		return Layout{}, errs.InvalidLayout("too many indices: %d for %d-D layout", consumed, ndim)
	}

	expanded := make([]Selector, 0, len(sels)+ndim-consumed)
	for _, s := range sels {
		if _, ok := s.(ellipsis); ok {
			for i := 0; i < ndim-consumed; i++ {
				expanded = append(expanded, All())
			}
			continue
		}
		expanded = append(expanded, s)
	}
	if ellipses == 0 {
		for i := 0; i < ndim-consumed; i++ {
			expanded = append(expanded, All())
		}
	}

	shape := make(Shape, 0, len(expanded))
	stride := make([]int, 0, len(expanded))
	offset := l.offset
	k := 0
	for _, s := range expanded {
		switch v := s.(type) {
		case Index:
			n := l.shape[k]
			i := int(v)
			if i < 0 {
				i += n
			}
			if i < 0 || i >= n {
				return Layout{}, errs.OutOfRange("index", int(v), n)
			}
			offset += i * l.stride[k]
			k++
		case Slice:
			start, length, step, err := v.resolve(l.shape[k])
			if err != nil {
				return Layout{}, err
			}
			if length > 0 {
				offset += start * l.stride[k]
			}
			shape = append(shape, length)
			stride = append(stride, step*l.stride[k])
			k++
		case newAxis:
			s := 1
			if k < ndim {
				s = l.stride[k]
			}
			shape = append(shape, 1)
			stride = append(stride, s)
		}
	}
	return build(shape, stride, offset, false), nil
}
