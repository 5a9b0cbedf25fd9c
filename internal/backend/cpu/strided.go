package cpu

import (
	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/parallel"
)

// operand is the addressing part of a layout.
type operand struct {
	stride []int
	offset int
}

func operandOf(l layout.Layout) operand {
	return operand{stride: l.Stride(), offset: l.Offset()}
}

// walker steps a multi-index through shape in a traversal order and keeps
// the buffer address of each operand in sync with it. It is an odometer:
// the fastest axis is incremented first and carries into the next one.
type walker struct {
	shape []int
	axes  []int // fastest first
	ops   []operand
	idx   []int
	addr  []int
}

func newWalker(shape []int, order layout.Order, ops ...operand) *walker {
	n := len(shape)
	w := &walker{
		shape: shape,
		axes:  make([]int, n),
		ops:   ops,
		idx:   make([]int, n),
		addr:  make([]int, len(ops)),
	}
	for i := range w.axes {
		if order == layout.ColMajor {
			w.axes[i] = i
		} else {
			w.axes[i] = n - 1 - i
		}
	}
	for j, op := range ops {
		w.addr[j] = op.offset
	}
	return w
}

// seek moves to flat position pos. The shape must not be empty.
func (w *walker) seek(pos int) {
	for _, k := range w.axes {
		w.idx[k] = pos % w.shape[k]
		pos /= w.shape[k]
	}
	for j, op := range w.ops {
		a := op.offset
		for k, i := range w.idx {
			a += i * op.stride[k]
		}
		w.addr[j] = a
	}
}

func (w *walker) next() {
	for _, k := range w.axes {
		w.idx[k]++
		if w.idx[k] < w.shape[k] {
			for j, op := range w.ops {
				w.addr[j] += op.stride[k]
			}
			return
		}
		for j, op := range w.ops {
			w.addr[j] -= (w.shape[k] - 1) * op.stride[k]
		}
		w.idx[k] = 0
	}
}

// visit calls fn for positions [lo, hi) of shape traversed in order, with
// the address of every layout at that position. Layouts that are all
// contiguous in order are addressed linearly.
func visit(order layout.Order, shape []int, ls []layout.Layout, lo, hi int, fn func(pos int, addr []int)) {
	if lo >= hi {
		return
	}
	linear := true
	for _, l := range ls {
		if !l.IsContig(order) {
			linear = false
			break
		}
	}
	if linear {
		addr := make([]int, len(ls))
		for pos := lo; pos < hi; pos++ {
			for j, l := range ls {
				addr[j] = l.Offset() + pos
			}
			fn(pos, addr)
		}
		return
	}
	ops := make([]operand, len(ls))
	for j, l := range ls {
		ops[j] = operandOf(l)
	}
	w := newWalker(shape, order, ops...)
	w.seek(lo)
	for pos := lo; pos < hi; pos++ {
		fn(pos, w.addr)
		w.next()
	}
}

// run is visit over the whole shape, split across the backend's workers.
// fn must only write to addresses owned by its position.
func (be Backend) run(shape []int, ls []layout.Layout, fn func(pos int, addr []int)) {
	size := layout.Shape(shape).NumElements()
	parallel.ForChunks(size, func(lo, hi int) {
		visit(be.order, shape, ls, lo, hi, fn)
	}, be.par)
}
