package cpu

import (
	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/parallel"
)

// Fold reduces every element of src. Positions passed to step are row-major
// flat indices. The elements are split into contiguous position ranges that
// are folded concurrently from init and then merged left to right, so merge
// sees the lower positions as its first argument.
func Fold[T, A any](be Backend, src []T, l layout.Layout, init A, step func(acc A, pos int, v T) A, merge func(lo, hi A) A) A {
	shape := l.Shape()
	ranges := be.par.Split(l.Size())
	if len(ranges) == 0 {
		return init
	}
	partial := make([]A, len(ranges))
	parallel.ForEach(len(ranges), func(i int) {
		acc := init
		visit(layout.RowMajor, shape, []layout.Layout{l}, ranges[i][0], ranges[i][1], func(pos int, addr []int) {
			acc = step(acc, pos, src[addr[0]])
		})
		partial[i] = acc
	}, be.par)

	out := partial[0]
	for _, p := range partial[1:] {
		out = merge(out, p)
	}
	return out
}

// ReduceAxes reduces src along axes (normalized, no duplicates) and writes
// one result per kept position into dst, which is dense over the kept shape
// in the backend order. step receives the row-major position within the
// reduced axes, which for a single axis is the index along it.
func ReduceAxes[T, A, U any](be Backend, dst []U, src []T, l layout.Layout, axes []int, init A, step func(acc A, pos int, v T) A, final func(A) U) {
	reduced := make([]bool, l.Ndim())
	for _, ax := range axes {
		reduced[ax] = true
	}
	var keptShape, keptStride, redShape, redStride []int
	for k := 0; k < l.Ndim(); k++ {
		if reduced[k] {
			redShape = append(redShape, l.ShapeAt(k))
			redStride = append(redStride, l.StrideAt(k))
		} else {
			keptShape = append(keptShape, l.ShapeAt(k))
			keptStride = append(keptStride, l.StrideAt(k))
		}
	}
	outSize := layout.Shape(keptShape).NumElements()
	redSize := layout.Shape(redShape).NumElements()

	cfg := be.par
	if redSize >= cfg.MinChunkSize {
		cfg.MinChunkSize = 1
	}
	parallel.ForChunks(outSize, func(lo, hi int) {
		kw := newWalker(keptShape, be.order, operand{stride: keptStride, offset: l.Offset()})
		kw.seek(lo)
		rw := newWalker(redShape, layout.RowMajor, operand{stride: redStride})
		for p := lo; p < hi; p++ {
			acc := init
			if redSize > 0 {
				base := kw.addr[0]
				rw.seek(0)
				for r := 0; r < redSize; r++ {
					acc = step(acc, r, src[base+rw.addr[0]])
					rw.next()
				}
			}
			dst[p] = final(acc)
			kw.next()
		}
	}, cfg)
}
