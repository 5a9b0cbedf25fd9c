package tensor

import (
	"github.com/pkg/errors"

	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// Matmul multiplies a and b, choosing the product from their ranks:
//
//	1-D x 1-D   inner product, a 0-D result
//	2-D x 1-D   matrix-vector product
//	1-D x 2-D   vector-matrix product
//	N-D x M-D   matrix product over the last two axes, N, M >= 2; leading
//	            batch axes broadcast right-aligned
//
// Other ranks and mismatched inner extents fail with ErrShapeMismatch.
// The result is dense in the device order.
func Matmul[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	if err := a.Device().Check(b.Device()); err != nil {
		return nil, errors.WithMessage(err, "matmul")
	}
	r1, r2 := a.Ndim(), b.Ndim()
	switch {
	case r1 == 1 && r2 == 1:
		return dot(a, b)
	case r1 == 2 && r2 == 1:
		return matvec(a, b)
	case r1 == 1 && r2 == 2:
		return vecmat(a, b)
	case r1 >= 2 && r2 >= 2:
		return batchedMatmul(a, b)
	default:
		return nil, errs.ShapeMismatch("matmul: unsupported ranks %d and %d", r1, r2)
	}
}

// MustMatmul is Matmul that panics on error.
func MustMatmul[T Number](a, b *Tensor[T]) *Tensor[T] {
	return errs.Must(Matmul(a, b))
}

func dot[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	n := a.layout.ShapeAt(0)
	if m := b.layout.ShapeAt(0); n != m {
		return nil, errs.ShapeMismatch("matmul: inner product of lengths %d and %d", n, m)
	}
	v := cpu.Dot(a.storage.data, a.layout.Offset(), a.layout.StrideAt(0),
		b.storage.data, b.layout.Offset(), b.layout.StrideAt(0), n)
	out := Zeros[T]([]int{}, a.Device())
	out.storage.data[0] = v
	return out, nil
}

// matrixOf views the 2-D layout l over data as a gemm operand.
func matrixOf[T any](data []T, l layout.Layout) cpu.Matrix[T] {
	return cpu.Matrix[T]{
		Data:      data,
		Offset:    l.Offset(),
		Rows:      l.ShapeAt(0),
		Cols:      l.ShapeAt(1),
		RowStride: l.StrideAt(0),
		ColStride: l.StrideAt(1),
	}
}

func matvec[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	m, k := a.layout.ShapeAt(0), a.layout.ShapeAt(1)
	if n := b.layout.ShapeAt(0); k != n {
		return nil, errs.ShapeMismatch("matmul: matrix %v times vector of length %d", a.layout.Shape(), n)
	}
	out := Zeros[T]([]int{m}, a.Device())
	cpu.Gemm(a.backend(),
		cpu.Matrix[T]{Data: out.storage.data, Rows: m, Cols: 1, RowStride: 1, ColStride: 1},
		matrixOf(a.storage.data, a.layout),
		cpu.Matrix[T]{Data: b.storage.data, Offset: b.layout.Offset(), Rows: k, Cols: 1, RowStride: b.layout.StrideAt(0), ColStride: 1},
	)
	return out, nil
}

func vecmat[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	k, n := b.layout.ShapeAt(0), b.layout.ShapeAt(1)
	if m := a.layout.ShapeAt(0); m != k {
		return nil, errs.ShapeMismatch("matmul: vector of length %d times matrix %v", m, b.layout.Shape())
	}
	out := Zeros[T]([]int{n}, a.Device())
	cpu.Gemm(a.backend(),
		cpu.Matrix[T]{Data: out.storage.data, Rows: 1, Cols: n, RowStride: n, ColStride: 1},
		cpu.Matrix[T]{Data: a.storage.data, Offset: a.layout.Offset(), Rows: 1, Cols: k, RowStride: k, ColStride: a.layout.StrideAt(0)},
		matrixOf(b.storage.data, b.layout),
	)
	return out, nil
}

func batchedMatmul[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	as, bs := a.layout.Shape(), b.layout.Shape()
	r1, r2 := len(as), len(bs)
	m, k := as[r1-2], as[r1-1]
	k2, n := bs[r2-2], bs[r2-1]
	if k != k2 {
		return nil, errs.ShapeMismatch("matmul: inner dimensions %d and %d of %v and %v differ", k, k2, as, bs)
	}
	batch, err := layout.BroadcastShapes(layout.RowMajor, as[:r1-2], bs[:r2-2])
	if err != nil {
		return nil, errs.ShapeMismatch("matmul: batch shapes %v and %v: %v", as[:r1-2], bs[:r2-2], err)
	}

	al, err := a.layout.BroadcastTo(append(batch.Clone(), m, k), layout.RowMajor)
	if err != nil {
		return nil, err
	}
	bl, err := b.layout.BroadcastTo(append(batch.Clone(), k, n), layout.RowMajor)
	if err != nil {
		return nil, err
	}
	out := Zeros[T](append(batch.Clone(), m, n), a.Device())
	ol := out.layout

	nb := batch.NumElements()
	cs := make([]cpu.Matrix[T], nb)
	xs := make([]cpu.Matrix[T], nb)
	ys := make([]cpu.Matrix[T], nb)
	batchLayout := layout.Contig(batch, layout.RowMajor)
	idx := make([]int, len(batch))
	for p := 0; p < nb; p++ {
		batchLayout.Unravel(p, layout.RowMajor, idx)
		cs[p] = batchMatrix(out.storage.data, ol, idx)
		xs[p] = batchMatrix(a.storage.data, al, idx)
		ys[p] = batchMatrix(b.storage.data, bl, idx)
	}
	cpu.GemmBatched(a.backend(), cs, xs, ys)
	return out, nil
}

// batchMatrix is the trailing 2-D matrix of l at the batch index idx.
func batchMatrix[T any](data []T, l layout.Layout, idx []int) cpu.Matrix[T] {
	off := l.Offset()
	for k, i := range idx {
		off += i * l.StrideAt(k)
	}
	d := l.Ndim()
	return cpu.Matrix[T]{
		Data:      data,
		Offset:    off,
		Rows:      l.ShapeAt(d - 2),
		Cols:      l.ShapeAt(d - 1),
		RowStride: l.StrideAt(d - 2),
		ColStride: l.StrideAt(d - 1),
	}
}
